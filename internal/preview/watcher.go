package preview

import (
	"context"
	"os"
	"time"
)

// Watcher polls a single file for modification-time or size changes.
// Polling keeps the dev tool dependency-free on platform file notification
// APIs and is plenty for one file.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(path string)
}

// NewWatcher creates a watcher for path. interval defaults to 500ms.
func NewWatcher(path string, interval time.Duration, onChange func(path string)) *Watcher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Watcher{path: path, interval: interval, onChange: onChange}
}

// Run polls until ctx is cancelled, invoking the change callback whenever
// the file's mtime or size differs from the last observation. The polling
// interval doubles as the debounce window.
func (w *Watcher) Run(ctx context.Context) {
	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
		lastSize = info.Size()
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime() != lastMod || info.Size() != lastSize {
				lastMod = info.ModTime()
				lastSize = info.Size()
				w.onChange(w.path)
			}
		}
	}
}
