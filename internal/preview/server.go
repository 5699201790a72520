// Package preview implements the live preview dev server behind
// `aframe preview`. It serves a rendered HTML file, injects a small reload
// client, and pushes reload notifications over WebSocket when the file
// changes on disk.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JohnRodney/aframe/pkg/dom"
	"github.com/JohnRodney/aframe/pkg/render"
)

// reloadScript is injected before </body> so the browser reconnects and
// reloads when the watched file changes.
const reloadScript = `<script>(function(){var ws=new WebSocket("ws://"+location.host+"/ws");ws.onmessage=function(e){var m=JSON.parse(e.data);if(m.type==="reload")location.reload();if(m.type==="error")console.error("aframe preview:",m.error)};ws.onclose=function(){setTimeout(function(){location.reload()},1000)}})();</script>`

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// File is the HTML file to preview.
	File string

	// Pretty enables pretty-printed output.
	Pretty bool

	// PollInterval is the file watcher polling interval (default 500ms).
	PollInterval time.Duration

	// Registerer receives the server's metrics
	// (default prometheus.DefaultRegisterer).
	Registerer prometheus.Registerer

	// TracerName overrides the OpenTelemetry tracer name.
	TracerName string
}

// Server is the preview HTTP server.
type Server struct {
	config  Config
	hub     *ReloadHub
	metrics *metrics
	router  chi.Router
}

// New creates a preview server for the configured file.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}

	s := &Server{
		config:  config,
		hub:     NewReloadHub(),
		metrics: newMetrics(config.Registerer),
	}

	r := chi.NewRouter()
	r.Use(traceMiddleware(config.TracerName))
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.hub.HandleWebSocket)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", s.metricsHandler())
	s.router = r

	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled. The file watcher runs
// alongside and broadcasts a reload to connected browsers on every change.
func (s *Server) Start(ctx context.Context) error {
	watcher := NewWatcher(s.config.File, s.config.PollInterval, func(path string) {
		s.metrics.reloadsSent.Inc()
		s.hub.NotifyReload(path)
	})
	go watcher.Run(ctx)

	srv := &http.Server{Addr: s.config.Addr, Handler: s.router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.hub.Close()
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	f, err := os.Open(s.config.File)
	if err != nil {
		http.Error(w, fmt.Sprintf("open %s: %v", s.config.File, err), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		s.hub.NotifyError(err.Error())
		http.Error(w, fmt.Sprintf("parse %s: %v", s.config.File, err), http.StatusInternalServerError)
		return
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: s.config.Pretty})
	html, err := renderer.RenderToString(doc.Root)
	if err != nil {
		http.Error(w, fmt.Sprintf("render %s: %v", s.config.File, err), http.StatusInternalServerError)
		return
	}

	s.metrics.pagesRendered.Inc()
	s.metrics.renderDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, injectReloadScript(html))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// metricsHandler exposes the configured registry when it can gather, falling
// back to the default gatherer.
func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.config.Registerer.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// injectReloadScript places the reload client before </body>, or appends it
// when the document has no body close tag.
func injectReloadScript(html string) string {
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + reloadScript + html[i:]
	}
	return html + reloadScript
}
