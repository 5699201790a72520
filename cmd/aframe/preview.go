package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/JohnRodney/aframe/internal/preview"
)

func previewCmd() *cobra.Command {
	var addr string
	var pretty bool
	var poll time.Duration

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Serve an HTML file with live reload",
		Long: `Serve FILE rendered through the aframe pipeline and reload connected
browsers whenever it changes on disk. Prometheus metrics are exposed on
/metrics and each request is traced via the global OpenTelemetry provider.`,
		Example: `  aframe preview scene.html
  aframe preview scene.html --addr :3000 --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			info("previewing %s on http://localhost%s", args[0], addr)
			srv := preview.New(preview.Config{
				Addr:         addr,
				File:         args[0],
				Pretty:       pretty,
				PollInterval: poll,
			})
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the rendered output")
	cmd.Flags().DurationVar(&poll, "poll", 500*time.Millisecond, "file watcher polling interval")

	return cmd
}
