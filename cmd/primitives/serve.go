package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/internal/demo"
	"github.com/vango-dev/primitives/internal/preview"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

Every demo is served at /demo/<name>. Add ?live=1 to replay clicks and
key presses into a live copy of the demo, and ?dir=rtl to flip its
direction. Prometheus metrics are served at /metrics.

Examples:
  primitives serve
  primitives serve --port=8080
  primitives serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			printBanner()
			fmt.Println("  serve")
			fmt.Println()

			server := preview.NewServer(preview.Options{
				Config: cfg,
				Logger: flags.logger(),
			})

			// Handle signals
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			go func() {
				select {
				case <-sigCh:
					fmt.Println("\n\n  Shutting down...")
					cancel()
				case <-ctx.Done():
				}
			}()

			success("Preview running at %s", cfg.URL())
			for _, name := range demo.Names() {
				info("%s/demo/%s", cfg.URL(), name)
			}
			fmt.Println()

			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from primitives.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from primitives.json)")

	return cmd
}
