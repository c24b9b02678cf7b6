package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		addr   string
		watch  bool
		minify bool
	)

	cmd := &cobra.Command{
		Use:   "serve <manifest>",
		Short: "Serve a manifest locally with optional live reload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := preview.New(preview.Config{
				ManifestPath: args[0],
				Minimize:     minify,
				LiveReload:   watch,
				Logger:       slog.Default(),
			})

			if watch {
				go func() {
					if err := srv.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
						slog.Error("manifest watcher stopped", "error", err)
					}
				}()
			}

			httpSrv := &http.Server{
				Addr:    addr,
				Handler: srv.Handler(),
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					slog.Warn("shutdown", "error", err)
				}
			}()

			slog.Info("preview server listening", "addr", addr, "manifest", args[0], "watch", watch)
			if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload open browser tabs when the manifest changes")
	cmd.Flags().BoolVar(&minify, "minify", false, "render without whitespace or comments")

	return cmd
}
