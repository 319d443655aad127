package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kyunghoonkook/directional/config"
	"github.com/kyunghoonkook/directional/logging/logger"
	"github.com/kyunghoonkook/directional/mockserver"
	"github.com/spf13/cobra"
)

func newMockCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Local mock of the board api",
	}
	cmd.AddCommand(newMockServeCommand(opts))
	return cmd
}

func newMockServeCommand(opts *globalOptions) *cobra.Command {
	var (
		addr   string
		noSeed bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mock api until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Init(opts.configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cleanup, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer cleanup()

			if cfg.Viper.ConfigFileUsed() != "" {
				config.Watch(func(c *config.Config) {
					logger.SetLevel(c.Logger.Level)
					logger.Infof(context.Background(), "config reloaded, log level %d", c.Logger.Level)
				})
			}

			if !cmd.Flags().Changed("addr") {
				addr = cfg.Mock.Addr
			}
			mode := gin.ReleaseMode
			if cfg.IsDebug() {
				mode = gin.DebugMode
			}
			srv := mockserver.New(&mockserver.Options{Seed: cfg.Mock.Seed && !noSeed, Mode: mode})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "mock api listening on http://%s\n", addr)
			return serve(ctx, &http.Server{
				Addr:         addr,
				Handler:      srv.Engine(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, defaults to mock.addr")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "start without sample posts")
	return cmd
}

// serve runs server until ctx is done, then shuts it down gracefully
func serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof(context.Background(), "shutting down mock api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
