package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blocklua-lang/blocklua/internal/web/api"
	"github.com/blocklua-lang/blocklua/internal/web/reload"
	"github.com/blocklua-lang/blocklua/internal/web/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the block registry and generator to an editor frontend",
		Long: `Start the dev server. Editors fetch block definitions from /blocks,
post saved programs to /generate, and listen on /ws for regenerated code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := loadRegistry()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr()
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			hub := reload.NewHub(logger)
			defer hub.Close()

			srv, err := server.New(server.DefaultConfig(addr, api.NewRouter(reg, hub, logger)))
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("dev server listening", zap.String("addr", addr))
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("shutting down", zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
