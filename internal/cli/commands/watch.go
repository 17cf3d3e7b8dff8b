package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blocklua-lang/blocklua/internal/web/reload"
	"github.com/blocklua-lang/blocklua/internal/web/server"
	"github.com/blocklua-lang/blocklua/pkg/registry"
	"github.com/blocklua-lang/blocklua/pkg/workspace"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var wsAddr string

	cmd := &cobra.Command{
		Use:   "watch [program.json]",
		Short: "Regenerate Lua whenever the saved program changes",
		Long: `Watch a saved program file and regenerate its Lua source on every change.
Regenerated code is printed and pushed to editors connected on /ws.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := loadRegistry()
			if err != nil {
				return err
			}

			program := cfg.Program
			if len(args) == 1 {
				program = args[0]
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			hub := reload.NewHub(logger)
			defer hub.Close()

			mux := http.NewServeMux()
			mux.HandleFunc("/ws", hub.Handler)
			srv, err := server.New(server.DefaultConfig(wsAddr, mux))
			if err != nil {
				return err
			}
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					logger.Warn("reload endpoint failed", zap.Error(err))
				}
			}()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create file watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory: editors replace files on save, which
			// drops a watch placed on the file itself.
			if err := watcher.Add(filepath.Dir(program)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", program, err)
			}

			regenerate(cmd, reg, program, hub, logger)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			var debounce *time.Timer
			debounced := make(chan struct{}, 1)

			for {
				select {
				case event := <-watcher.Events:
					if filepath.Clean(event.Name) != filepath.Clean(program) {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					if debounce != nil {
						debounce.Stop()
					}
					debounce = time.AfterFunc(100*time.Millisecond, func() {
						select {
						case debounced <- struct{}{}:
						default:
						}
					})

				case <-debounced:
					regenerate(cmd, reg, program, hub, logger)

				case err := <-watcher.Errors:
					logger.Warn("watch error", zap.Error(err))

				case sig := <-sigCh:
					logger.Info("stopping watch", zap.String("signal", sig.String()))
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					return srv.Shutdown(ctx)
				}
			}
		},
	}

	cmd.Flags().StringVar(&wsAddr, "ws-addr", "localhost:4445", "Listen address for the /ws reload endpoint")
	return cmd
}

func regenerate(cmd *cobra.Command, reg *registry.Registry, program string, hub *reload.Hub, logger *zap.Logger) {
	code, err := generateFile(reg, program)
	if err != nil {
		logger.Warn("generation failed", zap.Error(err))
		hub.BroadcastError(err)
		return
	}
	logger.Info("regenerated", zap.String("program", program), zap.Int("clients", hub.ClientCount()))
	fmt.Fprint(cmd.OutOrStdout(), code)
	hub.BroadcastGenerated(code)
}

func generateFile(reg *registry.Registry, program string) (string, error) {
	data, err := os.ReadFile(program)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", program, err)
	}
	ws, err := workspace.Load(data, reg)
	if err != nil {
		return "", err
	}
	return workspace.NewCodeGen(nil).Program(ws)
}
