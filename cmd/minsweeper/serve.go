package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minsweeper/minsweeper/internal/app"
	"github.com/minsweeper/minsweeper/internal/session"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over HTTP and WebSocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		if err := setupEngineLogging(cfg, os.Stderr); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		manager, err := session.NewManager(logger, cfg.GameParams(), createRand())
		if err != nil {
			return fmt.Errorf("unable to start a game: %w", err)
		}

		logger.Debug("config", slog.Any("config", cfg))
		if err := app.New(logger, cfg, manager).Start(ctx); err != nil {
			logger.Error("server stopped", slog.Any("error", err))
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")
}
