package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/minsweeper/minsweeper/internal/console"
	"github.com/minsweeper/minsweeper/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Commands:
  r ROW COL          reveal a cell
  m ROW COL          mark or unmark a cell
  n [SIZE [MINES]]   start a new game
  g                  show the board
  h                  show the rules
  q                  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// logs stay off the terminal unless developing
		var logOut io.Writer = io.Discard
		if cfg.Development {
			logOut = os.Stderr
		}
		logger, err := newLogger(cfg, logOut)
		if err != nil {
			return err
		}
		if err := setupEngineLogging(cfg, logOut); err != nil {
			return err
		}

		manager, err := session.NewManager(logger, cfg.GameParams(), createRand())
		if err != nil {
			return fmt.Errorf("unable to start a game: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return console.New(logger, manager, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	},
}
