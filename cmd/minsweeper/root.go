package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minsweeper/minsweeper/internal/config"
	"github.com/minsweeper/minsweeper/internal/mines"
)

var (
	configPath string
	size       int
	mineCount  int
	seed       string
)

var rootCmd = &cobra.Command{
	Use:   "minsweeper",
	Short: "Single-player minesweeper",
	Long: `Minsweeper is a single-player minesweeper game on a square board.
Play it in the terminal or serve it over HTTP and WebSocket.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML or JSON)")
	rootCmd.PersistentFlags().IntVar(&size, "size", 0, "board size, overrides config")
	rootCmd.PersistentFlags().IntVar(&mineCount, "mines", -1, "mine count, overrides config")
	rootCmd.PersistentFlags().StringVar(&seed, "params", "", `game params as "SIZE:MINES" or "SIZE", overrides --size and --mines`)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
}

// loadConfig reads the config file when one is given, the environment
// otherwise, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.App, error) {
	var (
		cfg *config.App
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
		if !flags.Changed("mines") {
			cfg.MineCount = -1
		}
	}
	if flags.Changed("mines") {
		cfg.MineCount = mineCount
	}
	if seed != "" {
		p, err := mines.ParseSeed(seed)
		if err != nil {
			return nil, err
		}
		cfg.Size, cfg.MineCount = p.Unpack()
	}
	if flags.Changed("addr") {
		cfg.Addr = addr
	}
	return cfg, nil
}
