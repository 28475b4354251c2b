package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsweeper/minsweeper/internal/mines"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&configPath, "config", "", "")
	cmd.Flags().IntVar(&size, "size", 0, "")
	cmd.Flags().IntVar(&mineCount, "mines", -1, "")
	cmd.Flags().StringVar(&seed, "params", "", "")
	cmd.Flags().StringVar(&addr, "addr", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfigFlags(t *testing.T) {
	tests := []struct {
		args []string
		want mines.GameParams
		addr string
	}{
		{nil, mines.GameParams{Size: 9, MineCount: 10}, ":8080"},
		{[]string{"--size", "16"}, mines.GameParams{Size: 16, MineCount: 32}, ":8080"},
		{[]string{"--mines", "5"}, mines.GameParams{Size: 9, MineCount: 5}, ":8080"},
		{[]string{"--size", "4", "--mines", "2", "--addr", ":9999"}, mines.GameParams{Size: 4, MineCount: 2}, ":9999"},
		{[]string{"--size", "4", "--params", "6:7"}, mines.GameParams{Size: 6, MineCount: 7}, ":8080"},
	}
	for _, test := range tests {
		cfg, err := loadConfig(newTestCmd(t, test.args...))
		require.NoError(t, err)
		assert.Equal(t, test.want, cfg.GameParams(), "args %v", test.args)
		assert.Equal(t, test.addr, cfg.Addr, "args %v", test.args)
	}
}

func TestLoadConfigInvalidParams(t *testing.T) {
	_, err := loadConfig(newTestCmd(t, "--params", "3:9"))
	assert.ErrorIs(t, err, mines.ErrInvalidMineCount)
}
