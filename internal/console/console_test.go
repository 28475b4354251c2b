package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsweeper/minsweeper/internal/mines"
	"github.com/minsweeper/minsweeper/internal/session"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func frozen() time.Time {
	return time.Date(2016, 4, 13, 12, 0, 0, 0, time.UTC)
}

func newManager(t *testing.T, params mines.GameParams) *session.Manager {
	t.Helper()
	m, err := session.NewManager(discard, params, rand.New(rand.NewPCG(1, 2)), mines.WithNow(frozen))
	require.NoError(t, err)
	return m
}

func TestConsolePlaysToWin(t *testing.T) {
	m := newManager(t, mines.GameParams{Size: 3, MineCount: 0})
	in := strings.NewReader(strings.Join([]string{
		"m 2 2",
		"r 0 0",
		"r 2 2",
		"bogus",
		"r 9",
		"m 2 2",
		"r 2 2",
		"r 1 1",
		"q",
		"r 0 0",
	}, "\n"))
	var out bytes.Buffer

	err := New(discard, m, in, &out).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "in_progress  remaining: 9  mines: 0  time: 0:00")
	assert.Contains(t, text, "in_progress  remaining: 1  mines: 0  time: 0:00")
	assert.Contains(t, text, "skipped: cell is marked")
	assert.Contains(t, text, "error: unknown command")
	assert.Contains(t, text, "error: invalid number of arguments")
	assert.Contains(t, text, "won  remaining: 0  mines: 0  time: 0:00")
	assert.Contains(t, text, "You've won! I just won a game of Minsweeper in 0:00!")
	assert.Contains(t, text, "skipped: game is already finished")
	assert.Equal(t, mines.Won, m.Snapshot().Status)
}

func TestConsoleNewGameAndHelp(t *testing.T) {
	m := newManager(t, mines.GameParams{Size: 3, MineCount: 0})
	in := strings.NewReader("h\nn 5 3\nn 2 4\n")
	var out bytes.Buffer

	err := New(discard, m, in, &out).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, session.HelpText)
	assert.Contains(t, text, "in_progress  remaining: 22  mines: 3")
	assert.Contains(t, text, "error: unable to generate mine layout")
	assert.Equal(t, 5, m.Snapshot().Size)
}

func TestConsoleRendersBoard(t *testing.T) {
	m := newManager(t, mines.GameParams{Size: 2, MineCount: 0})
	var out bytes.Buffer

	err := New(discard, m, strings.NewReader("m 1 0\n"), &out).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "    0  1\n  0  -  -\n  1  X  -\n")
}

func TestConsoleStopsOnCancel(t *testing.T) {
	m := newManager(t, mines.GameParams{Size: 3, MineCount: 0})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(discard, m, strings.NewReader("r 0 0\n"), io.Discard).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 9, m.Snapshot().Remaining)
}

func TestConsoleStopsWhileWaitingForInput(t *testing.T) {
	m := newManager(t, mines.GameParams{Size: 3, MineCount: 0})
	in, w := io.Pipe()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- New(discard, m, in, io.Discard).Run(ctx)
	}()

	_, err := w.Write([]byte("m 0 0\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("console kept waiting for input after cancel")
	}
}
