package session

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsweeper/minsweeper/internal/mines"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestManager(t *testing.T, params mines.GameParams, opts ...mines.Option) *Manager {
	t.Helper()
	m, err := NewManager(discard, params, rand.New(rand.NewPCG(1, 2)), opts...)
	require.NoError(t, err)
	return m
}

func TestNewManagerInvalidDefaults(t *testing.T) {
	_, err := NewManager(discard, mines.GameParams{Size: 0}, rand.New(rand.NewPCG(1, 2)))
	assert.ErrorIs(t, err, mines.ErrInvalidSize)

	_, err = NewManager(discard, mines.GameParams{Size: 3, MineCount: 9}, rand.New(rand.NewPCG(1, 2)))
	assert.ErrorIs(t, err, mines.ErrInvalidMineCount)
}

func TestManagerSnapshot(t *testing.T) {
	m := newTestManager(t, mines.DefaultParams(9))

	s := m.Snapshot()

	assert.Equal(t, 9, s.Size)
	assert.Equal(t, 10, s.MineCount)
	assert.Equal(t, mines.InProgress, s.Status)
	assert.Equal(t, 71, s.Remaining)
	assert.Equal(t, "0:00", s.Elapsed)
	assert.Nil(t, s.StartedAt)
	assert.Nil(t, s.EndedAt)
	assert.Nil(t, s.Exploded)
	require.Len(t, s.Board, 9)
	for _, row := range s.Board {
		require.Len(t, row, 9)
		for _, cell := range row {
			assert.Equal(t, mines.Hidden, cell)
		}
	}

	// re-entry reads the same game
	again := m.Snapshot()
	assert.Equal(t, s, again)
}

func TestManagerNewGameReplacesSession(t *testing.T) {
	m := newTestManager(t, mines.DefaultParams(5))
	first := m.Snapshot()
	m.ToggleMark(0, 0)

	s, err := m.NewGame(&mines.GameParams{Size: 4, MineCount: 2})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, s.ID)
	assert.Equal(t, 4, s.Size)
	assert.Equal(t, 2, s.MineCount)
	assert.Equal(t, mines.Hidden, s.Board[0][0])

	s, err = m.NewGame(nil)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Size)
	assert.Equal(t, mines.DefaultMineCount(5), s.MineCount)
}

func TestManagerNewGameInvalidKeepsSession(t *testing.T) {
	m := newTestManager(t, mines.DefaultParams(5))
	before := m.Snapshot()

	_, err := m.NewGame(&mines.GameParams{Size: 2, MineCount: 4})

	assert.ErrorIs(t, err, mines.ErrInvalidMineCount)
	assert.Equal(t, before, m.Snapshot())
}

func TestManagerWinAndSummary(t *testing.T) {
	clock := &fakeClock{t: time.Date(2016, 4, 13, 12, 0, 0, 0, time.UTC)}
	m := newTestManager(t, mines.GameParams{Size: 3, MineCount: 0}, mines.WithNow(clock.now))

	_, err := m.Summary()
	assert.ErrorIs(t, err, ErrGameInProgress)

	mark, s := m.ToggleMark(2, 2)
	require.NoError(t, mark.Skipped)
	assert.Equal(t, mines.Marked, s.Board[2][2])

	outcome, s := m.Reveal(0, 0)
	require.NoError(t, outcome.Skipped)
	assert.False(t, outcome.Ended)
	require.NotNil(t, s.StartedAt)
	assert.Equal(t, 1, s.Remaining)

	clock.advance(65 * time.Second)
	m.ToggleMark(2, 2)
	outcome, s = m.Reveal(2, 2)

	assert.True(t, outcome.Ended)
	assert.Equal(t, mines.Won, s.Status)
	assert.Equal(t, "1:05", s.Elapsed)
	require.NotNil(t, s.EndedAt)
	assert.Equal(t, int64(65_000), *s.EndedAt-*s.StartedAt)

	summary, err := m.Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Won:      true,
		Title:    "You've won!",
		Duration: "1:05",
		Message:  "I just won a game of Minsweeper in 1:05!",
	}, summary)
}

func TestLostSummary(t *testing.T) {
	game, err := mines.NewGameFromLayout(2, []mines.Point{{Row: 0, Col: 0}})
	require.NoError(t, err)
	game.Reveal(0, 0)

	summary := newSummary(game)

	assert.False(t, summary.Won)
	assert.Equal(t, "You've lost!", summary.Title)
	assert.Equal(t, "I just lost a game of Minsweeper in 0:00!", summary.Message)
}

func TestManagerPlaysToEnd(t *testing.T) {
	m := newTestManager(t, mines.GameParams{Size: 3, MineCount: 8})

	var s Snapshot
	for row := range 3 {
		for col := range 3 {
			_, s = m.Reveal(row, col)
		}
	}

	require.NotEqual(t, mines.InProgress, s.Status)
	summary, err := m.Summary()
	require.NoError(t, err)
	assert.Equal(t, s.Status == mines.Won, summary.Won)
	if s.Status == mines.Lost {
		require.NotNil(t, s.Exploded)
		assert.Equal(t, mines.Mine, s.Board[s.Exploded.Row][s.Exploded.Col])
	}

	outcome, after := m.Reveal(0, 0)
	assert.ErrorIs(t, outcome.Skipped, mines.ErrGameFinished)
	assert.Equal(t, s, after)
}

func TestSnapshotJSON(t *testing.T) {
	m := newTestManager(t, mines.GameParams{Size: 2, MineCount: 0})
	m.ToggleMark(1, 1)

	b, err := json.Marshal(m.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "in_progress", decoded["status"])
	assert.Equal(t, []any{
		[]any{"-", "-"},
		[]any{"-", "X"},
	}, decoded["board"])
	assert.NotContains(t, decoded, "started_at")
	assert.NotContains(t, decoded, "exploded")
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := newTestManager(t, mines.DefaultParams(8))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 20 {
				m.ToggleMark(i, j%8)
				m.Snapshot()
				m.Render()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, mines.InProgress, m.Snapshot().Status)
}
