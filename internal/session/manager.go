package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/minsweeper/minsweeper/internal/mines"
)

// Manager owns the one live game. Every method locks, so a Manager can be
// shared between the HTTP handlers, WebSocket connections and the console.
type Manager struct {
	mu       sync.Mutex
	logger   *slog.Logger
	defaults mines.GameParams
	rnd      *rand.Rand
	opts     []mines.Option

	id   uuid.UUID
	game *mines.GameSession
}

// NewManager validates the default params and starts the first game with
// them. opts are applied to every game the manager creates.
func NewManager(
	logger *slog.Logger,
	defaults mines.GameParams,
	rnd *rand.Rand,
	opts ...mines.Option,
) (*Manager, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default game params: %w", err)
	}

	m := &Manager{
		logger:   logger,
		defaults: defaults,
		rnd:      rnd,
		opts:     opts,
	}
	if err := m.start(defaults); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) start(params mines.GameParams) error {
	game, err := mines.NewGame(params, m.rnd, m.opts...)
	if err != nil {
		return err
	}
	m.id = uuid.New()
	m.game = game
	m.logger.Info("new game",
		slog.String("id", m.id.String()),
		slog.String("params", params.String()),
	)
	return nil
}

func (m *Manager) Defaults() mines.GameParams {
	return m.defaults
}

// NewGame replaces the live game wholesale. A nil params starts a game with
// the defaults. On error the previous game stays live.
func (m *Manager) NewGame(params *mines.GameParams) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.defaults
	if params != nil {
		p = *params
	}
	if err := m.start(p); err != nil {
		return Snapshot{}, err
	}
	return m.snapshot(), nil
}

func (m *Manager) Reveal(row, col int) (mines.RevealOutcome, Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outcome := m.game.Reveal(row, col)
	if outcome.Skipped != nil {
		m.logger.Debug("reveal skipped",
			slog.Int("row", row),
			slog.Int("col", col),
			slog.String("reason", outcome.Skipped.Error()),
		)
	}
	if outcome.Ended {
		m.logEnd()
	}
	return outcome, m.snapshot()
}

func (m *Manager) ToggleMark(row, col int) (mines.MarkOutcome, Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outcome := m.game.ToggleMark(row, col)
	if outcome.Skipped != nil {
		m.logger.Debug("mark skipped",
			slog.Int("row", row),
			slog.Int("col", col),
			slog.String("reason", outcome.Skipped.Error()),
		)
	}
	return outcome, m.snapshot()
}

// Snapshot reads the live game without changing it.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Summary returns [ErrGameInProgress] until the live game is finished.
func (m *Manager) Summary() (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.game.IsFinished() {
		return Summary{}, ErrGameInProgress
	}
	return newSummary(m.game), nil
}

// Render returns the text rendering of the live board.
func (m *Manager) Render() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.String()
}

func (m *Manager) logEnd() {
	m.logger.Info("game over",
		slog.String("id", m.id.String()),
		slog.String("status", m.game.Status().String()),
		slog.Duration("elapsed", m.game.Elapsed()),
	)
}
