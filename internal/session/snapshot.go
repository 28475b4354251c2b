package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/minsweeper/minsweeper/internal/mines"
)

var ErrGameInProgress = errors.New("game is still in progress")

const HelpText = "The goal is to clear the minefield. Reveal all the cells " +
	"that don't contain a mine. Mark the cells you think hide a mine. The " +
	"numbers represent how many of the cells around a cell contain a mine. " +
	"If you reveal a mine, you lose!"

type Snapshot struct {
	ID        uuid.UUID           `json:"id"`
	Size      int                 `json:"size"`
	MineCount int                 `json:"mine_count"`
	Status    mines.Status        `json:"status"`
	Remaining int                 `json:"remaining"`
	Elapsed   string              `json:"elapsed"`
	StartedAt *int64              `json:"started_at,omitempty"`
	EndedAt   *int64              `json:"ended_at,omitempty"`
	Exploded  *mines.Point        `json:"exploded,omitempty"`
	Board     [][]mines.CellState `json:"board"`
}

func unixMilli(t time.Time, ok bool) *int64 {
	if !ok {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func (m *Manager) snapshot() Snapshot {
	g := m.game
	s := Snapshot{
		ID:        m.id,
		Size:      g.Size(),
		MineCount: g.MineCount(),
		Status:    g.Status(),
		Remaining: g.RemainingSafeCells(),
		Elapsed:   mines.FormatDuration(g.Elapsed()),
		StartedAt: unixMilli(g.StartTime()),
		EndedAt:   unixMilli(g.EndTime()),
		Board:     g.Board(),
	}
	if p, ok := g.Exploded(); ok {
		s.Exploded = &p
	}
	return s
}

type Summary struct {
	Won      bool   `json:"won"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Message  string `json:"message"`
}

func newSummary(g *mines.GameSession) Summary {
	won := g.Won()
	verb, title := "lost", "You've lost!"
	if won {
		verb, title = "won", "You've won!"
	}
	duration := mines.FormatDuration(g.Elapsed())
	return Summary{
		Won:      won,
		Title:    title,
		Duration: duration,
		Message:  fmt.Sprintf("I just %s a game of Minsweeper in %s!", verb, duration),
	}
}
