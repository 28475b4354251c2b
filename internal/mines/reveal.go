package mines

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type CellUpdate struct {
	Point
	State CellState `json:"state"`
}

type RevealOutcome struct {
	Cells   []CellUpdate // every cell whose display value changed
	Status  Status
	Ended   bool  // the reveal moved the game to Lost or Won
	Skipped error // why the reveal was a no-op; nil if it had effect
}

// Reveal opens a cell. Opening a cell with no adjacent mines floods through
// its zero-count region and the ring of numbered cells around it. Requests on
// a finished game, out-of-bounds, revealed or marked cells are no-ops.
func (s *GameSession) Reveal(row, col int) RevealOutcome {
	outcome := RevealOutcome{Status: s.status}

	switch {
	case s.IsFinished():
		outcome.Skipped = ErrGameFinished
	case !s.grid.InBounds(row, col):
		outcome.Skipped = ErrOutOfBounds
	case s.grid.IsRevealed(row, col):
		outcome.Skipped = ErrCellRevealed
	case s.grid.IsMarked(row, col):
		outcome.Skipped = ErrCellMarked
	}
	if outcome.Skipped != nil {
		return outcome
	}

	s.clock.Start()

	var changed []int
	if s.grid.HasMine(row, col) {
		/*
		 * The player has landed on a mine. This cell stays the only
		 * revealed mine so it can be told apart from the rest.
		 */
		s.exploded = s.grid.index(row, col)
		s.grid.revealed[s.exploded] = true
		changed = append(changed, s.exploded)
	} else {
		changed = s.flood(row, col)
	}
	changed = append(changed, s.settle()...)

	outcome.Cells = s.updates(changed)
	outcome.Status = s.status
	outcome.Ended = s.status != InProgress
	return outcome
}

// flood reveals a safe cell and, through a worklist, every cell reachable
// over zero-count cells. Marked cells are impassable.
func (s *GameSession) flood(row, col int) (opened []int) {
	g := s.grid

	var todo deque.Deque[Point]
	todo.PushBack(Point{Row: row, Col: col})

	for todo.Len() > 0 {
		p := todo.PopFront()
		i := g.index(p.Row, p.Col)
		if g.revealed[i] || g.marked[i] {
			continue
		}

		g.revealed[i] = true
		s.remaining--
		ensure(s.remaining >= 0, "remaining safe cell count went negative", logrus.Fields{
			"cell":      p.String(),
			"remaining": s.remaining,
		})
		ensure(!g.mines[i], "flood reached a mine", logrus.Fields{"cell": p.String()})
		opened = append(opened, i)

		if g.CountAdjacentMines(p.Row, p.Col) != 0 {
			continue
		}
		for _, n := range g.Neighbors(p.Row, p.Col) {
			j := g.index(n.Row, n.Col)
			if !g.revealed[j] && !g.marked[j] {
				todo.PushBack(n)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"start":     Point{Row: row, Col: col}.String(),
		"opened":    len(opened),
		"remaining": s.remaining,
	}).Debug("flood reveal")
	return
}

func (s *GameSession) updates(changed []int) []CellUpdate {
	if len(changed) == 0 {
		return nil
	}
	cells := make([]CellUpdate, 0, len(changed))
	for _, i := range changed {
		p := s.grid.point(i)
		cells = append(cells, CellUpdate{Point: p, State: s.grid.State(p.Row, p.Col)})
	}
	return cells
}
