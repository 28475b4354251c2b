package mines

type MarkOutcome struct {
	Cell    CellUpdate
	Skipped error // why the toggle was a no-op; nil if it had effect
}

// ToggleMark flips the suspected-mine flag of a hidden cell.
func (s *GameSession) ToggleMark(row, col int) MarkOutcome {
	p := Point{Row: row, Col: col}
	if !s.grid.InBounds(row, col) {
		return MarkOutcome{Cell: CellUpdate{Point: p, State: Hidden}, Skipped: ErrOutOfBounds}
	}

	outcome := MarkOutcome{}
	switch {
	case s.IsFinished():
		outcome.Skipped = ErrGameFinished
	case s.grid.IsRevealed(row, col):
		outcome.Skipped = ErrCellRevealed
	default:
		i := s.grid.index(row, col)
		s.grid.marked[i] = !s.grid.marked[i]
	}
	outcome.Cell = CellUpdate{Point: p, State: s.grid.State(row, col)}
	return outcome
}
