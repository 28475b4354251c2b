package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// GameSession is the whole state of one game, from creation to Lost or Won.
// It is not safe for concurrent use; callers serialise access.
type GameSession struct {
	params    GameParams
	grid      *Grid
	remaining int /* safe cells still hidden; 0 wins */
	status    Status
	exploded  int /* index of the mine that lost the game, or -1 */
	clock     *Clock
}

type Option func(*GameSession)

// WithNow replaces the time source of the session clock.
func WithNow(now func() time.Time) Option {
	return func(s *GameSession) {
		s.clock = newClock(now)
	}
}

func NewGame(params GameParams, r *rand.Rand, opts ...Option) (*GameSession, error) {
	grid, err := GenerateLayout(params, r)
	if err != nil {
		return nil, fmt.Errorf("unable to generate mine layout: %w", err)
	}
	return newGameSession(params, grid, opts)
}

// NewGameFromLayout creates a session with mines at exactly the given points.
func NewGameFromLayout(size int, mines []Point, opts ...Option) (*GameSession, error) {
	grid, err := layoutFromPoints(size, mines)
	if err != nil {
		return nil, fmt.Errorf("unable to place mines: %w", err)
	}
	return newGameSession(GameParams{Size: size, MineCount: len(mines)}, grid, opts)
}

func newGameSession(params GameParams, grid []bool, opts []Option) (state *GameSession, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				state, err = nil, ae
				return
			}
			panic(r)
		}
	}()

	state = &GameSession{
		params:    params,
		grid:      newGrid(params.Size, grid),
		remaining: params.Cells() - params.MineCount,
		status:    InProgress,
		exploded:  -1,
		clock:     newClock(nil),
	}
	for _, opt := range opts {
		opt(state)
	}

	ensure(state.grid.MineCount() == params.MineCount, "layout does not match mine count", logrus.Fields{
		"params": params.String(),
		"mines":  state.grid.MineCount(),
	})

	Log.WithField("params", params.String()).Debug("new game")
	return state, nil
}

func (s *GameSession) Params() GameParams {
	return s.params
}

func (s *GameSession) Size() int {
	return s.params.Size
}

func (s *GameSession) MineCount() int {
	return s.params.MineCount
}

func (s *GameSession) Status() Status {
	return s.status
}

func (s *GameSession) IsFinished() bool {
	return s.status != InProgress
}

// Won is meaningful only once the game is finished.
func (s *GameSession) Won() bool {
	return s.status == Won
}

func (s *GameSession) Started() bool {
	return s.clock.Started()
}

func (s *GameSession) RemainingSafeCells() int {
	return s.remaining
}

// Elapsed is frozen once the game is finished and zero before the first
// reveal.
func (s *GameSession) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

func (s *GameSession) StartTime() (time.Time, bool) {
	return s.clock.StartTime(), s.clock.Started()
}

func (s *GameSession) EndTime() (time.Time, bool) {
	return s.clock.EndTime(), s.clock.Stopped()
}

// Exploded returns the mine that lost the game.
func (s *GameSession) Exploded() (Point, bool) {
	if s.exploded < 0 {
		return Point{}, false
	}
	return s.grid.point(s.exploded), true
}

func (s *GameSession) InBounds(row, col int) bool {
	return s.grid.InBounds(row, col)
}

func (s *GameSession) HasMine(row, col int) bool {
	return s.grid.HasMine(row, col)
}

func (s *GameSession) IsRevealed(row, col int) bool {
	return s.grid.IsRevealed(row, col)
}

func (s *GameSession) IsMarked(row, col int) bool {
	return s.grid.IsMarked(row, col)
}

func (s *GameSession) CountAdjacentMines(row, col int) int {
	return s.grid.CountAdjacentMines(row, col)
}

// CellState returns [Hidden] for out-of-bounds positions.
func (s *GameSession) CellState(row, col int) CellState {
	if !s.grid.InBounds(row, col) {
		return Hidden
	}
	return s.grid.State(row, col)
}

// Board returns the display value of every cell, row by row.
func (s *GameSession) Board() [][]CellState {
	board := make([][]CellState, s.params.Size)
	for row := range board {
		board[row] = make([]CellState, s.params.Size)
		for col := range board[row] {
			board[row][col] = s.grid.State(row, col)
		}
	}
	return board
}

// [GameSession] implements [fmt.Stringer]
func (s *GameSession) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for col := range s.params.Size {
		fmt.Fprintf(&b, "%3d", col)
	}
	fmt.Fprint(&b, "\n")
	for row := range s.params.Size {
		fmt.Fprintf(&b, "%3d", row)
		for col := range s.params.Size {
			fmt.Fprintf(&b, "%3s", s.grid.State(row, col).String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
