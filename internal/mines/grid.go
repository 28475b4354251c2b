package mines

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type CellState int8

const (
	Marked CellState = -2
	Hidden CellState = -1
	Mine   CellState = 64
	/*
	 * Each cell of a rendered board is one of the following values:
	 *
	 *  - -2 means the cell is marked as a suspected mine.
	 *
	 *  - -1 means the cell is hidden.
	 *
	 *  - 0 to 8 mean the cell is revealed and has that many mines
	 *    among its neighbours. 0 is displayed blank.
	 *
	 *  - 64 means the cell is a revealed mine. A lost game has
	 *    exactly one of these: the mine the player hit.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "-"
	case s == Marked:
		return "X"
	case s == Mine:
		return "!!"
	case s == 0:
		return ""
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// [CellState] implements [json.Marshaler]
func (s CellState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Neighbour offsets in flood order: north, west, south, east, northwest,
// southwest, northeast, southeast.
var neighborOffsets = [8]Point{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Grid is a square matrix of cells stored as parallel row-major flag slices.
// Only the owning [GameSession] mutates it.
type Grid struct {
	size     int
	mines    []bool /* real mine positions */
	revealed []bool
	marked   []bool
}

func newGrid(size int, mines []bool) *Grid {
	return &Grid{
		size:     size,
		mines:    mines,
		revealed: make([]bool, size*size),
		marked:   make([]bool, size*size),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(row, col int) bool {
	return 0 <= row && row < g.size && 0 <= col && col < g.size
}

func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

func (g *Grid) point(i int) Point {
	return Point{Row: i / g.size, Col: i % g.size}
}

func (g *Grid) HasMine(row, col int) bool {
	return g.InBounds(row, col) && g.mines[g.index(row, col)]
}

func (g *Grid) IsRevealed(row, col int) bool {
	return g.InBounds(row, col) && g.revealed[g.index(row, col)]
}

func (g *Grid) IsMarked(row, col int) bool {
	return g.InBounds(row, col) && g.marked[g.index(row, col)]
}

// Neighbors returns the in-bounds neighbours of a cell in flood order.
func (g *Grid) Neighbors(row, col int) []Point {
	points := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if g.InBounds(row+d.Row, col+d.Col) {
			points = append(points, Point{Row: row + d.Row, Col: col + d.Col})
		}
	}
	return points
}

func (g *Grid) MineCount() (count int) {
	for _, m := range g.mines {
		if m {
			count++
		}
	}
	return
}

// State is the display value of a single cell.
func (g *Grid) State(row, col int) CellState {
	i := g.index(row, col)
	switch {
	case g.revealed[i] && g.mines[i]:
		return Mine
	case g.revealed[i]:
		return CellState(g.CountAdjacentMines(row, col))
	case g.marked[i]:
		return Marked
	default:
		return Hidden
	}
}
