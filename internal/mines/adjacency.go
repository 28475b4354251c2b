package mines

// CountAdjacentMines returns the number of mines among the up to 8 in-bounds
// neighbours of a cell. It is 0 for out-of-bounds positions.
func (g *Grid) CountAdjacentMines(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}
	n := 0
	for _, d := range neighborOffsets {
		if g.HasMine(row+d.Row, col+d.Col) {
			n++
		}
	}
	return n
}
