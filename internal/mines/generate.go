package mines

import (
	"fmt"
	"math/rand/v2"
)

// GenerateLayout places exactly p.MineCount mines uniformly at random over
// the p.Size*p.Size cells. The first reveal is not guaranteed to be safe.
func GenerateLayout(p GameParams, r *rand.Rand) ([]bool, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	grid := make([]bool, p.Cells())

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, p.Cells())
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid, nil
}

func layoutFromPoints(size int, mines []Point) ([]bool, error) {
	p := GameParams{Size: size, MineCount: len(mines)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	grid := make([]bool, p.Cells())
	for _, m := range mines {
		if m.Row < 0 || m.Row >= size || m.Col < 0 || m.Col >= size {
			return nil, fmt.Errorf("%w: mine %s is out of bounds", ErrInvalidLayout, m)
		}
		i := m.Row*size + m.Col
		if grid[i] {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrInvalidLayout, m)
		}
		grid[i] = true
	}
	return grid, nil
}
