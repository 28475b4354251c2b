package mines

import (
	"fmt"
	"strings"
)

// MaxSize is the largest board side accepted by [GameParams.Validate].
const MaxSize = 256

type GameParams struct {
	Size, MineCount int
}

// DefaultMineCount is the mine count used when only a size is given: one mine
// per eight cells, at least one, always leaving a safe cell.
func DefaultMineCount(size int) int {
	if size <= 1 {
		return 0
	}
	return min(max(1, size*size/8), size*size-1)
}

func DefaultParams(size int) GameParams {
	return GameParams{Size: size, MineCount: DefaultMineCount(size)}
}

func (p GameParams) Unpack() (size int, mineCount int) {
	return p.Size, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Size * p.Size
}

func (p GameParams) Validate() error {
	if p.Size <= 0 || p.Size > MaxSize {
		return fmt.Errorf("%w (size = %d, max size = %d)", ErrInvalidSize, p.Size, MaxSize)
	}
	if p.MineCount < 0 || p.MineCount >= p.Cells() {
		return fmt.Errorf(
			"%w (size = %d, mine count = %d)", ErrInvalidMineCount, p.Size, p.MineCount,
		)
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Size, p.Size, p.MineCount)
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d", p.Size, p.MineCount)
}

// ParseSeed reads params written by [GameParams.Seed]. A bare size ("9")
// gets [DefaultMineCount] mines.
func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.TrimSpace(strings.ReplaceAll(seed, ":", " "))
	if !strings.Contains(sseed, " ") {
		if _, err := fmt.Sscanf(sseed, "%d", &p.Size); err != nil {
			return nil, fmt.Errorf(`invalid game params seed (sseed = "%s", err = %w)`, sseed, err)
		}
		p.MineCount = DefaultMineCount(p.Size)
	} else if n, err := fmt.Sscanf(sseed, "%d %d", &p.Size, &p.MineCount); n != 2 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
