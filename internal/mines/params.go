package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

// MaxCells bounds width*height for a single field.
const MaxCells = 1 << 20

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidParams, p.Width)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidParams, p.Height)
	case p.Width > MaxCells/p.Height:
		return fmt.Errorf(
			"%w: field %dx%d is larger than %d cells",
			ErrInvalidParams, p.Width, p.Height, MaxCells,
		)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	case p.MineCount > p.Width*p.Height:
		return fmt.Errorf(
			"%w: not enough space for %d mines (%d > %d * %d)",
			ErrInvalidParams, p.MineCount, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
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
