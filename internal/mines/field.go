package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

const (
	// DefaultCascadeDepth is how many rings of empty cells a single reveal
	// expands through before it stops.
	DefaultCascadeDepth = 5
	UnboundedCascade    = -1
)

// Field owns the grid and every rule that mutates it. It is not safe for
// concurrent use.
type Field struct {
	grid         Grid
	mineCount    int
	correctFlags int
	flags        int
	cascadeDepth int
	logger       *slog.Logger
}

type Option func(*Field)

// WithCascadeDepth bounds the flood reveal; a negative depth disables the
// bound.
func WithCascadeDepth(depth int) Option {
	return func(f *Field) {
		f.cascadeDepth = depth
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		f.logger = logger
	}
}

func newField(width, height int, opts []Option) *Field {
	f := &Field{
		grid:         newGrid(width, height),
		cascadeDepth: DefaultCascadeDepth,
		logger:       Log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New builds a width x height field with exactly mineCount mines drawn
// from r.
func New(width, height, mineCount int, r *rand.Rand, opts ...Option) (*Field, error) {
	params := GameParams{Width: width, Height: height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	f := newField(width, height, opts)

	/*
	 * Pick mineCount positions off the candidate list, moving the last
	 * candidate into each picked slot so no cell is drawn twice.
	 */
	candidates := make([]int, len(f.grid.cells))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		f.grid.cells[candidates[i]].Type = Mine
		k--
		candidates[i] = candidates[k]
	}

	f.mineCount = mineCount
	f.countNeighbors()

	f.logger.Debug("field generated", slog.String("params", params.Seed()))

	return f, nil
}

// NewWithMines builds a field with mines at exactly the given points.
// Repeated points count once.
func NewWithMines(width, height int, mines []Point, opts ...Option) (*Field, error) {
	params := GameParams{Width: width, Height: height}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	f := newField(width, height, opts)
	for _, p := range mines {
		c := f.grid.cell(p.X, p.Y)
		if c == nil {
			return nil, fmt.Errorf(
				"%w: mine at (%d, %d) outside %dx%d field",
				ErrInvalidParams, p.X, p.Y, width, height,
			)
		}
		if c.Type != Mine {
			c.Type = Mine
			f.mineCount++
		}
	}
	f.countNeighbors()

	return f, nil
}

func (f *Field) countNeighbors() {
	for y := range f.grid.height {
		for x := range f.grid.width {
			c := f.grid.cell(x, y)
			if c.Type == Mine {
				continue
			}
			c.Type = Safe(f.grid.countMines(x, y))
		}
	}
}

func (f *Field) Width() int { return f.grid.width }
func (f *Field) Height() int { return f.grid.height }
func (f *Field) MineCount() int { return f.mineCount }
func (f *Field) CorrectFlags() int { return f.correctFlags }

// Flags is the number of cells currently flagged, right or wrong.
func (f *Field) Flags() int { return f.flags }

func (f *Field) CascadeDepth() int { return f.cascadeDepth }

func (f *Field) InBounds(x, y int) bool { return f.grid.InBounds(x, y) }

func (f *Field) At(x, y int) (Cell, bool) { return f.grid.At(x, y) }

// Cells returns a row-major copy of every cell.
func (f *Field) Cells() []Cell {
	cells := make([]Cell, len(f.grid.cells))
	copy(cells, f.grid.cells)
	return cells
}

func (f *Field) Neighbors(x, y int) []Point {
	var points []Point
	for p := range f.grid.Neighbors(x, y) {
		points = append(points, p)
	}
	return points
}

func (f *Field) String() string { return f.grid.String() }

// Reveal opens (x, y) and reports whether it was a mine. Flagged, visible
// and out-of-bounds cells are left alone.
func (f *Field) Reveal(x, y int) bool {
	mine, _ := f.RevealCells(x, y)
	return mine
}

// RevealCells is [Field.Reveal] that also returns every point it made
// visible, (x, y) first.
func (f *Field) RevealCells(x, y int) (mine bool, revealed []Point) {
	c := f.grid.cell(x, y)
	if c == nil || c.Flag || c.Visible {
		return false, nil
	}

	c.Visible = true
	if c.Type == Mine {
		c.Incorrect = true
		f.logger.Debug("mine revealed", slog.Int("x", x), slog.Int("y", y))
		return true, []Point{{x, y}}
	}

	revealed = append(revealed, Point{x, y})
	if c.Type == Empty {
		revealed = f.cascade(Point{x, y}, revealed)
	}
	return false, revealed
}

// Flag toggles the flag on a hidden cell.
func (f *Field) Flag(x, y int) {
	c := f.grid.cell(x, y)
	if c == nil || c.Visible {
		return
	}

	c.Flag = !c.Flag
	if c.Flag {
		f.flags++
	} else {
		f.flags--
	}

	if c.Type != Mine {
		return
	}
	if c.Flag {
		f.correctFlags++
	} else {
		f.correctFlags--
	}
}

// RevealAll shows the whole board and marks every flag placed on a
// non-mine as incorrect.
func (f *Field) RevealAll() {
	for i := range f.grid.cells {
		c := &f.grid.cells[i]
		c.Visible = true
		if c.Flag && c.Type != Mine {
			c.Incorrect = true
		}
	}
}

// IsWin reports whether exactly totalMines mines carry a flag.
func (f *Field) IsWin(totalMines int) bool {
	return f.correctFlags == totalMines
}
