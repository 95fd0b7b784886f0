package mines

import (
	"iter"
	"strings"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a row-major buffer of cells: (x, y) lives at y*width+x.
type Grid struct {
	width, height int
	cells         []Cell
}

func newGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) point(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

// cell returns nil when (x, y) is outside the grid.
func (g *Grid) cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// At returns a copy of the cell at (x, y).
func (g *Grid) At(x, y int) (Cell, bool) {
	c := g.cell(x, y)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// Neighbors yields the Moore neighbourhood of (x, y) clipped to the grid.
func (g *Grid) Neighbors(x, y int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !g.InBounds(x+dx, y+dy) {
					continue
				}
				if !yield(Point{x + dx, y + dy}) {
					return
				}
			}
		}
	}
}

func (g *Grid) countMines(x, y int) int {
	n := 0
	for p := range g.Neighbors(x, y) {
		if g.cells[g.index(p.X, p.Y)].Type == Mine {
			n++
		}
	}
	return n
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.cells[g.index(x, y)].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
