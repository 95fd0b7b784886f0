package mines

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(g *Grid, x, y int) []Point {
	return slices.Collect(g.Neighbors(x, y))
}

func TestNeighborsClipped(t *testing.T) {
	g := newGrid(4, 3)

	assert.ElementsMatch(t, []Point{{1, 0}, {0, 1}, {1, 1}}, collect(&g, 0, 0))
	assert.ElementsMatch(t, []Point{{2, 1}, {2, 2}, {3, 1}}, collect(&g, 3, 2))
	assert.Len(t, collect(&g, 1, 0), 5)
	assert.Len(t, collect(&g, 1, 1), 8)
	assert.NotContains(t, collect(&g, 1, 1), Point{1, 1})
}

func TestNeighborsSingleCell(t *testing.T) {
	g := newGrid(1, 1)
	assert.Empty(t, collect(&g, 0, 0))
}

func TestNeighborsStopEarly(t *testing.T) {
	g := newGrid(3, 3)
	n := 0
	for range g.Neighbors(1, 1) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestGridBounds(t *testing.T) {
	g := newGrid(3, 2)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {5, 5}} {
		assert.False(t, g.InBounds(p.X, p.Y), "%v", p)
		assert.Nil(t, g.cell(p.X, p.Y), "%v", p)
		_, ok := g.At(p.X, p.Y)
		assert.False(t, ok, "%v", p)
	}

	g.cell(2, 1).Flag = true
	c, ok := g.At(2, 1)
	require.True(t, ok)
	assert.True(t, c.Flag)
	assert.Equal(t, Point{2, 1}, g.point(g.index(2, 1)))
}

func TestGridString(t *testing.T) {
	g := newGrid(3, 2)
	g.cell(0, 0).Visible = true
	g.cell(1, 0).Type = Safe(1)
	g.cell(1, 0).Visible = true
	g.cell(2, 1).Flag = true

	assert.Equal(t, ". 1 #\n# # F\n", g.String())
}
