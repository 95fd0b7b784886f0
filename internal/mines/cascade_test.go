package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleCount(f *Field) (n int) {
	for _, c := range f.Cells() {
		if c.Visible {
			n++
		}
	}
	return
}

func TestCascadeOpensRegionAndBorder(t *testing.T) {
	f, err := NewWithMines(5, 5, []Point{{4, 4}}, WithCascadeDepth(UnboundedCascade))
	require.NoError(t, err)

	mine, revealed := f.RevealCells(0, 0)
	assert.False(t, mine)
	assert.Len(t, revealed, 24)
	assert.Equal(t, Point{0, 0}, revealed[0])

	assert.Equal(t, ""+
		". . . . .\n"+
		". . . . .\n"+
		". . . . .\n"+
		". . . 1 1\n"+
		". . . 1 #\n", f.String())
}

func TestCascadeStopsAtNumberedRing(t *testing.T) {
	/*
	 * Mines along column 2 split the board; the empty region on the left
	 * ends at the numbered column 1 and nothing right of the wall opens.
	 */
	f, err := NewWithMines(
		5, 3, []Point{{2, 0}, {2, 1}, {2, 2}},
		WithCascadeDepth(UnboundedCascade),
	)
	require.NoError(t, err)

	assert.False(t, f.Reveal(0, 1))
	assert.Equal(t, ""+
		". 2 # # #\n"+
		". 3 # # #\n"+
		". 2 # # #\n", f.String())
}

func TestCascadeDepthCutoff(t *testing.T) {
	f, err := NewWithMines(20, 1, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultCascadeDepth, f.CascadeDepth())

	_, revealed := f.RevealCells(0, 0)

	// depths 0..5 expand, the cell at depth 6 opens but stops there
	assert.Len(t, revealed, DefaultCascadeDepth+2)
	for x := range 20 {
		c, _ := f.At(x, 0)
		assert.Equal(t, x <= DefaultCascadeDepth+1, c.Visible, "cell %d", x)
	}

	// a second reveal further along continues from there
	_, revealed = f.RevealCells(10, 0)
	assert.NotEmpty(t, revealed)
	c, _ := f.At(8, 0)
	assert.True(t, c.Visible)
}

func TestCascadeConfiguredDepth(t *testing.T) {
	tests := []struct {
		depth   int
		visible int
	}{
		{0, 2},
		{1, 3},
		{3, 5},
		{UnboundedCascade, 30},
	}
	for _, test := range tests {
		f, err := NewWithMines(30, 1, nil, WithCascadeDepth(test.depth))
		require.NoError(t, err)

		f.Reveal(0, 0)
		assert.Equal(t, test.visible, visibleCount(f), "depth %d", test.depth)
	}
}

func TestCascadeSkipsFlags(t *testing.T) {
	f, err := NewWithMines(6, 1, nil, WithCascadeDepth(UnboundedCascade))
	require.NoError(t, err)
	f.Flag(2, 0)

	f.Reveal(0, 0)
	assert.Equal(t, ". . F # # #\n", f.String())
	assert.Equal(t, 1, f.Flags())
}

func TestCascadeNeverRevealsMines(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		f, err := New(16, 16, 30, r, WithCascadeDepth(UnboundedCascade))
		require.NoError(t, err)

		for y := range f.Height() {
			for x := range f.Width() {
				if c, _ := f.At(x, y); c.Type == Empty {
					f.Reveal(x, y)
				}
			}
		}
		for _, c := range f.Cells() {
			if c.Type == Mine {
				require.False(t, c.Visible)
			}
		}
	}
}

func TestCascadeRevealsWholeEmptyRegion(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	f, err := New(20, 20, 40, r, WithCascadeDepth(UnboundedCascade))
	require.NoError(t, err)

	var start *Point
	for y := range f.Height() {
		for x := range f.Width() {
			if c, _ := f.At(x, y); c.Type == Empty && start == nil {
				start = &Point{x, y}
			}
		}
	}
	require.NotNil(t, start)

	// flood fill over the empty region without the engine
	want := map[Point]bool{*start: true}
	stack := []Point{*start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c, _ := f.At(p.X, p.Y); c.Type != Empty {
			continue
		}
		for _, n := range f.Neighbors(p.X, p.Y) {
			if !want[n] {
				want[n] = true
				stack = append(stack, n)
			}
		}
	}

	_, revealed := f.RevealCells(start.X, start.Y)
	assert.Len(t, revealed, len(want))
	for _, p := range revealed {
		assert.True(t, want[p], "unexpected %v", p)
	}
}

func TestCascadeLargeBoard(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	f, err := NewWithMines(500, 500, nil, WithCascadeDepth(UnboundedCascade))
	require.NoError(t, err)

	_, revealed := f.RevealCells(250, 250)
	assert.Len(t, revealed, 500*500)
}
