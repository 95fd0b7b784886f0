// Package atlas maps cells onto the tiles of a 64x64 sprite sheet of
// 16x16 tiles, four per row.
package atlas

import "github.com/vancomm/minefield/internal/mines"

const (
	CellSize = 16
	Width    = 64
	RowCount = 4
)

const (
	TileEmpty  = 0
	TileHidden = 9
	TileFlag   = 10
	TileMine   = 12
)

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Index picks the tile for c. An incorrect cell uses the tile right after
// its normal one; a flag always wins.
func Index(c mines.Cell) int {
	if c.Flag {
		return TileFlag
	}
	if !c.Visible {
		return TileHidden
	}

	var index int
	switch {
	case c.Type.IsMine():
		index = TileMine
	case c.Type.IsSafe():
		index = c.Type.Count()
	default:
		index = TileEmpty
	}
	if c.Incorrect {
		index++
	}
	return index
}

// TileRect locates tile index on the sheet. Indexes past the sheet map to the
// fallback tile at (Width, Width).
func TileRect(index int) Rect {
	if index > RowCount*RowCount {
		return Rect{Width, Width, CellSize, CellSize}
	}
	return Rect{
		X: (index * CellSize) % Width,
		Y: (index / RowCount) * CellSize,
		W: CellSize,
		H: CellSize,
	}
}

func CellRect(c mines.Cell) Rect {
	return TileRect(Index(c))
}
