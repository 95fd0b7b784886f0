package mines

import "strconv"

// CellType is fixed when the field is built: [Mine], [Empty], or a safe
// cell counting 1 to 8 mined neighbours.
type CellType int8

const (
	Mine  CellType = -1
	Empty CellType = 0
	// 1-8 for safe cells with the given number of mined neighbours
)

// Safe returns the type of a non-mine cell with n mined neighbours.
func Safe(n int) CellType {
	switch {
	case n <= 0:
		return Empty
	case n > 8:
		return CellType(8)
	default:
		return CellType(n)
	}
}

func (t CellType) IsMine() bool { return t == Mine }
func (t CellType) IsEmpty() bool { return t == Empty }
func (t CellType) IsSafe() bool { return t > 0 }

// Count is the number of mined neighbours, zero for mines and empty cells.
func (t CellType) Count() int {
	if t > 0 {
		return int(t)
	}
	return 0
}

func (t CellType) String() string {
	switch {
	case t == Mine:
		return "mine"
	case t == Empty:
		return "empty"
	default:
		return "safe(" + strconv.Itoa(int(t)) + ")"
	}
}

type Cell struct {
	Type      CellType
	Visible   bool
	Flag      bool
	Incorrect bool
}

// Glyph is the single character used by [Grid.String].
func (c Cell) Glyph() string {
	switch {
	case c.Flag && c.Incorrect:
		return "X"
	case c.Flag:
		return "F"
	case !c.Visible:
		return "#"
	case c.Type == Mine && c.Incorrect:
		return "!"
	case c.Type == Mine:
		return "*"
	case c.Type == Empty:
		return "."
	default:
		return strconv.Itoa(c.Type.Count())
	}
}
