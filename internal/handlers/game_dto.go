package handlers

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/atlas"
	"github.com/vancomm/minefield/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type CreateNewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	err := decoder.Decode(&pos, src)
	return pos, err
}

type GameMove uint8

const (
	Open GameMove = iota + 1
	Flag
	Chord
	LAST_MOVE
)

func (m GameMove) String() string {
	switch m {
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return fmt.Sprintf("GameMove(%d)", m)
	}
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for i := 1; i < int(LAST_MOVE); i++ {
		allowedMoves = append(allowedMoves, "'"+GameMove(i).String()+"'")
	}
	ErrBadMove = fmt.Errorf("move must be one of %s", strings.Join(allowedMoves, ", "))
}

func ParseGameMove(s string) (move GameMove, err error) {
	switch strings.ToLower(s) {
	case "open", "o":
		move = Open
	case "flag", "f":
		move = Flag
	case "chord", "c":
		move = Chord
	default:
		err = ErrBadMove
	}
	return
}

// CellDTO hides the type of cells the player has not seen yet.
type CellDTO struct {
	Type      string     `json:"type,omitempty"`
	Count     int        `json:"count,omitempty"`
	Visible   bool       `json:"visible"`
	Flag      bool       `json:"flag"`
	Incorrect bool       `json:"incorrect"`
	Sprite    atlas.Rect `json:"sprite"`
}

func NewCellDTO(c mines.Cell) CellDTO {
	dto := CellDTO{
		Visible:   c.Visible,
		Flag:      c.Flag,
		Incorrect: c.Incorrect,
		Sprite:    atlas.CellRect(c),
	}
	if c.Visible {
		switch {
		case c.Type.IsMine():
			dto.Type = "mine"
		case c.Type.IsSafe():
			dto.Type = "safe"
			dto.Count = c.Type.Count()
		default:
			dto.Type = "empty"
		}
	}
	return dto
}

type GameDTO struct {
	State     string        `json:"state"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	MineCount int           `json:"mine_count"`
	MinesLeft int           `json:"mines_left"`
	Cells     []CellDTO     `json:"cells"`
	Revealed  []mines.Point `json:"revealed,omitempty"`
}

func NewGameDTO(g *mines.Game, revealed []mines.Point) *GameDTO {
	cells := g.Cells()
	dto := &GameDTO{
		State:     g.State().String(),
		Width:     g.Width,
		Height:    g.Height,
		MineCount: g.MineCount,
		MinesLeft: g.MinesLeft(),
		Cells:     make([]CellDTO, len(cells)),
		Revealed:  revealed,
	}
	for i, c := range cells {
		dto.Cells[i] = NewCellDTO(c)
	}
	return dto
}
