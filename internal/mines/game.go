package mines

import (
	"log/slog"
	"math/rand/v2"
)

type State uint8

const (
	Playing State = iota
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Game drives a [Field] through Playing -> Lost or Playing -> Won. Once
// the game is over every move is ignored.
type Game struct {
	GameParams
	field *Field
	state State
}

func NewGame(params GameParams, r *rand.Rand, opts ...Option) (*Game, error) {
	field, err := New(params.Width, params.Height, params.MineCount, r, opts...)
	if err != nil {
		return nil, err
	}
	return &Game{GameParams: params, field: field}, nil
}

// NewGameFromField wraps an existing field, e.g. one built with
// [NewWithMines].
func NewGameFromField(field *Field) *Game {
	return &Game{
		GameParams: GameParams{
			Width:     field.Width(),
			Height:    field.Height(),
			MineCount: field.MineCount(),
		},
		field: field,
	}
}

func (g *Game) State() State { return g.state }
func (g *Game) Over() bool { return g.state != Playing }
func (g *Game) Field() *Field { return g.field }
func (g *Game) MinesLeft() int { return g.MineCount - g.field.Flags() }
func (g *Game) String() string { return g.field.String() }
func (g *Game) Cells() []Cell { return g.field.Cells() }
func (g *Game) CorrectFlags() int { return g.field.CorrectFlags() }

// Open reveals (x, y) and returns the points that became visible.
func (g *Game) Open(x, y int) []Point {
	if g.Over() {
		return nil
	}
	mine, revealed := g.field.RevealCells(x, y)
	if mine {
		g.end(Lost)
	}
	return revealed
}

func (g *Game) Flag(x, y int) {
	if g.Over() {
		return
	}
	g.field.Flag(x, y)
	if g.field.IsWin(g.MineCount) {
		g.end(Won)
	}
}

// Chord opens every hidden, unflagged neighbour of a visible numbered
// cell once the player has flagged as many neighbours as its number.
func (g *Game) Chord(x, y int) []Point {
	if g.Over() {
		return nil
	}
	c, ok := g.field.At(x, y)
	if !ok || !c.Visible || !c.Type.IsSafe() {
		return nil
	}

	var (
		flagged int
		hidden  []Point
	)
	for _, p := range g.field.Neighbors(x, y) {
		n, _ := g.field.At(p.X, p.Y)
		switch {
		case n.Flag:
			flagged++
		case !n.Visible:
			hidden = append(hidden, p)
		}
	}
	if flagged != c.Type.Count() {
		return nil
	}

	var revealed []Point
	for _, p := range hidden {
		revealed = append(revealed, g.Open(p.X, p.Y)...)
		if g.Over() {
			break
		}
	}
	return revealed
}

func (g *Game) Forfeit() {
	if g.Over() {
		return
	}
	g.end(Lost)
}

func (g *Game) end(state State) {
	g.state = state
	g.field.RevealAll()
	g.field.logger.Debug(
		"game over",
		slog.String("state", state.String()),
		slog.String("params", g.Seed()),
		slog.Int("correct_flags", g.field.CorrectFlags()),
	)
}
