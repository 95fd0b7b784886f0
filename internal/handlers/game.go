package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
)

var (
	ErrNoGame          = errors.New("no game in progress")
	ErrInvalidPosition = errors.New("invalid cell position")
)

// GameHandler serves a single in-memory game to the local renderer.
type GameHandler struct {
	logger *slog.Logger
	ws     *config.WebSocket
	rnd    *rand.Rand
	opts   []mines.Option

	mu   sync.Mutex
	game *mines.Game
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	rnd *rand.Rand,
	game *mines.Game,
	opts ...mines.Option,
) *GameHandler {
	handler := &GameHandler{
		logger: logger,
		ws:     ws,
		rnd:    rnd,
		opts:   opts,
		game:   game,
	}

	return handler
}

func (g *GameHandler) newGame(params mines.GameParams) (*GameDTO, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	game, err := mines.NewGame(params, g.rnd, g.opts...)
	if err != nil {
		return nil, err
	}
	g.game = game

	g.logger.Debug("new game", slog.String("params", params.Seed()))

	return NewGameDTO(game, nil), nil
}

func (g *GameHandler) fetch() (*GameDTO, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.game == nil {
		return nil, ErrNoGame
	}
	return NewGameDTO(g.game, nil), nil
}

func (g *GameHandler) move(move GameMove, pos Position) (*GameDTO, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.game == nil {
		return nil, ErrNoGame
	}
	if !g.game.PointInBounds(pos.X, pos.Y) {
		return nil, ErrInvalidPosition
	}

	var revealed []mines.Point
	switch move {
	case Open:
		revealed = g.game.Open(pos.X, pos.Y)
	case Flag:
		g.game.Flag(pos.X, pos.Y)
	case Chord:
		revealed = g.game.Chord(pos.X, pos.Y)
	}

	return NewGameDTO(g.game, revealed), nil
}

func (g *GameHandler) forfeit() (*GameDTO, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.game == nil {
		return nil, ErrNoGame
	}
	g.game.Forfeit()
	return NewGameDTO(g.game, nil), nil
}

func (g *GameHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoGame):
		sendError(w, g.logger, http.StatusNotFound, err)
	case errors.Is(err, ErrInvalidPosition), errors.Is(err, mines.ErrInvalidParams):
		sendError(w, g.logger, http.StatusBadRequest, err)
	default:
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to handle game request", slog.Any("error", err))
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	game, err := g.newGame(mines.GameParams(dto))
	if err != nil {
		g.fail(w, err)
		return
	}

	sendJSONOrLog(w, g.logger, game)
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	game, err := g.fetch()
	if err != nil {
		g.fail(w, err)
		return
	}

	sendJSONOrLog(w, g.logger, game)
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	game, err := g.move(move, pos)
	if err != nil {
		g.fail(w, fmt.Errorf("%s %d:%d: %w", move, pos.X, pos.Y, err))
		return
	}

	sendJSONOrLog(w, g.logger, game)
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	game, err := g.forfeit()
	if err != nil {
		g.fail(w, err)
		return
	}

	sendJSONOrLog(w, g.logger, game)
}
