package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minefield/internal/mines"
)

type wsCommand string

const (
	wsNoop    wsCommand = "g"
	wsOpen    wsCommand = "o"
	wsFlag    wsCommand = "f"
	wsChord   wsCommand = "c"
	wsForfeit wsCommand = "r"
	wsNew     wsCommand = "n"
)

var ErrUnknownCommand = errors.New("unknown command")

func parseXY(args []string) (pos Position, err error) {
	if len(args) != 2 {
		return pos, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	if pos.X, err = strconv.Atoi(args[0]); err != nil {
		return pos, fmt.Errorf("first argument must be an int")
	}
	if pos.Y, err = strconv.Atoi(args[1]); err != nil {
		return pos, fmt.Errorf("second argument must be an int")
	}
	return pos, nil
}

func parseParams(args []string) (p mines.GameParams, err error) {
	if len(args) != 3 {
		return p, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	var n [3]int
	for i, arg := range args {
		if n[i], err = strconv.Atoi(arg); err != nil {
			return p, fmt.Errorf("argument %d must be an int", i+1)
		}
	}
	return mines.GameParams{Width: n[0], Height: n[1], MineCount: n[2]}, nil
}

// execute runs one command line such as "o 3 4" against the game.
func (g *GameHandler) execute(line string) (*GameDTO, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return g.fetch()
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]

	switch cmd {
	case wsNoop:
		return g.fetch()
	case wsOpen, wsFlag, wsChord:
		pos, err := parseXY(args)
		if err != nil {
			return nil, err
		}
		move, _ := ParseGameMove(string(cmd))
		return g.move(move, pos)
	case wsForfeit:
		return g.forfeit()
	case wsNew:
		params, err := parseParams(args)
		if err != nil {
			return nil, err
		}
		return g.newGame(params)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
}

func (g *GameHandler) wsRunGameLoop(conn *websocket.Conn) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		var reply any
		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			dto, err := g.execute(line)
			if err != nil {
				reply = wrapError(err)
				break
			}
			reply = dto
		}

		if err := conn.WriteJSON(reply); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection", slog.String("remoteAddr", r.RemoteAddr))

	err = g.wsRunGameLoop(conn)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		g.logger.Warn("error in ws loop", slog.Any("error", err))
	}
}
