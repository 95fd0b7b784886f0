package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
)

const help = `commands:
  o X Y   open a cell
  f X Y   toggle a flag
  c X Y   chord a numbered cell
  r       give up
  n       new game
  ?, h    show this help
  q       quit
`

type session struct {
	params mines.GameParams
	rnd    *rand.Rand
	opts   []mines.Option
	in     io.Reader
	out    io.Writer

	game *mines.Game
}

func (s *session) newGame() error {
	game, err := mines.NewGame(s.params, s.rnd, s.opts...)
	if err != nil {
		return err
	}
	s.game = game
	return nil
}

func (s *session) render() {
	fmt.Fprintf(s.out, "mines left: %d\n", s.game.MinesLeft())

	fmt.Fprint(s.out, "   ")
	for x := range s.game.Width {
		fmt.Fprintf(s.out, "%2d", x%100)
	}
	fmt.Fprintln(s.out)

	for y, row := range strings.Split(strings.TrimSuffix(s.game.String(), "\n"), "\n") {
		fmt.Fprintf(s.out, "%2d  %s\n", y%100, row)
	}

	switch s.game.State() {
	case mines.Won:
		fmt.Fprintln(s.out, "you won! (n for a new game)")
	case mines.Lost:
		fmt.Fprintln(s.out, "boom. (n for a new game)")
	}
}

func parseXY(args []string) (x, y int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected X and Y")
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("X must be an int")
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("Y must be an int")
	}
	return x, y, nil
}

// step applies one input line and reports whether the session goes on.
func (s *session) step(line string) (bool, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return true, nil
	}
	cmd, args := tokens[0], tokens[1:]

	switch cmd {
	case "q":
		return false, nil
	case "n":
		return true, s.newGame()
	case "r":
		s.game.Forfeit()
		return true, nil
	case "?", "h":
		fmt.Fprint(s.out, help)
		return true, nil
	case "o", "f", "c":
		x, y, err := parseXY(args)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return true, nil
		}
		if !s.game.PointInBounds(x, y) {
			fmt.Fprintf(s.out, "%d:%d is off the board\n", x, y)
			return true, nil
		}
		switch cmd {
		case "o":
			s.game.Open(x, y)
		case "f":
			s.game.Flag(x, y)
		case "c":
			s.game.Chord(x, y)
		}
		return true, nil
	default:
		fmt.Fprintf(s.out, "unknown command %q, ? for help\n", cmd)
		return true, nil
	}
}

func (s *session) run() error {
	if s.game == nil {
		if err := s.newGame(); err != nil {
			return err
		}
	}

	s.render()
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		more, err := s.step(scanner.Text())
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		s.render()
	}
	return scanner.Err()
}
