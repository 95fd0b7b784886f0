package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
)

func main() {
	cfg, err := config.Load(config.Flags(os.Args[0]), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closer := config.NewLogger(cfg, os.Stderr)
	defer closer.Close()
	mines.Log = logger

	s := &session{
		params: cfg.GameParams(),
		rnd:    cfg.Rand(),
		opts:   cfg.FieldOptions(logger),
		in:     os.Stdin,
		out:    os.Stdout,
	}
	if err := s.run(); err != nil {
		logger.Error("session failed", slog.Any("error", err))
		os.Exit(1)
	}
}
