package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/handlers"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/mines"
)

type App struct {
	logger *slog.Logger
	config *config.Config
	router *http.ServeMux
	game   *handlers.GameHandler
}

// New builds the app around a first game made from the configured params.
func New(logger *slog.Logger, cfg *config.Config) (*App, error) {
	rnd := cfg.Rand()
	opts := cfg.FieldOptions(logger)

	game, err := mines.NewGame(cfg.GameParams(), rnd, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create game: %w", err)
	}

	app := &App{
		logger: logger,
		config: cfg,
		router: http.NewServeMux(),
		game: handlers.NewGameHandler(
			logger, config.NewWebSocket(cfg.AllowedOrigins), rnd, game, opts...,
		),
	}
	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if a.config.BasePath != "" {
		h = http.StripPrefix(a.config.BasePath, h)
	}
	return middleware.Wrap(
		h,
		middleware.Recover(a.logger),
		middleware.Cors(a.config.AllowedOrigins),
		middleware.Logging(a.logger),
	)
}

// Start serves until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info("server listening", slog.String("addr", a.config.Addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
