package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/minsweeper/minsweeper/internal/config"
	"github.com/minsweeper/minsweeper/internal/middleware"
	"github.com/minsweeper/minsweeper/internal/session"
)

type App struct {
	logger  *slog.Logger
	cfg     *config.App
	manager *session.Manager
	ws      *config.WebSocket
	router  *mux.Router
}

func New(logger *slog.Logger, cfg *config.App, manager *session.Manager) *App {
	app := &App{
		logger:  logger,
		cfg:     cfg,
		manager: manager,
		ws:      config.NewWebSocket(cfg.Development),
		router:  mux.NewRouter(),
	}
	app.loadRoutes()
	return app
}

// Handler is the router wrapped in the middleware stack.
func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(),
	)
}

// Start serves until ctx is cancelled, then shuts the server down within the
// configured timeout.
func (a *App) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", a.cfg.Addr, err)
	}
	return a.Serve(ctx, listener)
}

func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:      a.Handler(),
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info(fmt.Sprintf("minsweeper server listening at http://%s", listener.Addr()))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down")
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
