package app

import (
	"net/http"

	"github.com/minsweeper/minsweeper/internal/handlers"
)

// Routes live on the root router so that a known path with the wrong method
// gets 405 instead of 404.
func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.manager, a.ws)

	a.router.Methods(http.MethodGet).Path("/game").HandlerFunc(game.Fetch)
	a.router.Methods(http.MethodPost).Path("/game").HandlerFunc(game.NewGame)
	a.router.Methods(http.MethodGet).Path("/game/connect").HandlerFunc(game.ConnectWS)
	a.router.Methods(http.MethodGet).Path("/game/summary").HandlerFunc(game.Summary)
	a.router.Methods(http.MethodPost).Path("/game/reveal").HandlerFunc(game.Reveal)
	a.router.Methods(http.MethodPost).Path("/game/mark").HandlerFunc(game.Mark)

	a.router.Methods(http.MethodGet).Path("/help").HandlerFunc(game.Help)
	a.router.HandleFunc("/status", handlers.Status)
}
