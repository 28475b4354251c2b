package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minsweeper/minsweeper/internal/config"
	"github.com/minsweeper/minsweeper/internal/mines"
	"github.com/minsweeper/minsweeper/internal/session"
)

type GameHandler struct {
	logger  *slog.Logger
	manager *session.Manager
	ws      *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	manager *session.Manager,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		manager: manager,
		ws:      ws,
	}
}

func isParamsError(err error) bool {
	return errors.Is(err, mines.ErrInvalidSize) ||
		errors.Is(err, mines.ErrInvalidMineCount)
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	snapshot, err := g.manager.NewGame(dto.Params(g.manager.Defaults()))
	if isParamsError(err) {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		g.logger.Error("unable to create a new game", slog.Any("error", err))
		sendErrorOrLog(w, g.logger, http.StatusInternalServerError, errors.New("unable to create a new game"))
		return
	}

	sendJSONOrLog(w, g.logger, snapshot)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, g.manager.Snapshot())
}

func (g GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	outcome, snapshot := g.manager.Reveal(pos.Row, pos.Col)
	sendJSONOrLog(w, g.logger, MoveDTO[RevealOutcomeDTO]{
		Outcome: NewRevealOutcomeDTO(outcome),
		Game:    snapshot,
	})
}

func (g GameHandler) Mark(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	outcome, snapshot := g.manager.ToggleMark(pos.Row, pos.Col)
	sendJSONOrLog(w, g.logger, MoveDTO[MarkOutcomeDTO]{
		Outcome: NewMarkOutcomeDTO(outcome),
		Game:    snapshot,
	})
}

func (g GameHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := g.manager.Summary()
	if errors.Is(err, session.ErrGameInProgress) {
		sendErrorOrLog(w, g.logger, http.StatusConflict, err)
		return
	}
	sendJSONOrLog(w, g.logger, summary)
}

func (g GameHandler) Help(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, map[string]string{
		"help": session.HelpText,
	})
}

func Status(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
