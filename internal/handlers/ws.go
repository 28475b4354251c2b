package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/minsweeper/minsweeper/internal/session"
)

// wsReply is written back once per message. Outcome fields are set when the
// last command of the message produced them.
type wsReply struct {
	Game   *session.Snapshot `json:"game,omitempty"`
	Reveal *RevealOutcomeDTO `json:"reveal,omitempty"`
	Mark   *MarkOutcomeDTO   `json:"mark,omitempty"`
	Help   string            `json:"help,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func (g GameHandler) execute(text string) (reply wsReply, quit bool) {
	for _, line := range strings.Split(text, "\n") {
		cmd, err := session.ParseCommand(line)
		if err != nil {
			return wsReply{Error: fmt.Sprintf("%q: %s", strings.TrimSpace(line), err)}, false
		}
		if cmd.Op == session.OpQuit {
			return wsReply{}, true
		}

		res, err := g.manager.Execute(cmd)
		if err != nil {
			return wsReply{Error: err.Error()}, false
		}

		reply = wsReply{Game: &res.Game}
		if res.Reveal != nil {
			dto := NewRevealOutcomeDTO(*res.Reveal)
			reply.Reveal = &dto
		}
		if res.Mark != nil {
			dto := NewMarkOutcomeDTO(*res.Mark)
			reply.Mark = &dto
		}
		if cmd.Op == session.OpHelp {
			reply.Help = session.HelpText
		}
	}
	return reply, false
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.logger.Debug(fmt.Sprintf("\t> %s", text))

		reply, quit := g.execute(text)
		if quit {
			c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
			break
		}
		if err := c.WriteJSON(reply); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
		g.logger.Debug("\t< <game data>")
	}
}
