package mines

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

type Status int8

const (
	InProgress Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// [Status] implements [json.Marshaler]
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// settle runs after every reveal of an in-progress game and performs the
// terminal transition, if any. The loss check comes first: a reveal that hit a
// mine never reaches the win check. Returns indices of cells it changed.
func (s *GameSession) settle() []int {
	switch {
	case s.exploded >= 0:
		return s.lose()
	case s.remaining == 0:
		return s.win()
	default:
		return nil
	}
}

func (s *GameSession) lose() (changed []int) {
	s.clock.Stop()
	g := s.grid
	for i := range g.mines {
		if i == s.exploded {
			continue
		}
		if g.mines[i] {
			if !g.marked[i] {
				g.marked[i] = true
				changed = append(changed, i)
			}
		} else if !g.revealed[i] {
			/* a wrongly marked safe cell is unmarked before it is exposed */
			g.marked[i] = false
			g.revealed[i] = true
			changed = append(changed, i)
		}
	}
	s.status = Lost

	Log.WithFields(logrus.Fields{
		"params":   s.params.String(),
		"exploded": g.point(s.exploded).String(),
		"elapsed":  s.clock.Elapsed().String(),
	}).Debug("game lost")
	return
}

func (s *GameSession) win() (changed []int) {
	s.clock.Stop()
	g := s.grid
	for i := range g.mines {
		if g.mines[i] {
			if !g.marked[i] {
				g.marked[i] = true
				changed = append(changed, i)
			}
		} else {
			ensure(g.revealed[i], "won with a hidden safe cell", logrus.Fields{
				"cell": g.point(i).String(),
			})
		}
	}
	s.status = Won

	Log.WithFields(logrus.Fields{
		"params":  s.params.String(),
		"elapsed": s.clock.Elapsed().String(),
	}).Debug("game won")
	return
}
