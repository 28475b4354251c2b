package handlers

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/minsweeper/minsweeper/internal/mines"
	"github.com/minsweeper/minsweeper/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type NewGameDTO struct {
	Size      *int `schema:"size"`
	MineCount *int `schema:"mine_count"`
}

func ParseNewGameDTO(src url.Values) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// Params fills whatever the request left out from defaults. A request with
// no params at all returns nil.
func (dto NewGameDTO) Params(defaults mines.GameParams) *mines.GameParams {
	switch {
	case dto.Size == nil && dto.MineCount == nil:
		return nil
	case dto.MineCount == nil:
		p := mines.DefaultParams(*dto.Size)
		return &p
	case dto.Size == nil:
		return &mines.GameParams{Size: defaults.Size, MineCount: *dto.MineCount}
	default:
		return &mines.GameParams{Size: *dto.Size, MineCount: *dto.MineCount}
	}
}

type PositionDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePosition(src url.Values) (PositionDTO, error) {
	var dto PositionDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func skipReason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

type RevealOutcomeDTO struct {
	Cells   []mines.CellUpdate `json:"cells"`
	Status  mines.Status       `json:"status"`
	Ended   bool               `json:"ended"`
	Skipped string             `json:"skipped,omitempty"`
}

func NewRevealOutcomeDTO(o mines.RevealOutcome) RevealOutcomeDTO {
	cells := o.Cells
	if cells == nil {
		cells = []mines.CellUpdate{}
	}
	return RevealOutcomeDTO{
		Cells:   cells,
		Status:  o.Status,
		Ended:   o.Ended,
		Skipped: skipReason(o.Skipped),
	}
}

type MarkOutcomeDTO struct {
	Cell    mines.CellUpdate `json:"cell"`
	Skipped string           `json:"skipped,omitempty"`
}

func NewMarkOutcomeDTO(o mines.MarkOutcome) MarkOutcomeDTO {
	return MarkOutcomeDTO{Cell: o.Cell, Skipped: skipReason(o.Skipped)}
}

type MoveDTO[T any] struct {
	Outcome T                `json:"outcome"`
	Game    session.Snapshot `json:"game"`
}
