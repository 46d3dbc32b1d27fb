package request

import (
	"errors"
	"strings"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

var (
	ErrInvalidStatusValue = errors.New("invalid status value")
)

type ScheduleWindowRequest struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// QuoteCalcRequest is the calculation payload. Every field is optional: the
// resolver fills defaults for anything missing instead of rejecting the call.
type QuoteCalcRequest struct {
	SalaID           int                     `json:"sala_id"`
	ClienteNome      string                  `json:"cliente_nome"`
	ClienteContato   string                  `json:"cliente_contato"`
	Duracao          int                     `json:"duracao"`
	DuracaoTipo      string                  `json:"duracao_tipo"`
	DiasSelecionados []int                   `json:"dias_selecionados"`
	Horarios         []ScheduleWindowRequest `json:"horarios"`
	Margem           float64                 `json:"margem"`
	Desconto         float64                 `json:"desconto"`
	ExtrasIDs        []int                   `json:"extras_ids"`
}

func (r QuoteCalcRequest) ToEntity() entities.QuoteRequest {
	horarios := make([]entities.ScheduleWindow, 0, len(r.Horarios))
	for _, h := range r.Horarios {
		horarios = append(horarios, entities.ScheduleWindow{Inicio: h.Inicio, Fim: h.Fim})
	}
	return entities.QuoteRequest{
		SalaID:           r.SalaID,
		ClienteNome:      r.ClienteNome,
		ClienteContato:   r.ClienteContato,
		Duracao:          r.Duracao,
		DuracaoTipo:      r.DuracaoTipo,
		DiasSelecionados: r.DiasSelecionados,
		Horarios:         horarios,
		Margem:           r.Margem,
		Desconto:         r.Desconto,
		ExtrasIDs:        r.ExtrasIDs,
	}
}

// StatusUpdateRequest drives the approval transition of a saved quote.
// Justificativa is only meaningful for rejections.
type StatusUpdateRequest struct {
	Status        string `json:"status" binding:"required"`
	Justificativa string `json:"justificativa"`
}

// ResolveStatus normalizes the incoming status to the canonical uppercase
// form and rejects anything outside the known set.
func (r StatusUpdateRequest) ResolveStatus() (entities.ApprovalStatus, error) {
	s := entities.ApprovalStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if !s.Valid() {
		return "", ErrInvalidStatusValue
	}
	return s, nil
}
