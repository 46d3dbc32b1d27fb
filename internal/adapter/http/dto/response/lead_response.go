package response

import (
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

type LeadResponse struct {
	ID                  int64                     `json:"id"`
	Nome                string                    `json:"nome"`
	Email               string                    `json:"email,omitempty"`
	Telefone            string                    `json:"telefone,omitempty"`
	FinalidadeEvento    string                    `json:"finalidade_evento,omitempty"`
	AssociadoCDL        bool                      `json:"associado_cdl"`
	HorariosSolicitados []entities.ScheduleWindow `json:"horarios_solicitados,omitempty"`
	CriadoEm            time.Time                 `json:"criado_em"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:                  l.ID,
		Nome:                l.Nome,
		Email:               l.Email,
		Telefone:            l.Telefone,
		FinalidadeEvento:    l.FinalidadeEvento,
		AssociadoCDL:        l.AssociadoCDL,
		HorariosSolicitados: l.HorariosSolicitados,
		CriadoEm:            l.CriadoEm,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
