package request

import (
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

type LeadRequest struct {
	Nome                string                  `json:"nome" binding:"required"`
	Email               string                  `json:"email"`
	Telefone            string                  `json:"telefone"`
	FinalidadeEvento    string                  `json:"finalidade_evento"`
	AssociadoCDL        bool                    `json:"associado_cdl"`
	HorariosSolicitados []ScheduleWindowRequest `json:"horarios_solicitados"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	horarios := make([]entities.ScheduleWindow, 0, len(r.HorariosSolicitados))
	for _, h := range r.HorariosSolicitados {
		horarios = append(horarios, entities.ScheduleWindow{Inicio: h.Inicio, Fim: h.Fim})
	}
	return entities.Lead{
		Nome:                r.Nome,
		Email:               r.Email,
		Telefone:            r.Telefone,
		FinalidadeEvento:    r.FinalidadeEvento,
		AssociadoCDL:        r.AssociadoCDL,
		HorariosSolicitados: horarios,
	}
}
