package entities

import "time"

// Lead is a pre-quote contact capture, persisted independently of
// calculations and subject to the same pending-sync pattern as quotes.
type Lead struct {
	ID                  int64            `json:"id"`
	Nome                string           `json:"nome"`
	Email               string           `json:"email,omitempty"`
	Telefone            string           `json:"telefone,omitempty"`
	FinalidadeEvento    string           `json:"finalidade_evento,omitempty"`
	AssociadoCDL        bool             `json:"associado_cdl"`
	HorariosSolicitados []ScheduleWindow `json:"horarios_solicitados,omitempty"`
	CriadoEm            time.Time        `json:"criado_em"`
	RemoteID            string           `json:"remote_id,omitempty"`
}
