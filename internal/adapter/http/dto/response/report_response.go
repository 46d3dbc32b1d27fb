package response

import (
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

type RenewalResponse struct {
	Cliente    string `json:"cliente"`
	MesesAtras int    `json:"meses_atras"`
	Espaco     string `json:"espaco"`
}

func FromRenewals(opps []entities.RenewalOpportunity) []RenewalResponse {
	out := make([]RenewalResponse, 0, len(opps))
	for _, o := range opps {
		out = append(out, RenewalResponse{Cliente: o.Cliente, MesesAtras: o.MesesAtras, Espaco: o.Espaco})
	}
	return out
}

// SyncResponse reports how many pending records one sync pass pushed to the
// remote store.
type SyncResponse struct {
	Synced int `json:"synced"`
}
