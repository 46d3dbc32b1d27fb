package datamanager

import (
	"sort"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

// Renewal window: clients whose contract closed this long ago are likely
// planning the next edition.
const (
	renewalWindowMinMonths = 10
	renewalWindowMaxMonths = 12
)

// RenewalOpportunities scans history for converted quotes whose event date
// falls 10 to 12 months before ref and whose client has not converted again
// since, ranked most recent first. Recomputed on demand, never persisted.
func (m *Manager) RenewalOpportunities(ref time.Time) []entities.RenewalOpportunity {
	history := m.ListQuotes()

	// Latest conversion per client; a newer converted quote means the client
	// already came back on their own.
	latestConverted := map[string]time.Time{}
	for _, q := range history {
		if !q.Convertido {
			continue
		}
		if q.Data.After(latestConverted[q.ClienteNome]) {
			latestConverted[q.ClienteNome] = q.Data
		}
	}

	type scored struct {
		opp  entities.RenewalOpportunity
		data time.Time
	}
	var hits []scored
	for _, q := range history {
		if !q.Convertido {
			continue
		}
		meses := monthsBetween(q.Data, ref)
		if meses < renewalWindowMinMonths || meses > renewalWindowMaxMonths {
			continue
		}
		if latestConverted[q.ClienteNome].After(q.Data) {
			continue
		}
		hits = append(hits, scored{
			opp: entities.RenewalOpportunity{
				Cliente:    q.ClienteNome,
				MesesAtras: meses,
				Espaco:     q.Sala.Nome,
			},
			data: q.Data,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].data.After(hits[j].data) })

	out := make([]entities.RenewalOpportunity, len(hits))
	for i, h := range hits {
		out[i] = h.opp
	}
	return out
}

func monthsBetween(from, to time.Time) int {
	if from.After(to) {
		return -1
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}
