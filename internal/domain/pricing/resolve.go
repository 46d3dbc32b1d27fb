package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

var ErrNoSpaceAvailable = errors.New("no space available")

const (
	DuracaoTipoDias  = "dias"
	DuracaoTipoMeses = "meses"
)

// ResolvedRequest is a fully-populated calculation input. Every field is
// guaranteed usable: the calculator itself is total and fallback-free.
type ResolvedRequest struct {
	Sala             entities.Space
	Duracao          int
	DuracaoTipo      string
	DiasSelecionados []int
	Horarios         []entities.ScheduleWindow
	Margem           float64
	Desconto         float64
	Extras           []entities.Extra

	// UsedFallbacks records that at least one missing/unusable field was
	// replaced by a default (simulation mode). Such quotes are always
	// classified high risk.
	UsedFallbacks bool
}

// ResolveRequest applies the fallback defaults of simulation mode: missing
// space, weekdays, schedule and duration are substituted rather than
// rejected. It fails only when there is no space in the system at all.
func ResolveRequest(req entities.QuoteRequest, spaces []entities.Space, extras []entities.Extra) (ResolvedRequest, error) {
	if len(spaces) == 0 {
		return ResolvedRequest{}, ErrNoSpaceAvailable
	}

	out := ResolvedRequest{
		Margem:   clamp01(req.Margem),
		Desconto: clamp01(req.Desconto),
	}

	out.Sala = spaces[0]
	found := false
	for _, s := range spaces {
		if s.ID == req.SalaID {
			out.Sala = s
			found = true
			break
		}
	}
	if !found {
		out.UsedFallbacks = true
	}

	out.DiasSelecionados = uniqueWeekdays(req.DiasSelecionados)
	if len(out.DiasSelecionados) == 0 {
		out.DiasSelecionados = []int{1} // Monday
		out.UsedFallbacks = true
	}

	for _, w := range req.Horarios {
		if _, _, err := WindowMinutes(w); err == nil {
			out.Horarios = append(out.Horarios, w)
		}
	}
	if len(out.Horarios) == 0 {
		out.Horarios = []entities.ScheduleWindow{{Inicio: "08:00", Fim: "17:00"}}
		out.UsedFallbacks = true
	}

	out.Duracao = req.Duracao
	if out.Duracao <= 0 {
		out.Duracao = 1
		out.UsedFallbacks = true
	}

	out.DuracaoTipo = strings.ToLower(strings.TrimSpace(req.DuracaoTipo))
	if out.DuracaoTipo != DuracaoTipoDias && out.DuracaoTipo != DuracaoTipoMeses {
		out.DuracaoTipo = DuracaoTipoDias
		if req.DuracaoTipo != "" {
			out.UsedFallbacks = true
		}
	}

	for _, id := range req.ExtrasIDs {
		for _, e := range extras {
			if e.ID == id {
				out.Extras = append(out.Extras, e)
				break
			}
		}
	}

	return out, nil
}

// WindowMinutes parses a schedule window into start/end minutes of day.
// Windows must satisfy fim > inicio.
func WindowMinutes(w entities.ScheduleWindow) (start, end int, err error) {
	start, err = parseHHMM(w.Inicio)
	if err != nil {
		return 0, 0, err
	}
	end, err = parseHHMM(w.Fim)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("window %s-%s does not end after it starts", w.Inicio, w.Fim)
	}
	return start, end, nil
}

func parseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

func uniqueWeekdays(dias []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, d := range dias {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
