package pricing

import (
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/pkg"
)

// ClassifyRisk derives the risk tier of a quote. Fallback usage dominates:
// a simulated quote is high risk no matter how healthy its numbers look.
// Otherwise the tier follows the variable-cost share of the final value,
// thresholded by the configurable RiscoBaixoMax/RiscoMedioMax settings.
func ClassifyRisk(r entities.QuoteResult, usedFallbacks bool, s entities.Settings) entities.RiskInfo {
	if usedFallbacks {
		return entities.RiskInfo{Nivel: entities.RiscoAlto, Percentual: 100}
	}

	variavel := r.CustoMaoObraTotal + r.CustoValeTransporte + r.CustoTransporteApp + r.CustoRefeicao
	if r.ValorFinal <= 0 {
		return entities.RiskInfo{Nivel: entities.RiscoAlto, Percentual: 100}
	}

	pct := pkg.RoundCents(variavel / r.ValorFinal * 100)

	nivel := entities.RiscoAlto
	switch {
	case pct < s.RiscoBaixoMax:
		nivel = entities.RiscoBaixo
	case pct <= s.RiscoMedioMax:
		nivel = entities.RiscoMedio
	}
	return entities.RiskInfo{Nivel: nivel, Percentual: pct}
}
