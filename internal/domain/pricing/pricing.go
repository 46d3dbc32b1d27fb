// Package pricing implements the quote calculation pipeline: an explicit
// resolve-defaults pass, a pure deterministic calculator and the risk
// classifier. The calculator performs no I/O and never fails; preconditions
// (space existence, weekend staffing) are checked before it runs.
package pricing

import (
	"math"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/pkg"
)

// Volume discount tiers by contract length in days.
const (
	volumeDiscountShortDays = 3
	volumeDiscountLongDays  = 7
	volumeDiscountShortRate = 0.05
	volumeDiscountLongRate  = 0.10
)

// Calculate turns a resolved request into an itemized quote result. Total
// function: every output is finite, and every field except LucroLiquidoReal
// is >= 0.
func Calculate(req ResolvedRequest, s entities.Settings, m entities.ShiftMultipliers) entities.QuoteResult {
	horasPorOcorrencia, multiplicador := scheduleProfile(req.Horarios, m)

	ocorrencias := occurrences(req, s)
	diasTrabalhados := math.Ceil(ocorrencias)

	horasTotais := horasPorOcorrencia * ocorrencias

	// Overtime bands split per day worked: first HorasNormaisDia at 1x,
	// the next HorasHE50Dia at 1.5x, the remainder at 2x. The shift
	// multiplier is the hours-weighted mean over the requested windows.
	normais := math.Min(horasPorOcorrencia, s.HorasNormaisDia)
	he50 := math.Min(math.Max(horasPorOcorrencia-s.HorasNormaisDia, 0), s.HorasHE50Dia)
	he100 := math.Max(horasPorOcorrencia-s.HorasNormaisDia-s.HorasHE50Dia, 0)

	rate := s.CustoHoraFuncionario * multiplicador
	custoNormal := pkg.RoundCents(normais * rate * ocorrencias)
	custoHE50 := pkg.RoundCents(he50 * rate * 1.5 * ocorrencias)
	custoHE100 := pkg.RoundCents(he100 * rate * 2.0 * ocorrencias)
	custoMaoObra := custoNormal + custoHE50 + custoHE100

	custoVT := pkg.RoundCents(s.ValeTransporteDiario * diasTrabalhados)
	custoApp := pkg.RoundCents(s.TransporteAppDiario * diasTrabalhados)
	custoRefeicao := pkg.RoundCents(s.RefeicaoDiaria * diasTrabalhados)
	custoOperacional := pkg.RoundCents((s.CustoFixoDiario + req.Sala.CustoBase) * diasTrabalhados)

	custoExtras := 0.0
	for _, e := range req.Extras {
		custoExtras += e.Custo
	}
	custoExtras = pkg.RoundCents(custoExtras)

	subtotal := pkg.RoundCents(custoMaoObra + custoVT + custoApp + custoRefeicao + custoOperacional + custoExtras)

	descontoEfetivo := combineDiscounts(req.Desconto, VolumeDiscount(contractDays(req)), s.PoliticaDesconto)
	if descontoEfetivo > 1 {
		descontoEfetivo = 1
	}

	valorMargem := pkg.RoundCents(subtotal * req.Margem)
	valorDesconto := pkg.RoundCents(subtotal * descontoEfetivo)
	valorFinal := pkg.RoundCents(subtotal + valorMargem - valorDesconto)
	if valorFinal < 0 {
		valorFinal = 0
	}

	var comissaoVendedor, comissaoGestao float64
	if s.Comissoes.Ativo {
		comissaoVendedor = pkg.RoundCents(valorFinal * s.Comissoes.VendaDireta)
		comissaoGestao = pkg.RoundCents(valorFinal * s.Comissoes.GestaoUTV)
	}
	lucro := pkg.RoundCents(valorFinal - subtotal - comissaoVendedor - comissaoGestao)

	valorPorHora := 0.0
	if horasTotais > 0 {
		valorPorHora = pkg.RoundCents(valorFinal / horasTotais)
	}

	return entities.QuoteResult{
		HorasTotais:          pkg.RoundCents(horasTotais),
		ValorPorHora:         valorPorHora,
		CustoOperacionalBase: custoOperacional,
		CustoMaoObraNormal:   custoNormal,
		CustoMaoObraHE50:     custoHE50,
		CustoMaoObraHE100:    custoHE100,
		CustoMaoObraTotal:    pkg.RoundCents(custoMaoObra),
		CustoValeTransporte:  custoVT,
		CustoTransporteApp:   custoApp,
		CustoRefeicao:        custoRefeicao,
		CustoExtras:          custoExtras,
		SubtotalSemMargem:    subtotal,
		ValorMargem:          valorMargem,
		ValorDesconto:        valorDesconto,
		ValorFinal:           valorFinal,
		ComissaoVendedor:     comissaoVendedor,
		ComissaoGestao:       comissaoGestao,
		LucroLiquidoReal:     lucro,
	}
}

// VolumeDiscount returns the automatic discount rate for a contract length
// in days: none up to 3 days, 5% up to 7 days, 10% beyond.
func VolumeDiscount(days int) float64 {
	switch {
	case days > volumeDiscountLongDays:
		return volumeDiscountLongRate
	case days > volumeDiscountShortDays:
		return volumeDiscountShortRate
	default:
		return 0
	}
}

// scheduleProfile sums hours per occurrence across windows and derives the
// hours-weighted shift multiplier. Windows in a ResolvedRequest always parse;
// the error path exists only for defensive zero-hour input.
func scheduleProfile(windows []entities.ScheduleWindow, m entities.ShiftMultipliers) (hours, multiplier float64) {
	var weighted float64
	for _, w := range windows {
		start, end, err := WindowMinutes(w)
		if err != nil {
			continue
		}
		h := float64(end-start) / 60.0
		hours += h
		weighted += h * m.ForHour(start/60)
	}
	if hours <= 0 {
		return 0, 1
	}
	return hours, weighted / hours
}

// occurrences counts how many times the schedule happens over the contract.
// Day-based contracts run once per day; month-based contracts recur each
// selected weekday about SemanasPorMes times per month. Fractional
// occurrences are kept so hours scale continuously with duration.
func occurrences(req ResolvedRequest, s entities.Settings) float64 {
	if req.DuracaoTipo == DuracaoTipoMeses {
		weeks := s.SemanasPorMes
		if weeks <= 0 {
			weeks = 4.345
		}
		return float64(req.Duracao) * float64(len(req.DiasSelecionados)) * weeks
	}
	return float64(req.Duracao)
}

func contractDays(req ResolvedRequest) int {
	if req.DuracaoTipo == DuracaoTipoMeses {
		return req.Duracao * 30
	}
	return req.Duracao
}

func combineDiscounts(manual, volume float64, policy string) float64 {
	if policy == entities.PoliticaDescontoMaior {
		return math.Max(manual, volume)
	}
	return manual + volume
}
