package pricing

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

var testSpaces = []entities.Space{
	{ID: 1, Nome: "Auditório", Unidade: "Centro", Capacidade: 120, CustoBase: 200},
	{ID: 2, Nome: "Sala Multiuso", Unidade: "Centro", Capacidade: 40, CustoBase: 80},
}

var testExtras = []entities.Extra{
	{ID: 1, Nome: "Projetor", Custo: 150},
	{ID: 2, Nome: "Coffee Break", Custo: 500},
}

func resultFields(r entities.QuoteResult) map[string]float64 {
	out := map[string]float64{}
	v := reflect.ValueOf(r)
	for i := 0; i < v.NumField(); i++ {
		out[v.Type().Field(i).Name] = v.Field(i).Float()
	}
	return out
}

func TestResolveRequest(t *testing.T) {
	t.Run("no spaces at all", func(t *testing.T) {
		_, err := ResolveRequest(entities.QuoteRequest{}, nil, nil)
		if !errors.Is(err, ErrNoSpaceAvailable) {
			t.Fatalf("expected ErrNoSpaceAvailable, got %v", err)
		}
	})

	t.Run("empty request falls back everywhere", func(t *testing.T) {
		res, err := ResolveRequest(entities.QuoteRequest{}, testSpaces, testExtras)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.UsedFallbacks {
			t.Fatalf("expected fallback flag")
		}
		if res.Sala.ID != 1 {
			t.Fatalf("expected first space, got %+v", res.Sala)
		}
		if len(res.DiasSelecionados) != 1 || res.DiasSelecionados[0] != 1 {
			t.Fatalf("expected default weekday [1], got %v", res.DiasSelecionados)
		}
		if len(res.Horarios) != 1 || res.Horarios[0].Inicio != "08:00" || res.Horarios[0].Fim != "17:00" {
			t.Fatalf("expected default window, got %v", res.Horarios)
		}
		if res.Duracao != 1 || res.DuracaoTipo != DuracaoTipoDias {
			t.Fatalf("expected 1 dia, got %d %s", res.Duracao, res.DuracaoTipo)
		}
	})

	t.Run("complete request does not fall back", func(t *testing.T) {
		res, err := ResolveRequest(entities.QuoteRequest{
			SalaID:           2,
			Duracao:          5,
			DuracaoTipo:      "dias",
			DiasSelecionados: []int{1, 3},
			Horarios:         []entities.ScheduleWindow{{Inicio: "09:00", Fim: "12:00"}},
			ExtrasIDs:        []int{2, 99},
		}, testSpaces, testExtras)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UsedFallbacks {
			t.Fatalf("did not expect fallback flag: %+v", res)
		}
		if res.Sala.ID != 2 {
			t.Fatalf("expected sala 2, got %+v", res.Sala)
		}
		if len(res.Extras) != 1 || res.Extras[0].ID != 2 {
			t.Fatalf("expected only known extras, got %v", res.Extras)
		}
	})

	t.Run("invalid windows dropped then defaulted", func(t *testing.T) {
		res, err := ResolveRequest(entities.QuoteRequest{
			SalaID:           1,
			Duracao:          1,
			DuracaoTipo:      "dias",
			DiasSelecionados: []int{2},
			Horarios:         []entities.ScheduleWindow{{Inicio: "10:00", Fim: "10:00"}, {Inicio: "x", Fim: "11:00"}},
		}, testSpaces, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.UsedFallbacks {
			t.Fatalf("expected fallback flag after dropping invalid windows")
		}
		if len(res.Horarios) != 1 || res.Horarios[0].Inicio != "08:00" {
			t.Fatalf("expected default window, got %v", res.Horarios)
		}
	})

	t.Run("weekday values deduped and bounded", func(t *testing.T) {
		res, err := ResolveRequest(entities.QuoteRequest{
			SalaID:           1,
			Duracao:          1,
			DuracaoTipo:      "dias",
			DiasSelecionados: []int{6, 6, 9, -1, 0},
			Horarios:         []entities.ScheduleWindow{{Inicio: "08:00", Fim: "12:00"}},
		}, testSpaces, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(res.DiasSelecionados, []int{6, 0}) {
			t.Fatalf("expected [6 0], got %v", res.DiasSelecionados)
		}
	})
}

func TestCalculate_NoNaNInvariant(t *testing.T) {
	s := entities.DefaultSettings()
	m := entities.DefaultShiftMultipliers()

	requests := []entities.QuoteRequest{
		{}, // all fallbacks
		{SalaID: 1, Duracao: 10, DuracaoTipo: "dias", DiasSelecionados: []int{1, 2, 3}, Horarios: []entities.ScheduleWindow{{Inicio: "06:00", Fim: "23:00"}}, Margem: 0.3, Desconto: 0.2, ExtrasIDs: []int{1, 2}},
		{SalaID: 2, Duracao: 6, DuracaoTipo: "meses", DiasSelecionados: []int{0, 6}, Horarios: []entities.ScheduleWindow{{Inicio: "19:00", Fim: "22:30"}}, Margem: 1, Desconto: 1},
	}

	for _, req := range requests {
		res, err := ResolveRequest(req, testSpaces, testExtras)
		if err != nil {
			t.Fatalf("unexpected resolve error: %v", err)
		}
		out := Calculate(res, s, m)
		for name, v := range resultFields(out) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("field %s is not finite: %v (req %+v)", name, v, req)
			}
			if name != "LucroLiquidoReal" && v < 0 {
				t.Fatalf("field %s is negative: %v (req %+v)", name, v, req)
			}
		}
	}
}

func TestCalculate_VolumeDiscountBoundaries(t *testing.T) {
	if got := VolumeDiscount(3); got != 0 {
		t.Fatalf("3 days: expected 0%%, got %v", got)
	}
	if got := VolumeDiscount(4); got != 0.05 {
		t.Fatalf("4 days: expected 5%%, got %v", got)
	}
	if got := VolumeDiscount(7); got != 0.05 {
		t.Fatalf("7 days: expected 5%%, got %v", got)
	}
	if got := VolumeDiscount(8); got != 0.10 {
		t.Fatalf("8 days: expected 10%%, got %v", got)
	}

	s := entities.DefaultSettings()
	m := entities.DefaultShiftMultipliers()

	calc := func(days int) entities.QuoteResult {
		res, err := ResolveRequest(entities.QuoteRequest{
			SalaID:           1,
			Duracao:          days,
			DuracaoTipo:      "dias",
			DiasSelecionados: []int{1},
			Horarios:         []entities.ScheduleWindow{{Inicio: "08:00", Fim: "16:00"}},
		}, testSpaces, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return Calculate(res, s, m)
	}

	if r := calc(3); r.ValorDesconto != 0 {
		t.Fatalf("3 days: expected no discount, got %v", r.ValorDesconto)
	}
	r4 := calc(4)
	if want := r4.SubtotalSemMargem * 0.05; math.Abs(r4.ValorDesconto-want) > 0.01 {
		t.Fatalf("4 days: expected 5%% (%v), got %v", want, r4.ValorDesconto)
	}
	r8 := calc(8)
	if want := r8.SubtotalSemMargem * 0.10; math.Abs(r8.ValorDesconto-want) > 0.01 {
		t.Fatalf("8 days: expected 10%% (%v), got %v", want, r8.ValorDesconto)
	}
}

func TestCalculate_ValueComposition(t *testing.T) {
	s := entities.DefaultSettings()
	m := entities.DefaultShiftMultipliers()

	res, err := ResolveRequest(entities.QuoteRequest{
		SalaID:           1,
		Duracao:          2,
		DuracaoTipo:      "dias",
		DiasSelecionados: []int{2},
		Horarios:         []entities.ScheduleWindow{{Inicio: "08:00", Fim: "18:00"}},
		Margem:           0.2,
		Desconto:         0.1,
		ExtrasIDs:        []int{1},
	}, testSpaces, testExtras)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Calculate(res, s, m)

	if math.Abs(out.ValorFinal-(out.SubtotalSemMargem+out.ValorMargem-out.ValorDesconto)) > 0.01 {
		t.Fatalf("valor final composition broken: %+v", out)
	}
	soma := out.CustoMaoObraTotal + out.CustoValeTransporte + out.CustoTransporteApp +
		out.CustoRefeicao + out.CustoOperacionalBase + out.CustoExtras
	if math.Abs(out.SubtotalSemMargem-soma) > 0.01 {
		t.Fatalf("subtotal composition broken: %+v", out)
	}
	if math.Abs(out.CustoMaoObraTotal-(out.CustoMaoObraNormal+out.CustoMaoObraHE50+out.CustoMaoObraHE100)) > 0.01 {
		t.Fatalf("labor composition broken: %+v", out)
	}
	// 10h window: 8 normal + 2 at 50% overtime, nothing at 100%.
	if out.CustoMaoObraHE50 == 0 || out.CustoMaoObraHE100 != 0 {
		t.Fatalf("expected HE50 band only: %+v", out)
	}
	esperado := out.ValorFinal - out.SubtotalSemMargem - out.ComissaoVendedor - out.ComissaoGestao
	if math.Abs(out.LucroLiquidoReal-esperado) > 0.01 {
		t.Fatalf("lucro composition broken: %+v", out)
	}
	if out.ComissaoVendedor == 0 || out.ComissaoGestao == 0 {
		t.Fatalf("expected active commissions: %+v", out)
	}
}

func TestCalculate_CommissionsDisabled(t *testing.T) {
	s := entities.DefaultSettings()
	s.Comissoes.Ativo = false
	res, err := ResolveRequest(entities.QuoteRequest{SalaID: 1}, testSpaces, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Calculate(res, s, entities.DefaultShiftMultipliers())
	if out.ComissaoVendedor != 0 || out.ComissaoGestao != 0 {
		t.Fatalf("expected no commissions: %+v", out)
	}
}

func TestCalculate_MonthBasedHours(t *testing.T) {
	s := entities.DefaultSettings()
	m := entities.DefaultShiftMultipliers()

	res, err := ResolveRequest(entities.QuoteRequest{
		SalaID:           1,
		Duracao:          2,
		DuracaoTipo:      "meses",
		DiasSelecionados: []int{1, 4},
		Horarios:         []entities.ScheduleWindow{{Inicio: "08:00", Fim: "12:00"}},
	}, testSpaces, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Calculate(res, s, m)

	// 4h per occurrence, 2 months x 2 weekdays x 4.345 weeks.
	want := 4.0 * 2 * 2 * s.SemanasPorMes
	if math.Abs(out.HorasTotais-want) > 0.01 {
		t.Fatalf("expected %v total hours, got %v", want, out.HorasTotais)
	}
	// 60 contract days: long volume tier.
	if want := out.SubtotalSemMargem * 0.10; math.Abs(out.ValorDesconto-want) > 0.01 {
		t.Fatalf("expected 10%% volume discount, got %v", out.ValorDesconto)
	}
}

func TestCalculate_DiscountPolicy(t *testing.T) {
	m := entities.DefaultShiftMultipliers()
	base := entities.QuoteRequest{
		SalaID:           1,
		Duracao:          8,
		DuracaoTipo:      "dias",
		DiasSelecionados: []int{1},
		Horarios:         []entities.ScheduleWindow{{Inicio: "08:00", Fim: "16:00"}},
		Desconto:         0.08,
	}

	res, err := ResolveRequest(base, testSpaces, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aditiva := entities.DefaultSettings()
	outA := Calculate(res, aditiva, m)
	if want := outA.SubtotalSemMargem * 0.18; math.Abs(outA.ValorDesconto-want) > 0.01 {
		t.Fatalf("additive policy: expected %v, got %v", want, outA.ValorDesconto)
	}

	maior := entities.DefaultSettings()
	maior.PoliticaDesconto = entities.PoliticaDescontoMaior
	outM := Calculate(res, maior, m)
	if want := outM.SubtotalSemMargem * 0.10; math.Abs(outM.ValorDesconto-want) > 0.01 {
		t.Fatalf("greater-of policy: expected %v, got %v", want, outM.ValorDesconto)
	}
}

func TestClassifyRisk(t *testing.T) {
	s := entities.DefaultSettings()

	t.Run("fallback dominates", func(t *testing.T) {
		r := ClassifyRisk(entities.QuoteResult{ValorFinal: 10000, CustoMaoObraTotal: 1}, true, s)
		if r.Nivel != entities.RiscoAlto || r.Percentual != 100 {
			t.Fatalf("expected unconditional ALTO, got %+v", r)
		}
	})

	t.Run("tiers", func(t *testing.T) {
		cases := []struct {
			variavel float64
			final    float64
			want     string
		}{
			{100, 1000, entities.RiscoBaixo},
			{450, 1000, entities.RiscoMedio},
			{700, 1000, entities.RiscoAlto},
		}
		for _, tc := range cases {
			r := ClassifyRisk(entities.QuoteResult{CustoMaoObraTotal: tc.variavel, ValorFinal: tc.final}, false, s)
			if r.Nivel != tc.want {
				t.Fatalf("variable %v/%v: expected %s, got %+v", tc.variavel, tc.final, tc.want, r)
			}
		}
	})

	t.Run("zero final value is high risk", func(t *testing.T) {
		r := ClassifyRisk(entities.QuoteResult{}, false, s)
		if r.Nivel != entities.RiscoAlto {
			t.Fatalf("expected ALTO, got %+v", r)
		}
	})
}
