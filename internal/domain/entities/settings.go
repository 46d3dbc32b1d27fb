package entities

// ShiftMultipliers scale the hourly labor cost by time of day. Values are
// expected to be >= 1.0 and non-decreasing (manhã <= tarde <= noite), but the
// ordering is not enforced.
type ShiftMultipliers struct {
	Manha float64 `json:"manha"`
	Tarde float64 `json:"tarde"`
	Noite float64 `json:"noite"`
}

// ForHour returns the multiplier applicable to an hour of day.
// Morning runs until 12h, afternoon until 18h, night after that.
func (m ShiftMultipliers) ForHour(hour int) float64 {
	switch {
	case hour < 12:
		return m.Manha
	case hour < 18:
		return m.Tarde
	default:
		return m.Noite
	}
}

func DefaultShiftMultipliers() ShiftMultipliers {
	return ShiftMultipliers{Manha: 1.0, Tarde: 1.15, Noite: 1.30}
}

// Comissoes holds the commission rates applied over the final quote value.
type Comissoes struct {
	VendaDireta float64 `json:"venda_direta"`
	GestaoUTV   float64 `json:"gestao_utv"`
	Ativo       bool    `json:"ativo"`
}

// Discount combination policies for the manual discount vs the automatic
// volume discount.
const (
	PoliticaDescontoAditiva = "aditiva"
	PoliticaDescontoMaior   = "maior"
)

// Settings are the process-wide tunable pricing parameters. Loaded once at
// startup and mutated only through the explicit settings-update path; the
// calculation itself never writes them.
type Settings struct {
	Comissoes               Comissoes `json:"comissoes"`
	MargemMinima            float64   `json:"margem_minima"`
	LucroAlvo               float64   `json:"lucro_alvo"`
	CustoFixoDiario         float64   `json:"custo_fixo_diario"`
	ExibirAlertaViabilidade bool      `json:"exibir_alerta_viabilidade"`

	// Labor parameters: hourly base rate, daily normal-hour threshold and
	// the width of the 50%-overtime band; anything beyond is 100% overtime.
	CustoHoraFuncionario float64 `json:"custo_hora_funcionario"`
	HorasNormaisDia      float64 `json:"horas_normais_dia"`
	HorasHE50Dia         float64 `json:"horas_he50_dia"`

	// Daily flat rates applied per day worked.
	ValeTransporteDiario float64 `json:"vale_transporte_diario"`
	TransporteAppDiario  float64 `json:"transporte_app_diario"`
	RefeicaoDiaria       float64 `json:"refeicao_diaria"`

	// SemanasPorMes approximates how many times a selected weekday recurs
	// per month of contract.
	SemanasPorMes float64 `json:"semanas_por_mes"`

	// PoliticaDesconto: "aditiva" sums the manual and volume discounts,
	// "maior" applies whichever is greater.
	PoliticaDesconto string `json:"politica_desconto"`

	// Risk tier thresholds over the variable-cost share (percent).
	RiscoBaixoMax float64 `json:"risco_baixo_max"`
	RiscoMedioMax float64 `json:"risco_medio_max"`
}

func DefaultSettings() Settings {
	return Settings{
		Comissoes:            Comissoes{VendaDireta: 0.05, GestaoUTV: 0.03, Ativo: true},
		MargemMinima:         0.10,
		LucroAlvo:            0.20,
		CustoFixoDiario:      150.0,
		CustoHoraFuncionario: 25.0,
		HorasNormaisDia:      8.0,
		HorasHE50Dia:         2.0,
		ValeTransporteDiario: 12.0,
		TransporteAppDiario:  0.0,
		RefeicaoDiaria:       30.0,
		SemanasPorMes:        4.345,
		PoliticaDesconto:     PoliticaDescontoAditiva,
		RiscoBaixoMax:        30.0,
		RiscoMedioMax:        60.0,
	}
}
