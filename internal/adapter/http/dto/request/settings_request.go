package request

import (
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

type ComissoesRequest struct {
	VendaDireta float64 `json:"venda_direta"`
	GestaoUTV   float64 `json:"gestao_utv"`
	Ativo       bool    `json:"ativo"`
}

// SettingsRequest replaces the full settings document. Partial updates are
// not supported; callers read, modify and resubmit the whole object.
type SettingsRequest struct {
	Comissoes               ComissoesRequest `json:"comissoes"`
	MargemMinima            float64          `json:"margem_minima"`
	LucroAlvo               float64          `json:"lucro_alvo"`
	CustoFixoDiario         float64          `json:"custo_fixo_diario"`
	ExibirAlertaViabilidade bool             `json:"exibir_alerta_viabilidade"`
	CustoHoraFuncionario    float64          `json:"custo_hora_funcionario"`
	HorasNormaisDia         float64          `json:"horas_normais_dia"`
	HorasHE50Dia            float64          `json:"horas_he50_dia"`
	ValeTransporteDiario    float64          `json:"vale_transporte_diario"`
	TransporteAppDiario     float64          `json:"transporte_app_diario"`
	RefeicaoDiaria          float64          `json:"refeicao_diaria"`
	SemanasPorMes           float64          `json:"semanas_por_mes"`
	PoliticaDesconto        string           `json:"politica_desconto"`
	RiscoBaixoMax           float64          `json:"risco_baixo_max"`
	RiscoMedioMax           float64          `json:"risco_medio_max"`
}

func (r SettingsRequest) ToEntity() entities.Settings {
	return entities.Settings{
		Comissoes: entities.Comissoes{
			VendaDireta: r.Comissoes.VendaDireta,
			GestaoUTV:   r.Comissoes.GestaoUTV,
			Ativo:       r.Comissoes.Ativo,
		},
		MargemMinima:            r.MargemMinima,
		LucroAlvo:               r.LucroAlvo,
		CustoFixoDiario:         r.CustoFixoDiario,
		ExibirAlertaViabilidade: r.ExibirAlertaViabilidade,
		CustoHoraFuncionario:    r.CustoHoraFuncionario,
		HorasNormaisDia:         r.HorasNormaisDia,
		HorasHE50Dia:            r.HorasHE50Dia,
		ValeTransporteDiario:    r.ValeTransporteDiario,
		TransporteAppDiario:     r.TransporteAppDiario,
		RefeicaoDiaria:          r.RefeicaoDiaria,
		SemanasPorMes:           r.SemanasPorMes,
		PoliticaDesconto:        r.PoliticaDesconto,
		RiscoBaixoMax:           r.RiscoBaixoMax,
		RiscoMedioMax:           r.RiscoMedioMax,
	}
}
