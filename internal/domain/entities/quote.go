package entities

import "time"

// ApprovalStatus represents the lifecycle of a saved quote (orçamento).
//
// Domain notes:
//   - AGUARDANDO_APROVACAO is the initial state of every quote.
//   - APROVADO / REPROVADO are terminal states, but re-transitions are
//     allowed and must keep the Convertido invariant intact.
type ApprovalStatus string

const (
	StatusAguardandoAprovacao ApprovalStatus = "AGUARDANDO_APROVACAO"
	StatusAprovado            ApprovalStatus = "APROVADO"
	StatusReprovado           ApprovalStatus = "REPROVADO"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusAguardandoAprovacao, StatusAprovado, StatusReprovado:
		return true
	}
	return false
}

// ScheduleWindow is one requested daily time window, "HH:MM" bounds.
// A window is only usable when Fim is strictly after Inicio.
type ScheduleWindow struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// QuoteRequest is the raw calculation input as received from the caller.
// Any missing field is absorbed by the resolve-defaults pass; the request is
// never rejected for incompleteness.
type QuoteRequest struct {
	SalaID           int              `json:"sala_id"`
	ClienteNome      string           `json:"cliente_nome"`
	ClienteContato   string           `json:"cliente_contato"`
	Duracao          int              `json:"duracao"`
	DuracaoTipo      string           `json:"duracao_tipo"` // "dias" | "meses"
	DiasSelecionados []int            `json:"dias_selecionados"`
	Horarios         []ScheduleWindow `json:"horarios"`
	Margem           float64          `json:"margem"`
	Desconto         float64          `json:"desconto"`
	ExtrasIDs        []int            `json:"extras_ids"`
}

// QuoteResult is the itemized outcome of a calculation. Immutable once
// produced. Every field is finite and >= 0 except LucroLiquidoReal, which may
// be negative.
type QuoteResult struct {
	HorasTotais          float64 `json:"horas_totais"`
	ValorPorHora         float64 `json:"valor_por_hora"`
	CustoOperacionalBase float64 `json:"custo_operacional_base"`
	CustoMaoObraNormal   float64 `json:"custo_mao_obra_normal"`
	CustoMaoObraHE50     float64 `json:"custo_mao_obra_he50"`
	CustoMaoObraHE100    float64 `json:"custo_mao_obra_he100"`
	CustoMaoObraTotal    float64 `json:"custo_mao_obra_total"`
	CustoValeTransporte  float64 `json:"custo_vale_transporte"`
	CustoTransporteApp   float64 `json:"custo_transporte_app"`
	CustoRefeicao        float64 `json:"custo_refeicao"`
	CustoExtras          float64 `json:"custo_extras"`
	SubtotalSemMargem    float64 `json:"subtotal_sem_margem"`
	ValorMargem          float64 `json:"valor_margem"`
	ValorDesconto        float64 `json:"valor_desconto"`
	ValorFinal           float64 `json:"valor_final"`
	ComissaoVendedor     float64 `json:"comissao_vendedor"`
	ComissaoGestao       float64 `json:"comissao_gestao"`
	LucroLiquidoReal     float64 `json:"lucro_liquido_real"`
}

// RiskInfo is the derived risk tier of a quote.
type RiskInfo struct {
	Nivel      string  `json:"nivel"` // BAIXO | MEDIO | ALTO
	Percentual float64 `json:"percentual"`
}

const (
	RiscoBaixo = "BAIXO"
	RiscoMedio = "MEDIO"
	RiscoAlto  = "ALTO"
)

// Quote is the persisted historical record of one calculation.
//
// Ownership: the data manager exclusively owns the local copy; the remote
// document store is an eventually-consistent mirror reconciled through
// RemoteID presence (empty RemoteID means the record is pending sync).
type Quote struct {
	ID                    int64          `json:"id"`
	Data                  time.Time      `json:"data"`
	ClienteNome           string         `json:"cliente_nome"`
	ClienteContato        string         `json:"cliente_contato"`
	Sala                  Space          `json:"sala"`
	Duracao               int            `json:"duracao"`
	DuracaoTipo           string         `json:"duracao_tipo"`
	DiasSelecionados      []int          `json:"dias_selecionados"`
	Resultado             QuoteResult    `json:"resultado"`
	ClassificacaoRisco    RiskInfo       `json:"classificacao_risco"`
	StatusAprovacao       ApprovalStatus `json:"status_aprovacao"`
	Convertido            bool           `json:"convertido"`
	JustificativaRejeicao *string        `json:"justificativa_rejeicao"`
	DataAprovacao         *time.Time     `json:"data_aprovacao,omitempty"`
	UsouFallbacks         bool           `json:"usou_fallbacks"`
	RemoteID              string         `json:"remote_id,omitempty"`
}

// RenewalOpportunity is a read-only derived view: a past client whose event
// happened 10 to 12 months ago, surfaced as a sales lead.
type RenewalOpportunity struct {
	Cliente    string `json:"cliente"`
	MesesAtras int    `json:"meses_atras"`
	Espaco     string `json:"espaco"`
}
