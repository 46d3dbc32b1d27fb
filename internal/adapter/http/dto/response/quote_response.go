package response

import (
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/pkg"
)

type QuoteResponse struct {
	ID                    int64                 `json:"id"`
	Data                  time.Time             `json:"data"`
	ClienteNome           string                `json:"cliente_nome"`
	ClienteContato        string                `json:"cliente_contato"`
	Sala                  entities.Space        `json:"sala"`
	Duracao               int                   `json:"duracao"`
	DuracaoTipo           string                `json:"duracao_tipo"`
	DiasSelecionados      []int                 `json:"dias_selecionados"`
	Resultado             entities.QuoteResult  `json:"resultado"`
	ValorFinalFormatado   string                `json:"valor_final_formatado"`
	ClassificacaoRisco    entities.RiskInfo     `json:"classificacao_risco"`
	StatusAprovacao       string                `json:"status_aprovacao"`
	Convertido            bool                  `json:"convertido"`
	JustificativaRejeicao *string               `json:"justificativa_rejeicao"`
	DataAprovacao         *time.Time            `json:"data_aprovacao,omitempty"`
	Simulacao             bool                  `json:"simulacao"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                    q.ID,
		Data:                  q.Data,
		ClienteNome:           q.ClienteNome,
		ClienteContato:        q.ClienteContato,
		Sala:                  q.Sala,
		Duracao:               q.Duracao,
		DuracaoTipo:           q.DuracaoTipo,
		DiasSelecionados:      q.DiasSelecionados,
		Resultado:             q.Resultado,
		ValorFinalFormatado:   pkg.FormatBRL(q.Resultado.ValorFinal),
		ClassificacaoRisco:    q.ClassificacaoRisco,
		StatusAprovacao:       string(q.StatusAprovacao),
		Convertido:            q.Convertido,
		JustificativaRejeicao: q.JustificativaRejeicao,
		DataAprovacao:         q.DataAprovacao,
		Simulacao:             q.UsouFallbacks,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
