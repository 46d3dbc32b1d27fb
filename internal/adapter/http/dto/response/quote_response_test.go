package response

import (
	"testing"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:          7,
		Data:        now,
		ClienteNome: "Maria Silva",
		Sala:        entities.Space{ID: 1, Nome: "Auditório"},
		Resultado:   entities.QuoteResult{ValorFinal: 1234.56},
		ClassificacaoRisco: entities.RiskInfo{
			Nivel:      entities.RiscoBaixo,
			Percentual: 12.5,
		},
		StatusAprovacao: entities.StatusAguardandoAprovacao,
		UsouFallbacks:   true,
		RemoteID:        "abc-123",
	}

	resp := FromQuote(q)
	if resp.ID != 7 || resp.ClienteNome != "Maria Silva" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ValorFinalFormatado != "R$ 1.234,56" {
		t.Fatalf("unexpected formatted value: %q", resp.ValorFinalFormatado)
	}
	if resp.StatusAprovacao != "AGUARDANDO_APROVACAO" {
		t.Fatalf("unexpected status: %q", resp.StatusAprovacao)
	}
	if !resp.Simulacao {
		t.Fatalf("expected simulacao flag set")
	}
}

func TestFromQuotes_PreservesOrder(t *testing.T) {
	quotes := []entities.Quote{{ID: 3}, {ID: 2}, {ID: 1}}
	out := FromQuotes(quotes)
	if len(out) != 3 || out[0].ID != 3 || out[2].ID != 1 {
		t.Fatalf("unexpected order: %+v", out)
	}
}
