package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/datamanager"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/pricing"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/sanitize"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

// Weekend bookings need a minimum on-site crew.
const minWeekendStaff = 3

var (
	ErrWeekendStaffing = errors.New("weekend days selected with insufficient active staff")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
)

// IQuoteUseCase exposes the quote calculation pipeline and the saved-quote
// status transitions.
type IQuoteUseCase interface {
	Calculate(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ApprovalStatus, justificativa string) (entities.Quote, error)
	GetByID(ctx context.Context, id int64) (entities.Quote, error)
	List(ctx context.Context) []entities.Quote
}

type QuoteUseCase struct {
	dm      interfaces.IDataManager
	gateway interfaces.IPaymentLinkGateway
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the pipeline. gateway may be nil; approval then
// simply skips the payment-link side effect.
func NewQuoteUseCase(dm interfaces.IDataManager, gateway interfaces.IPaymentLinkGateway) *QuoteUseCase {
	return &QuoteUseCase{dm: dm, gateway: gateway}
}

// Calculate runs the full pipeline: resolve defaults, check the weekend
// staffing precondition, price, classify risk and persist the history
// record. Missing input never blocks it (simulation mode); only a missing
// space catalog or the staffing rule do.
func (u *QuoteUseCase) Calculate(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error) {
	resolved, err := pricing.ResolveRequest(req, u.dm.Spaces(), u.dm.Extras())
	if err != nil {
		return entities.Quote{}, err
	}

	if includesWeekend(resolved.DiasSelecionados) && u.dm.ActiveStaffCount() < minWeekendStaff {
		return entities.Quote{}, ErrWeekendStaffing
	}

	usedFallbacks := resolved.UsedFallbacks

	nome := sanitize.NormalizeName(req.ClienteNome)
	if nome == "" {
		// Simulation quotes carry a generated placeholder client.
		nome = fmt.Sprintf("Simulação %s", time.Now().Format("02/01/2006 15:04"))
		usedFallbacks = true
	}
	contato := sanitize.NormalizeContact(req.ClienteContato)

	settings := u.dm.Settings()
	result := pricing.Calculate(resolved, settings, u.dm.Multipliers())
	risco := pricing.ClassifyRisk(result, usedFallbacks, settings)

	quote := entities.Quote{
		Data:               time.Now().UTC(),
		ClienteNome:        nome,
		ClienteContato:     contato,
		Sala:               resolved.Sala,
		Duracao:            resolved.Duracao,
		DuracaoTipo:        resolved.DuracaoTipo,
		DiasSelecionados:   resolved.DiasSelecionados,
		Resultado:          result,
		ClassificacaoRisco: risco,
		StatusAprovacao:    entities.StatusAguardandoAprovacao,
		UsouFallbacks:      usedFallbacks,
	}
	saved, err := u.dm.AddQuote(ctx, quote)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] calculated id=%d cliente=%q valor_final=%.2f risco=%s fallbacks=%t",
		saved.ID, saved.ClienteNome, saved.Resultado.ValorFinal, saved.ClassificacaoRisco.Nivel, saved.UsouFallbacks)
	return saved, nil
}

// UpdateStatus delegates the transition to the data-integrity gate. On
// approval it also requests a checkout link from the payment gateway in the
// background; the caller never waits on it and a gateway failure never undoes
// the approval.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id int64, status entities.ApprovalStatus, justificativa string) (entities.Quote, error) {
	if id <= 0 {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.dm.UpdateQuoteStatus(ctx, id, status, justificativa)
	if err != nil {
		return entities.Quote{}, err
	}

	if status == entities.StatusAprovado && u.gateway != nil {
		q := updated
		go func() {
			linkCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			ref := fmt.Sprintf("orcamento-%d", q.ID)
			titulo := fmt.Sprintf("Locação %s - %s", q.Sala.Nome, q.ClienteNome)
			url, err := u.gateway.CreatePaymentLink(linkCtx, ref, titulo, q.Resultado.ValorFinal)
			if err != nil {
				log.Printf("[quote][usecase] payment link failed id=%d err=%v", q.ID, err)
				return
			}
			log.Printf("[quote][usecase] payment link created id=%d url=%s", q.ID, url)
		}()
	}

	return updated, nil
}

func (u *QuoteUseCase) GetByID(_ context.Context, id int64) (entities.Quote, error) {
	if id <= 0 {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, ok := u.dm.GetQuote(id)
	if !ok {
		return entities.Quote{}, datamanager.ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(_ context.Context) []entities.Quote {
	return u.dm.ListQuotes()
}

func includesWeekend(dias []int) bool {
	for _, d := range dias {
		if d == 0 || d == 6 {
			return true
		}
	}
	return false
}
