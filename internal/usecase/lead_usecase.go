package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/sanitize"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

var ErrInvalidLeadName = errors.New("lead name is required")

// ILeadUseCase captures and lists pre-quote contacts.
type ILeadUseCase interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	List(ctx context.Context) []entities.Lead
}

type LeadUseCase struct {
	dm interfaces.IDataManager
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(dm interfaces.IDataManager) *LeadUseCase {
	return &LeadUseCase{dm: dm}
}

// Create normalizes the contact fields and persists the lead. A name is the
// only requirement; contact formatting is sanitized, never rejected.
func (u *LeadUseCase) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.Nome = sanitize.NormalizeName(l.Nome)
	if l.Nome == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}
	l.Telefone = sanitize.NormalizeContact(l.Telefone)

	saved, err := u.dm.AddLead(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] captured id=%d nome=%q associado_cdl=%t", saved.ID, saved.Nome, saved.AssociadoCDL)
	return saved, nil
}

func (u *LeadUseCase) List(_ context.Context) []entities.Lead {
	return u.dm.ListLeads()
}
