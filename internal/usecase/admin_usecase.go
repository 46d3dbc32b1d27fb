package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

var (
	ErrInvalidSpaceName    = errors.New("space name is required")
	ErrInvalidEmployeeName = errors.New("employee name is required")
	ErrInvalidExtraName    = errors.New("extra name is required")
)

// IAdminUseCase manages the reference catalog (spaces, staff, extras), the
// pricing settings and the manual sync trigger.
type IAdminUseCase interface {
	Spaces(ctx context.Context) []entities.Space
	SaveSpace(ctx context.Context, s entities.Space) (entities.Space, error)
	Staff(ctx context.Context) []entities.Employee
	SaveEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Extras(ctx context.Context) []entities.Extra
	SaveExtra(ctx context.Context, e entities.Extra) (entities.Extra, error)
	Settings(ctx context.Context) entities.Settings
	UpdateSettings(ctx context.Context, s entities.Settings) (entities.Settings, error)
	SyncNow(ctx context.Context) (int, error)
}

type AdminUseCase struct {
	dm interfaces.IDataManager
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(dm interfaces.IDataManager) *AdminUseCase {
	return &AdminUseCase{dm: dm}
}

func (u *AdminUseCase) Spaces(_ context.Context) []entities.Space {
	return u.dm.Spaces()
}

func (u *AdminUseCase) SaveSpace(ctx context.Context, s entities.Space) (entities.Space, error) {
	s.Nome = strings.TrimSpace(s.Nome)
	if s.Nome == "" {
		return entities.Space{}, ErrInvalidSpaceName
	}
	return u.dm.SaveSpace(ctx, s)
}

func (u *AdminUseCase) Staff(_ context.Context) []entities.Employee {
	return u.dm.Staff()
}

func (u *AdminUseCase) SaveEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.Nome = strings.TrimSpace(e.Nome)
	if e.Nome == "" {
		return entities.Employee{}, ErrInvalidEmployeeName
	}
	return u.dm.SaveEmployee(ctx, e)
}

func (u *AdminUseCase) Extras(_ context.Context) []entities.Extra {
	return u.dm.Extras()
}

func (u *AdminUseCase) SaveExtra(ctx context.Context, e entities.Extra) (entities.Extra, error) {
	e.Nome = strings.TrimSpace(e.Nome)
	if e.Nome == "" {
		return entities.Extra{}, ErrInvalidExtraName
	}
	return u.dm.SaveExtra(ctx, e)
}

func (u *AdminUseCase) Settings(_ context.Context) entities.Settings {
	return u.dm.Settings()
}

// UpdateSettings is the only write path into the pricing configuration.
func (u *AdminUseCase) UpdateSettings(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	if s.PoliticaDesconto != entities.PoliticaDescontoMaior {
		s.PoliticaDesconto = entities.PoliticaDescontoAditiva
	}
	if err := u.dm.UpdateSettings(ctx, s); err != nil {
		return entities.Settings{}, err
	}
	log.Printf("[admin][usecase] settings updated politica_desconto=%s custo_fixo_diario=%.2f", s.PoliticaDesconto, s.CustoFixoDiario)
	return s, nil
}

func (u *AdminUseCase) SyncNow(ctx context.Context) (int, error) {
	return u.dm.SyncPending(ctx)
}
