package usecase

import (
	"context"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

// IReportUseCase exposes the derived read-only views: history exports and the
// renewal radar.
type IReportUseCase interface {
	HistoryCSV(ctx context.Context) (string, error)
	HistoryXLSX(ctx context.Context) ([]byte, error)
	Renewals(ctx context.Context) []entities.RenewalOpportunity
}

type ReportUseCase struct {
	dm  interfaces.IDataManager
	now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(dm interfaces.IDataManager) *ReportUseCase {
	return &ReportUseCase{dm: dm, now: time.Now}
}

func (u *ReportUseCase) HistoryCSV(_ context.Context) (string, error) {
	return u.dm.ExportHistoryCSV()
}

func (u *ReportUseCase) HistoryXLSX(_ context.Context) ([]byte, error) {
	return u.dm.ExportHistoryXLSX()
}

func (u *ReportUseCase) Renewals(_ context.Context) []entities.RenewalOpportunity {
	return u.dm.RenewalOpportunities(u.now())
}
