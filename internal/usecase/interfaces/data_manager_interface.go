package interfaces

import (
	"context"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

// IDataManager is the contract of the component that owns every persisted
// collection (spaces, staff, extras, multipliers, settings, quote history,
// leads). All local mutation goes through it; the remote store is a mirror it
// reconciles in the background.
type IDataManager interface {
	// Reference data.
	Spaces() []entities.Space
	SaveSpace(ctx context.Context, s entities.Space) (entities.Space, error)
	Staff() []entities.Employee
	SaveEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error)
	ActiveStaffCount() int
	Extras() []entities.Extra
	SaveExtra(ctx context.Context, e entities.Extra) (entities.Extra, error)
	Multipliers() entities.ShiftMultipliers
	Settings() entities.Settings
	UpdateSettings(ctx context.Context, s entities.Settings) error

	// Quote history and the status-transition gate.
	AddQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetQuote(id int64) (entities.Quote, bool)
	ListQuotes() []entities.Quote
	UpdateQuoteStatus(ctx context.Context, id int64, status entities.ApprovalStatus, justificativa string) (entities.Quote, error)

	// Leads.
	AddLead(ctx context.Context, l entities.Lead) (entities.Lead, error)
	ListLeads() []entities.Lead

	// Derived views and exports.
	ExportHistoryCSV() (string, error)
	ExportHistoryXLSX() ([]byte, error)
	RenewalOpportunities(ref time.Time) []entities.RenewalOpportunity

	// Pending-sync reconciliation.
	SyncPending(ctx context.Context) (int, error)
}
