package repositories

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
)

// ReportingReader defines read operations for dashboard aggregates
type ReportingReader interface {
	// GetDashboardTotals retrieves the member count, loan count and total
	// credit/debit amounts in a single query pass.
	GetDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error)
}

// ReportingRepositoryFacade combines all reporting repository interfaces
type ReportingRepositoryFacade interface {
	ReportingReader
}
