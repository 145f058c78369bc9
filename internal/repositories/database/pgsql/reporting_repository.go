package pgsql

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository serves read-only dashboard aggregates.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// GetDashboardTotals retrieves the member count, loan count and whole-book
// credit/debit totals in a single query pass.
func (r *reportingRepository) GetDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM loans),
			(SELECT COALESCE(SUM(amount), 0) FROM cash_movements WHERE direction = 'CREDIT'),
			(SELECT COALESCE(SUM(amount), 0) FROM cash_movements WHERE direction = 'DEBIT');
	`
	var totals domain.DashboardTotals
	err := r.Pool.QueryRow(ctx, query).Scan(
		&totals.MemberCount,
		&totals.LoanCount,
		&totals.TotalCredit,
		&totals.TotalDebit,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query dashboard totals", err)
	}
	totals.TotalCredit = money.Round(totals.TotalCredit)
	totals.TotalDebit = money.Round(totals.TotalDebit)
	return &totals, nil
}
