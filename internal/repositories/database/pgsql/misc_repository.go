package pgsql

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	"github.com/gurukosh/guru_finance_app/internal/models"
	"github.com/gurukosh/guru_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMiscExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxMiscExpenseRepository(db *pgxpool.Pool) portsrepo.MiscExpenseRepositoryFacade {
	return &PgxMiscExpenseRepository{db: db}
}

// Ensure PgxMiscExpenseRepository implements portsrepo.MiscExpenseRepositoryFacade
var _ portsrepo.MiscExpenseRepositoryFacade = (*PgxMiscExpenseRepository)(nil)

// SaveMiscExpense persists a miscellaneous expense.
func (r *PgxMiscExpenseRepository) SaveMiscExpense(ctx context.Context, expense domain.MiscExpense) error {
	m := mapping.ToModelMiscExpense(expense)
	query := `
		INSERT INTO misc_expenses (misc_id, expense_date, head, amount, remarks, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.MiscID,
		m.Date,
		m.Head,
		m.Amount,
		m.Remarks,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert misc expense "+m.MiscID, err)
	}
	return nil
}

// ListMiscExpenses retrieves expenses optionally bounded by [from, to] on the
// expense date, ordered by date then identifier.
func (r *PgxMiscExpenseRepository) ListMiscExpenses(ctx context.Context, from *time.Time, to *time.Time) ([]domain.MiscExpense, error) {
	query := `
		SELECT misc_id, expense_date, head, amount, remarks, created_at, created_by, last_updated_at, last_updated_by
		FROM misc_expenses WHERE 1=1`
	query, args := appendDateRange(query, "expense_date", from, to)
	query += ` ORDER BY expense_date, misc_id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list misc expenses", err)
	}
	defer rows.Close()

	expenses := []domain.MiscExpense{}
	for rows.Next() {
		var m models.MiscExpense
		err := rows.Scan(
			&m.MiscID,
			&m.Date,
			&m.Head,
			&m.Amount,
			&m.Remarks,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan misc expense row", err)
		}
		expenses = append(expenses, mapping.ToDomainMiscExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating misc expense rows", err)
	}
	return expenses, nil
}
