package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	"github.com/gurukosh/guru_finance_app/internal/models"
	"github.com/gurukosh/guru_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const loanColumns = `loan_id, account_no, member_name, category, principal, interest_rate, installments, emi_amount, start_date, end_date, remarks, seq, created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryWithTx {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryWithTx
var _ portsrepo.LoanRepositoryWithTx = (*PgxLoanRepository)(nil)

// SaveLoanDisbursement persists the loan and its disbursal debit within one
// DB transaction. The disbursal never touches the member savings balance.
func (r *PgxLoanRepository) SaveLoanDisbursement(ctx context.Context, loan domain.Loan, disbursal domain.CashMovement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLoan(loan)
	loanQuery := `
		INSERT INTO loans (
			loan_id, account_no, member_name, category, principal, interest_rate,
			installments, emi_amount, start_date, end_date, remarks,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, loanQuery,
		m.LoanID,
		m.AccountNo,
		m.MemberName,
		m.Category,
		m.Principal,
		m.InterestRate,
		m.Installments,
		m.EMIAmount,
		m.StartDate,
		m.EndDate,
		m.Remarks,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert loan "+m.LoanID, err)
	}

	if err := insertCashMovementTx(ctx, tx, disbursal); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindLoanByID retrieves a loan by its unique identifier.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`
	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find loan "+loanID, err)
	}
	return loan, nil
}

// ListLoansByAccount retrieves all loans for an account.
func (r *PgxLoanRepository) ListLoansByAccount(ctx context.Context, accountNo string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE account_no = $1 ORDER BY start_date, seq;`
	rows, err := r.Pool.Query(ctx, query, accountNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list loans for account "+accountNo, err)
	}
	defer rows.Close()

	return collectLoans(rows)
}

// ListLoans retrieves loans optionally bounded by [from, to] on the start date.
func (r *PgxLoanRepository) ListLoans(ctx context.Context, from *time.Time, to *time.Time) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE 1=1`
	query, args := appendDateRange(query, "start_date", from, to)
	query += ` ORDER BY start_date, seq;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list loans", err)
	}
	defer rows.Close()

	return collectLoans(rows)
}

// ListRecentLoans retrieves the latest loans, most recent first.
func (r *PgxLoanRepository) ListRecentLoans(ctx context.Context, limit int) ([]domain.Loan, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY start_date DESC, seq DESC LIMIT $1;`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recent loans", err)
	}
	defer rows.Close()

	return collectLoans(rows)
}

// ListLoanMovements retrieves all movements recorded against a loan, ordered
// by movement date then insertion sequence.
func (r *PgxLoanRepository) ListLoanMovements(ctx context.Context, loanID string) ([]domain.LoanMovement, error) {
	query := `
		SELECT movement_id, loan_id, kind, movement_date, amount, remarks
		FROM loan_movements
		WHERE loan_id = $1
		ORDER BY movement_date, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list movements for loan "+loanID, err)
	}
	defer rows.Close()

	movements := []models.LoanMovement{}
	for rows.Next() {
		var m models.LoanMovement
		if err := rows.Scan(&m.MovementID, &m.LoanID, &m.Kind, &m.Date, &m.Amount, &m.Remarks); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan loan movement row", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating loan movement rows", err)
	}
	return mapping.ToDomainLoanMovementSlice(movements), nil
}

// SumEMIByLoanIDs returns total EMI received per loan. Loans with no EMI
// movements have no entry in the result.
func (r *PgxLoanRepository) SumEMIByLoanIDs(ctx context.Context, loanIDs []string) (map[string]decimal.Decimal, error) {
	if len(loanIDs) == 0 {
		return map[string]decimal.Decimal{}, nil
	}
	query := `
		SELECT loan_id, SUM(amount)
		FROM loan_movements
		WHERE kind = $1 AND loan_id = ANY($2)
		GROUP BY loan_id;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.MovementEMI), loanIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum EMI movements", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal, len(loanIDs))
	for rows.Next() {
		var loanID string
		var total decimal.Decimal
		if err := rows.Scan(&loanID, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan EMI total row", err)
		}
		totals[loanID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating EMI total rows", err)
	}
	return totals, nil
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.AccountNo,
		&m.MemberName,
		&m.Category,
		&m.Principal,
		&m.InterestRate,
		&m.Installments,
		&m.EMIAmount,
		&m.StartDate,
		&m.EndDate,
		&m.Remarks,
		&m.Seq,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	loan := mapping.ToDomainLoan(m)
	return &loan, nil
}

func collectLoans(rows pgx.Rows) ([]domain.Loan, error) {
	loans := []domain.Loan{}
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan loan row", err)
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating loan rows", err)
	}
	return loans, nil
}
