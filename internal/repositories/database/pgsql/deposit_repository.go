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

const fixedDepositColumns = `fd_id, account_no, member_name, start_date, amount, interest_rate, period_months, maturity_date, maturity_amount, remarks, is_closed, created_at, created_by, last_updated_at, last_updated_by`

const recurringDepositColumns = `rd_id, account_no, member_name, start_date, installment_amount, period_months, interest_rate, maturity_date, maturity_amount, remarks, is_closed, created_at, created_by, last_updated_at, last_updated_by`

type PgxDepositRepository struct {
	BaseRepository
	memberRepo portsrepo.MemberRepositoryFacade
}

// newPgxDepositRepository creates a new repository for fixed and recurring deposit data.
func newPgxDepositRepository(pool *pgxpool.Pool, memberRepo portsrepo.MemberRepositoryFacade) portsrepo.DepositRepositoryWithTx {
	return &PgxDepositRepository{
		BaseRepository: BaseRepository{Pool: pool},
		memberRepo:     memberRepo,
	}
}

// Ensure PgxDepositRepository implements portsrepo.DepositRepositoryWithTx
var _ portsrepo.DepositRepositoryWithTx = (*PgxDepositRepository)(nil)

// SaveFixedDeposit persists a new fixed deposit.
func (r *PgxDepositRepository) SaveFixedDeposit(ctx context.Context, fd domain.FixedDeposit) error {
	m := mapping.ToModelFixedDeposit(fd)
	query := `
		INSERT INTO fixed_deposits (` + fixedDepositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FDID,
		m.AccountNo,
		m.MemberName,
		m.StartDate,
		m.Amount,
		m.InterestRate,
		m.PeriodMonths,
		m.MaturityDate,
		m.MaturityAmount,
		m.Remarks,
		m.IsClosed,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert fixed deposit "+m.FDID, err)
	}
	return nil
}

// CloseFixedDeposit marks the deposit closed and persists its payout debits
// and the member balance delta within one DB transaction.
func (r *PgxDepositRepository) CloseFixedDeposit(ctx context.Context, fdID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error {
	return r.closeDeposit(ctx, "fixed_deposits", "fd_id", fdID, payouts, balanceDelta, closedBy, now)
}

// SaveRecurringDeposit persists a new recurring deposit.
func (r *PgxDepositRepository) SaveRecurringDeposit(ctx context.Context, rd domain.RecurringDeposit) error {
	m := mapping.ToModelRecurringDeposit(rd)
	query := `
		INSERT INTO recurring_deposits (` + recurringDepositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RDID,
		m.AccountNo,
		m.MemberName,
		m.StartDate,
		m.InstallmentAmount,
		m.PeriodMonths,
		m.InterestRate,
		m.MaturityDate,
		m.MaturityAmount,
		m.Remarks,
		m.IsClosed,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert recurring deposit "+m.RDID, err)
	}
	return nil
}

// SaveRDInstallment persists a recurring deposit installment. Installments
// never create cash movements.
func (r *PgxDepositRepository) SaveRDInstallment(ctx context.Context, installment domain.RDInstallment) error {
	m := mapping.ToModelRDInstallment(installment)
	query := `
		INSERT INTO rd_installments (rd_id, installment_date, installment_no, amount, remarks)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.RDID, m.Date, m.InstallmentNo, m.Amount, m.Remarks)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert installment for RD "+m.RDID, err)
	}
	return nil
}

// CloseRecurringDeposit marks the deposit closed and persists its payout
// debits and the member balance delta within one DB transaction.
func (r *PgxDepositRepository) CloseRecurringDeposit(ctx context.Context, rdID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error {
	return r.closeDeposit(ctx, "recurring_deposits", "rd_id", rdID, payouts, balanceDelta, closedBy, now)
}

// closeDeposit handles the shared close transaction for both deposit kinds.
func (r *PgxDepositRepository) closeDeposit(ctx context.Context, table string, idColumn string, depositID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE ` + table + `
		SET is_closed = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE ` + idColumn + ` = $1 AND is_closed = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, query, depositID, now, closedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close deposit "+depositID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("open deposit " + depositID + " not found for close")
	}

	var accountNo string
	for _, payout := range payouts {
		if err := insertCashMovementTx(ctx, tx, payout); err != nil {
			return err
		}
		accountNo = payout.AccountNo
	}

	if !balanceDelta.IsZero() && accountNo != "" {
		if err := applyBalanceDeltaTx(ctx, tx, r.memberRepo, accountNo, balanceDelta, closedBy, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindFixedDepositByID retrieves a fixed deposit by its unique identifier.
func (r *PgxDepositRepository) FindFixedDepositByID(ctx context.Context, fdID string) (*domain.FixedDeposit, error) {
	query := `SELECT ` + fixedDepositColumns + ` FROM fixed_deposits WHERE fd_id = $1;`
	fd, err := scanFixedDeposit(r.Pool.QueryRow(ctx, query, fdID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fixed deposit "+fdID, err)
	}
	return fd, nil
}

// ListFixedDeposits retrieves fixed deposits optionally bounded by [from, to]
// on the start date, latest first.
func (r *PgxDepositRepository) ListFixedDeposits(ctx context.Context, from *time.Time, to *time.Time) ([]domain.FixedDeposit, error) {
	query := `SELECT ` + fixedDepositColumns + ` FROM fixed_deposits WHERE 1=1`
	query, args := appendDateRange(query, "start_date", from, to)
	query += ` ORDER BY start_date DESC, fd_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list fixed deposits", err)
	}
	defer rows.Close()

	deposits := []domain.FixedDeposit{}
	for rows.Next() {
		fd, err := scanFixedDeposit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fixed deposit row", err)
		}
		deposits = append(deposits, *fd)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fixed deposit rows", err)
	}
	return deposits, nil
}

// FindRecurringDepositByID retrieves a recurring deposit by its unique identifier.
func (r *PgxDepositRepository) FindRecurringDepositByID(ctx context.Context, rdID string) (*domain.RecurringDeposit, error) {
	query := `SELECT ` + recurringDepositColumns + ` FROM recurring_deposits WHERE rd_id = $1;`
	rd, err := scanRecurringDeposit(r.Pool.QueryRow(ctx, query, rdID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find recurring deposit "+rdID, err)
	}
	return rd, nil
}

// ListRecurringDeposits retrieves recurring deposits optionally bounded by
// [from, to] on the start date, latest first.
func (r *PgxDepositRepository) ListRecurringDeposits(ctx context.Context, from *time.Time, to *time.Time) ([]domain.RecurringDeposit, error) {
	query := `SELECT ` + recurringDepositColumns + ` FROM recurring_deposits WHERE 1=1`
	query, args := appendDateRange(query, "start_date", from, to)
	query += ` ORDER BY start_date DESC, rd_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recurring deposits", err)
	}
	defer rows.Close()

	deposits := []domain.RecurringDeposit{}
	for rows.Next() {
		rd, err := scanRecurringDeposit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recurring deposit row", err)
		}
		deposits = append(deposits, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recurring deposit rows", err)
	}
	return deposits, nil
}

// ListRDInstallments retrieves the installments recorded against a recurring
// deposit, ordered by installment number.
func (r *PgxDepositRepository) ListRDInstallments(ctx context.Context, rdID string) ([]domain.RDInstallment, error) {
	query := `
		SELECT installment_id, rd_id, installment_date, installment_no, amount, remarks
		FROM rd_installments
		WHERE rd_id = $1
		ORDER BY installment_no;
	`
	rows, err := r.Pool.Query(ctx, query, rdID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list installments for RD "+rdID, err)
	}
	defer rows.Close()

	installments := []domain.RDInstallment{}
	for rows.Next() {
		var m models.RDInstallment
		if err := rows.Scan(&m.InstallmentID, &m.RDID, &m.Date, &m.InstallmentNo, &m.Amount, &m.Remarks); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan RD installment row", err)
		}
		installments = append(installments, mapping.ToDomainRDInstallment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating RD installment rows", err)
	}
	return installments, nil
}

// NextRDInstallmentNo returns the next installment number for a recurring deposit.
func (r *PgxDepositRepository) NextRDInstallmentNo(ctx context.Context, rdID string) (int, error) {
	query := `SELECT COALESCE(MAX(installment_no), 0) + 1 FROM rd_installments WHERE rd_id = $1;`
	var next int
	if err := r.Pool.QueryRow(ctx, query, rdID).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to find next installment number for RD "+rdID, err)
	}
	return next, nil
}

// CountOpenDepositsByAccount returns the number of open fixed and recurring
// deposits held by an account.
func (r *PgxDepositRepository) CountOpenDepositsByAccount(ctx context.Context, accountNo string) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM fixed_deposits WHERE account_no = $1 AND is_closed = FALSE),
			(SELECT COUNT(*) FROM recurring_deposits WHERE account_no = $1 AND is_closed = FALSE);
	`
	var fdCount, rdCount int
	if err := r.Pool.QueryRow(ctx, query, accountNo).Scan(&fdCount, &rdCount); err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to count open deposits for account "+accountNo, err)
	}
	return fdCount, rdCount, nil
}

// appendDateRange adds optional bound conditions on a date column.
func appendDateRange(query string, column string, from *time.Time, to *time.Time) (string, []interface{}) {
	args := []interface{}{}
	if from != nil {
		args = append(args, *from)
		query += ` AND ` + column + ` >= $1`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND ` + column + ` <= $2`
		} else {
			query += ` AND ` + column + ` <= $1`
		}
	}
	return query, args
}

func scanFixedDeposit(row pgx.Row) (*domain.FixedDeposit, error) {
	var m models.FixedDeposit
	err := row.Scan(
		&m.FDID,
		&m.AccountNo,
		&m.MemberName,
		&m.StartDate,
		&m.Amount,
		&m.InterestRate,
		&m.PeriodMonths,
		&m.MaturityDate,
		&m.MaturityAmount,
		&m.Remarks,
		&m.IsClosed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	fd := mapping.ToDomainFixedDeposit(m)
	return &fd, nil
}

func scanRecurringDeposit(row pgx.Row) (*domain.RecurringDeposit, error) {
	var m models.RecurringDeposit
	err := row.Scan(
		&m.RDID,
		&m.AccountNo,
		&m.MemberName,
		&m.StartDate,
		&m.InstallmentAmount,
		&m.PeriodMonths,
		&m.InterestRate,
		&m.MaturityDate,
		&m.MaturityAmount,
		&m.Remarks,
		&m.IsClosed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	rd := mapping.ToDomainRecurringDeposit(m)
	return &rd, nil
}
