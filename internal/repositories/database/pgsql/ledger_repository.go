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
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const cashMovementColumns = `transaction_id, direction, account_no, name, category, amount, movement_date, mode, remarks, seq, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
	memberRepo portsrepo.MemberRepositoryFacade
}

// newPgxLedgerRepository creates a new repository for cash movement and passbook data.
func newPgxLedgerRepository(pool *pgxpool.Pool, memberRepo portsrepo.MemberRepositoryFacade) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		memberRepo:     memberRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// insertCashMovementTx inserts a cash movement row within a transaction.
// The seq column is assigned by the database.
func insertCashMovementTx(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error {
	m := mapping.ToModelCashMovement(movement)
	query := `
		INSERT INTO cash_movements (
			transaction_id, direction, account_no, name, category, amount,
			movement_date, mode, remarks, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Direction,
		m.AccountNo,
		m.Name,
		m.Category,
		m.Amount,
		m.Date,
		m.Mode,
		m.Remarks,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash movement "+m.TransactionID, err)
	}
	return nil
}

// insertPassbookEntryTx inserts a passbook mirror row within a transaction.
// The entry_id column is assigned by the database.
func insertPassbookEntryTx(ctx context.Context, tx pgx.Tx, entry domain.PassbookEntry) error {
	m := mapping.ToModelPassbookEntry(entry)
	query := `
		INSERT INTO passbook_entries (account_no, entry_date, direction, amount, description)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query, m.AccountNo, m.Date, m.Direction, m.Amount, m.Description)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert passbook entry for account "+m.AccountNo, err)
	}
	return nil
}

// insertLoanMovementTx inserts a loan movement row within a transaction.
func insertLoanMovementTx(ctx context.Context, tx pgx.Tx, movement domain.LoanMovement) error {
	m := mapping.ToModelLoanMovement(movement)
	query := `
		INSERT INTO loan_movements (loan_id, kind, movement_date, amount, remarks)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query, m.LoanID, m.Kind, m.Date, m.Amount, m.Remarks)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert loan movement for loan "+m.LoanID, err)
	}
	return nil
}

// applyBalanceDeltaTx locks the member row and applies a signed balance delta.
// A missing member is tolerated: settlement movements can reference accounts
// that were never opened as SB members.
func applyBalanceDeltaTx(ctx context.Context, tx pgx.Tx, memberRepo portsrepo.MemberTransactionSupport, accountNo string, delta decimal.Decimal, updatedBy string, now time.Time) error {
	member, err := memberRepo.FindMemberForUpdate(ctx, tx, accountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if delta.IsPositive() {
		member.ApplyCredit(delta)
	} else {
		member.ApplyDebit(delta.Neg())
	}
	return memberRepo.UpdateMemberBalanceInTx(ctx, tx, accountNo, member.CurrentBalance, updatedBy, now)
}

// SaveMovement persists a cash movement with its side effects in one DB
// transaction: the movement itself, the signed member balance delta (skipped
// when zero), the optional passbook mirror and the optional loan movement.
func (r *PgxLedgerRepository) SaveMovement(ctx context.Context, movement domain.CashMovement, balanceDelta decimal.Decimal, mirror *domain.PassbookEntry, loanMovement *domain.LoanMovement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertCashMovementTx(ctx, tx, movement); err != nil {
		return err
	}

	if !balanceDelta.IsZero() {
		if err := applyBalanceDeltaTx(ctx, tx, r.memberRepo, movement.AccountNo, balanceDelta, movement.CreatedBy, movement.CreatedAt); err != nil {
			return err
		}
	}

	if mirror != nil {
		if err := insertPassbookEntryTx(ctx, tx, *mirror); err != nil {
			return err
		}
	}

	if loanMovement != nil {
		if err := insertLoanMovementTx(ctx, tx, *loanMovement); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindCashMovementByID retrieves a cash movement by its transaction identifier.
func (r *PgxLedgerRepository) FindCashMovementByID(ctx context.Context, transactionID string) (*domain.CashMovement, error) {
	query := `SELECT ` + cashMovementColumns + ` FROM cash_movements WHERE transaction_id = $1;`
	var m models.CashMovement
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.Direction,
		&m.AccountNo,
		&m.Name,
		&m.Category,
		&m.Amount,
		&m.Date,
		&m.Mode,
		&m.Remarks,
		&m.Seq,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cash movement "+transactionID, err)
	}
	movement := mapping.ToDomainCashMovement(m)
	return &movement, nil
}

// ListCashMovements retrieves movements for one direction, optionally bounded
// by [from, to] on the movement date, ordered by date then sequence.
func (r *PgxLedgerRepository) ListCashMovements(ctx context.Context, direction domain.MovementDirection, from *time.Time, to *time.Time) ([]domain.CashMovement, error) {
	query := `SELECT ` + cashMovementColumns + ` FROM cash_movements WHERE direction = $1`
	args := []interface{}{string(direction)}
	if from != nil {
		args = append(args, *from)
		query += ` AND movement_date >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND movement_date <= $3`
		} else {
			query += ` AND movement_date <= $2`
		}
	}
	query += ` ORDER BY movement_date, seq;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cash movements", err)
	}
	defer rows.Close()

	return collectCashMovements(rows)
}

// ListRecentCashMovements retrieves the latest movements for one direction.
func (r *PgxLedgerRepository) ListRecentCashMovements(ctx context.Context, direction domain.MovementDirection, limit int) ([]domain.CashMovement, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT ` + cashMovementColumns + `
		FROM cash_movements
		WHERE direction = $1
		ORDER BY movement_date DESC, seq DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, string(direction), limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recent cash movements", err)
	}
	defer rows.Close()

	return collectCashMovements(rows)
}

// SumCashMovements returns the total amount recorded for one direction.
func (r *PgxLedgerRepository) SumCashMovements(ctx context.Context, direction domain.MovementDirection) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM cash_movements WHERE direction = $1;`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(direction)).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum cash movements", err)
	}
	return money.Round(total), nil
}

// ListPassbookEntries retrieves all passbook entries for an account, ordered
// by entry date then insertion sequence.
func (r *PgxLedgerRepository) ListPassbookEntries(ctx context.Context, accountNo string) ([]domain.PassbookEntry, error) {
	query := `
		SELECT entry_id, account_no, entry_date, direction, amount, description
		FROM passbook_entries
		WHERE account_no = $1
		ORDER BY entry_date, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list passbook entries for account "+accountNo, err)
	}
	defer rows.Close()

	entries := []models.PassbookEntry{}
	for rows.Next() {
		var m models.PassbookEntry
		if err := rows.Scan(&m.EntryID, &m.AccountNo, &m.Date, &m.Direction, &m.Amount, &m.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan passbook entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating passbook entry rows", err)
	}
	return mapping.ToDomainPassbookEntrySlice(entries), nil
}

func collectCashMovements(rows pgx.Rows) ([]domain.CashMovement, error) {
	movements := []models.CashMovement{}
	for rows.Next() {
		var m models.CashMovement
		err := rows.Scan(
			&m.TransactionID,
			&m.Direction,
			&m.AccountNo,
			&m.Name,
			&m.Category,
			&m.Amount,
			&m.Date,
			&m.Mode,
			&m.Remarks,
			&m.Seq,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash movement row", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash movement rows", err)
	}
	return mapping.ToDomainCashMovementSlice(movements), nil
}
