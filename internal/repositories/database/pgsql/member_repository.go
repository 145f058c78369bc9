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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const memberColumns = `account_no, name, dob, mobile, aadhar, pan, address, opening_date, opening_balance, current_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryWithTx {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryWithTx
var _ portsrepo.MemberRepositoryWithTx = (*PgxMemberRepository)(nil)

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.AccountNo,
		&m.Name,
		&m.DOB,
		&m.Mobile,
		&m.Aadhar,
		&m.PAN,
		&m.Address,
		&m.OpeningDate,
		&m.OpeningBalance,
		&m.CurrentBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

// SaveMember persists the member plus its optional opening credit and
// passbook mirror within one DB transaction.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member, opening *domain.CashMovement, mirror *domain.PassbookEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelMember := mapping.ToModelMember(member)
	memberQuery := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, memberQuery,
		modelMember.AccountNo,
		modelMember.Name,
		modelMember.DOB,
		modelMember.Mobile,
		modelMember.Aadhar,
		modelMember.PAN,
		modelMember.Address,
		modelMember.OpeningDate,
		modelMember.OpeningBalance,
		modelMember.CurrentBalance,
		modelMember.CreatedAt,
		modelMember.CreatedBy,
		modelMember.LastUpdatedAt,
		modelMember.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert member "+modelMember.AccountNo, err)
	}

	if opening != nil {
		if err := insertCashMovementTx(ctx, tx, *opening); err != nil {
			return err
		}
	}
	if mirror != nil {
		if err := insertPassbookEntryTx(ctx, tx, *mirror); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindMemberByAccountNo retrieves a member by account number.
func (r *PgxMemberRepository) FindMemberByAccountNo(ctx context.Context, accountNo string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE account_no = $1;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, accountNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find member "+accountNo, err)
	}
	return member, nil
}

// SearchMembers matches the query against account number, name and mobile.
func (r *PgxMemberRepository) SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 20
	}
	sqlQuery := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE account_no ILIKE $1 OR name ILIKE $1 OR mobile ILIKE $1
		ORDER BY account_no
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, sqlQuery, "%"+query+"%", limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search members", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

// ListMembers retrieves members ordered by account number.
func (r *PgxMemberRepository) ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY account_no LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list members", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

// MaxAccountNo returns the highest numeric account number assigned so far.
// Account numbers are stored as text but are always digit strings.
func (r *PgxMemberRepository) MaxAccountNo(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(account_no::bigint), 0) FROM members WHERE account_no ~ '^[0-9]+$';`
	var max int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, apperrors.NewAppError(500, "failed to find max account number", err)
	}
	return max, nil
}

// UpdateMemberContact updates a member's mobile and address.
func (r *PgxMemberRepository) UpdateMemberContact(ctx context.Context, accountNo string, mobile string, address string, updatedBy string, now time.Time) error {
	query := `
		UPDATE members
		SET mobile = $2, address = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_no = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountNo, mobile, address, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update member "+accountNo, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + accountNo + " not found for update")
	}
	return nil
}

// FindMemberForUpdate selects a member and locks the row within a transaction.
func (r *PgxMemberRepository) FindMemberForUpdate(ctx context.Context, tx pgx.Tx, accountNo string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE account_no = $1 FOR UPDATE;`
	member, err := scanMember(tx.QueryRow(ctx, query, accountNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock member "+accountNo, err)
	}
	return member, nil
}

// UpdateMemberBalanceInTx writes a member's new savings balance within a transaction.
func (r *PgxMemberRepository) UpdateMemberBalanceInTx(ctx context.Context, tx pgx.Tx, accountNo string, newBalance decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		UPDATE members
		SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_no = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountNo, newBalance, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance for member "+accountNo, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + accountNo + " not found for balance update")
	}
	return nil
}

func collectMembers(rows pgx.Rows) ([]domain.Member, error) {
	members := []domain.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating member rows", err)
	}
	return members, nil
}
