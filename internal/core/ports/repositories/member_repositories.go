package repositories

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByAccountNo retrieves a member by account number.
	FindMemberByAccountNo(ctx context.Context, accountNo string) (*domain.Member, error)

	// SearchMembers retrieves members whose account number, mobile or name matches the query.
	SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error)

	// ListMembers retrieves a paginated list of members ordered by account number.
	ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error)

	// MaxAccountNo returns the highest numeric account number currently assigned, or 0 when none exist.
	MaxAccountNo(ctx context.Context) (int64, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember persists a new member together with its optional opening
	// cash movement and passbook mirror, as one transaction.
	SaveMember(ctx context.Context, member domain.Member, opening *domain.CashMovement, mirror *domain.PassbookEntry) error

	// UpdateMemberContact updates a member's mobile and address.
	UpdateMemberContact(ctx context.Context, accountNo string, mobile string, address string, updatedBy string, now time.Time) error
}

// MemberTransactionSupport defines member operations that run inside a storage transaction
type MemberTransactionSupport interface {
	// FindMemberForUpdate selects a member and locks the row for update within a transaction.
	FindMemberForUpdate(ctx context.Context, tx pgx.Tx, accountNo string) (*domain.Member, error)

	// UpdateMemberBalanceInTx writes a member's new savings balance within a given transaction.
	UpdateMemberBalanceInTx(ctx context.Context, tx pgx.Tx, accountNo string, newBalance decimal.Decimal, updatedBy string, now time.Time) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
// This is a facade for clients that need access to all operations
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
	MemberTransactionSupport
}

// MemberRepositoryWithTx extends MemberRepositoryFacade with transaction capabilities
type MemberRepositoryWithTx interface {
	MemberRepositoryFacade
	TransactionManager
}
