package repositories

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for cash movement data
type LedgerReader interface {
	// FindCashMovementByID retrieves a specific cash movement by its transaction identifier.
	FindCashMovementByID(ctx context.Context, transactionID string) (*domain.CashMovement, error)

	// ListCashMovements retrieves cash movements for one direction, optionally
	// bounded by [from, to] on the movement date, ordered by date then sequence.
	ListCashMovements(ctx context.Context, direction domain.MovementDirection, from *time.Time, to *time.Time) ([]domain.CashMovement, error)

	// ListRecentCashMovements retrieves the latest movements for one direction, most recent first.
	ListRecentCashMovements(ctx context.Context, direction domain.MovementDirection, limit int) ([]domain.CashMovement, error)

	// SumCashMovements returns the total amount recorded for one direction.
	SumCashMovements(ctx context.Context, direction domain.MovementDirection) (decimal.Decimal, error)
}

// PassbookReader defines read operations for passbook entries
type PassbookReader interface {
	// ListPassbookEntries retrieves all passbook entries for an account,
	// ordered by date then insertion sequence.
	ListPassbookEntries(ctx context.Context, accountNo string) ([]domain.PassbookEntry, error)
}

// LedgerWriter defines write operations for cash movement data
type LedgerWriter interface {
	// SaveMovement persists a cash movement and its side effects as one
	// transaction: the movement insert, the member balance delta (signed,
	// skipped when zero; the member row is locked for the duration), the
	// optional passbook mirror and the optional loan movement.
	SaveMovement(ctx context.Context, movement domain.CashMovement, balanceDelta decimal.Decimal, mirror *domain.PassbookEntry, loanMovement *domain.LoanMovement) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
// This is a facade for clients that need access to all operations
type LedgerRepositoryFacade interface {
	LedgerReader
	PassbookReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
