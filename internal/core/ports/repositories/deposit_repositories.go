package repositories

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositReader defines read operations for fixed and recurring deposit data
type DepositReader interface {
	// FindFixedDepositByID retrieves a fixed deposit by its unique identifier.
	FindFixedDepositByID(ctx context.Context, fdID string) (*domain.FixedDeposit, error)

	// ListFixedDeposits retrieves fixed deposits optionally bounded by
	// [from, to] on the start date, latest first.
	ListFixedDeposits(ctx context.Context, from *time.Time, to *time.Time) ([]domain.FixedDeposit, error)

	// FindRecurringDepositByID retrieves a recurring deposit by its unique identifier.
	FindRecurringDepositByID(ctx context.Context, rdID string) (*domain.RecurringDeposit, error)

	// ListRecurringDeposits retrieves recurring deposits optionally bounded by
	// [from, to] on the start date, latest first.
	ListRecurringDeposits(ctx context.Context, from *time.Time, to *time.Time) ([]domain.RecurringDeposit, error)

	// ListRDInstallments retrieves the installments recorded against a
	// recurring deposit, ordered by installment number.
	ListRDInstallments(ctx context.Context, rdID string) ([]domain.RDInstallment, error)

	// NextRDInstallmentNo returns the next installment number for a recurring deposit.
	NextRDInstallmentNo(ctx context.Context, rdID string) (int, error)

	// CountOpenDepositsByAccount returns the number of open fixed and
	// recurring deposits for an account.
	CountOpenDepositsByAccount(ctx context.Context, accountNo string) (fdCount int, rdCount int, err error)
}

// DepositWriter defines write operations for fixed and recurring deposit data
type DepositWriter interface {
	// SaveFixedDeposit persists a new fixed deposit.
	SaveFixedDeposit(ctx context.Context, fd domain.FixedDeposit) error

	// CloseFixedDeposit marks a fixed deposit closed and persists its payout
	// debit movements and the member balance delta as one transaction.
	CloseFixedDeposit(ctx context.Context, fdID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error

	// SaveRecurringDeposit persists a new recurring deposit.
	SaveRecurringDeposit(ctx context.Context, rd domain.RecurringDeposit) error

	// SaveRDInstallment persists a recurring deposit installment.
	SaveRDInstallment(ctx context.Context, installment domain.RDInstallment) error

	// CloseRecurringDeposit marks a recurring deposit closed and persists its
	// payout debit movements and the member balance delta as one transaction.
	CloseRecurringDeposit(ctx context.Context, rdID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error
}

// DepositRepositoryFacade combines all deposit-related repository interfaces
// This is a facade for clients that need access to all operations
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}

// DepositRepositoryWithTx extends DepositRepositoryFacade with transaction capabilities
type DepositRepositoryWithTx interface {
	DepositRepositoryFacade
	TransactionManager
}
