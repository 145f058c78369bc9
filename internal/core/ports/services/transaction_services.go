package services

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/dto"
)

// TransactionWriterSvc defines write operations for cash movements
type TransactionWriterSvc interface {
	// RecordCredit persists an incoming cash movement. Depending on the
	// category label this also credits the member's savings balance, mirrors
	// the movement into the passbook, or books an EMI/interest/fine against
	// the matching loan.
	RecordCredit(ctx context.Context, req dto.CreateCreditRequest, creatorUserID string) (*domain.CashMovement, error)

	// RecordDebit persists an outgoing cash movement, debits the member's
	// savings balance, and mirrors "Member Closed" debits into the passbook.
	RecordDebit(ctx context.Context, req dto.CreateDebitRequest, creatorUserID string) (*domain.CashMovement, error)

	// RecordMiscExpense persists a miscellaneous expense.
	RecordMiscExpense(ctx context.Context, req dto.CreateMiscExpenseRequest, creatorUserID string) (*domain.MiscExpense, error)
}

// TransactionReaderSvc defines read operations for cash movements
type TransactionReaderSvc interface {
	// ListCredits retrieves credit movements, optionally date-bounded.
	ListCredits(ctx context.Context, params dto.DateRangeParams) ([]domain.CashMovement, error)

	// ListDebits retrieves debit movements, optionally date-bounded.
	ListDebits(ctx context.Context, params dto.DateRangeParams) ([]domain.CashMovement, error)

	// ListMiscExpenses retrieves miscellaneous expenses, optionally date-bounded.
	ListMiscExpenses(ctx context.Context, params dto.DateRangeParams) ([]domain.MiscExpense, error)
}

// TransactionSvcFacade combines all cash movement service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReaderSvc
}
