package repositories

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a specific loan by its unique identifier.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoansByAccount retrieves all loans for an account.
	ListLoansByAccount(ctx context.Context, accountNo string) ([]domain.Loan, error)

	// ListLoans retrieves loans optionally bounded by [from, to] on the start
	// date, ordered by start date then sequence.
	ListLoans(ctx context.Context, from *time.Time, to *time.Time) ([]domain.Loan, error)

	// ListRecentLoans retrieves the latest loans, most recent first.
	ListRecentLoans(ctx context.Context, limit int) ([]domain.Loan, error)

	// ListLoanMovements retrieves all movements recorded against a loan.
	ListLoanMovements(ctx context.Context, loanID string) ([]domain.LoanMovement, error)

	// SumEMIByLoanIDs returns the total EMI amount received per loan.
	// Loans with no EMI movements are absent from the result map.
	SumEMIByLoanIDs(ctx context.Context, loanIDs []string) (map[string]decimal.Decimal, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoanDisbursement persists a new loan and its disbursal debit
	// movement as one transaction. The member savings balance is untouched.
	SaveLoanDisbursement(ctx context.Context, loan domain.Loan, disbursal domain.CashMovement) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
// This is a facade for clients that need access to all operations
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}

// LoanRepositoryWithTx extends LoanRepositoryFacade with transaction capabilities
type LoanRepositoryWithTx interface {
	LoanRepositoryFacade
	TransactionManager
}
