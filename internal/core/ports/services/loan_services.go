package services

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/dto"
)

// LoanReaderSvc defines read operations for loan data
type LoanReaderSvc interface {
	// GetLoanByID retrieves a specific loan by its identifier.
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// GetLoanOutstanding computes the outstanding principal for a loan:
	// max(0, principal - sum of EMI payments).
	GetLoanOutstanding(ctx context.Context, loanID string) (*dto.LoanOutstandingResponse, error)

	// GetLoanStatement replays a loan's full history in chronological order
	// and returns it most recent first.
	GetLoanStatement(ctx context.Context, loanID string) (*domain.LoanStatement, error)

	// ListLoans retrieves loans, optionally date-bounded on the start date.
	ListLoans(ctx context.Context, params dto.DateRangeParams) ([]domain.Loan, error)

	// ListRecentLoans retrieves the latest sanctioned loans, most recent first.
	ListRecentLoans(ctx context.Context, limit int) ([]domain.Loan, error)
}

// LoanWriterSvc defines write operations for loan data
type LoanWriterSvc interface {
	// CreateLoan sanctions a new loan. A member may hold only one active loan
	// per category; a violation reports the blocking loan. The end date is
	// derived from the installment count when absent, and a "Loan Given"
	// debit movement is recorded with the loan.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, creatorUserID string) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
// This is a facade for clients that need access to all operations
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
