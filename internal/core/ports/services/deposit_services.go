package services

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/dto"
)

// DepositReaderSvc defines read operations for fixed and recurring deposits
type DepositReaderSvc interface {
	// ListFixedDeposits retrieves fixed deposits, optionally date-bounded.
	ListFixedDeposits(ctx context.Context, params dto.DateRangeParams) ([]domain.FixedDeposit, error)

	// ListRecurringDeposits retrieves recurring deposits, optionally date-bounded.
	ListRecurringDeposits(ctx context.Context, params dto.DateRangeParams) ([]domain.RecurringDeposit, error)

	// ListRDInstallments retrieves the installments recorded against a recurring deposit.
	ListRDInstallments(ctx context.Context, rdID string) ([]domain.RDInstallment, error)
}

// DepositWriterSvc defines write operations for fixed and recurring deposits
type DepositWriterSvc interface {
	// OpenFixedDeposit opens a fixed deposit; maturity date and amount are
	// derived from the period and rate.
	OpenFixedDeposit(ctx context.Context, req dto.CreateFixedDepositRequest, creatorUserID string) (*domain.FixedDeposit, error)

	// CloseFixedDeposit closes a fixed deposit, emitting a principal payout
	// debit plus an interest payout debit when the paid amount exceeds the
	// principal; both debit the member's savings balance, neither reaches
	// the passbook.
	CloseFixedDeposit(ctx context.Context, fdID string, req dto.CloseFixedDepositRequest, requestingUserID string) (*domain.FixedDeposit, error)

	// OpenRecurringDeposit opens a recurring deposit.
	OpenRecurringDeposit(ctx context.Context, req dto.CreateRecurringDepositRequest, creatorUserID string) (*domain.RecurringDeposit, error)

	// RecordRDInstallment records the next numbered installment against a
	// recurring deposit. Amount falls back to the deposit's installment amount.
	RecordRDInstallment(ctx context.Context, rdID string, req dto.CreateRDInstallmentRequest, creatorUserID string) (*domain.RDInstallment, error)

	// CloseRecurringDeposit closes a recurring deposit the same way a fixed
	// deposit is closed, with principal = installment amount x period months.
	CloseRecurringDeposit(ctx context.Context, rdID string, req dto.CloseRecurringDepositRequest, requestingUserID string) (*domain.RecurringDeposit, error)
}

// DepositSvcFacade combines all deposit-related service interfaces
// This is a facade for clients that need access to all operations
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositWriterSvc
}
