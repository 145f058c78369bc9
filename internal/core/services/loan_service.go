package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
	"github.com/gurukosh/guru_finance_app/internal/utils/accounting"
	"github.com/gurukosh/guru_finance_app/internal/utils/idgen"
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
)

var (
	ErrLoanNotFound        = errors.New("loan not found")
	ErrInvalidLoanCategory = errors.New("invalid loan category")
	ErrActiveLoanExists    = errors.New("member already has an active loan of this category")
)

// loanService provides loan sanction and statement operations.
type loanService struct {
	memberRepo portsrepo.MemberReader
	loanRepo   portsrepo.LoanRepositoryFacade
	idgen      *idgen.Generator
	notifier   portssvc.Notifier
}

// NewLoanService creates a new LoanService.
func NewLoanService(memberRepo portsrepo.MemberReader, loanRepo portsrepo.LoanRepositoryFacade, gen *idgen.Generator, notifier portssvc.Notifier) portssvc.LoanSvcFacade {
	return &loanService{
		memberRepo: memberRepo,
		loanRepo:   loanRepo,
		idgen:      gen,
		notifier:   notifier,
	}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// CreateLoan sanctions a new loan as one unit of work: the loan record plus
// its "Loan Given" debit movement. A member may hold only one loan with
// outstanding principal per category; the violation names the blocking loan.
// The disbursal does not touch the SB balance.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, creatorUserID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category := domain.LoanCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrInvalidLoanCategory, req.Category)
	}

	principal := money.Round(req.Principal)
	if !principal.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	member, err := s.memberRepo.FindMemberByAccountNo(ctx, req.AccountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s: %w", ErrMemberNotFound, req.AccountNo, err)
		}
		return nil, fmt.Errorf("failed to find member %s: %w", req.AccountNo, err)
	}

	if err := s.checkNoActiveLoan(ctx, member.AccountNo, category); err != nil {
		return nil, err
	}

	startDate, err := resolveDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date: %s", apperrors.ErrValidation, req.EndDate)
	}
	resolvedEnd := deriveLoanEndDate(category, startDate, req.Installments, endDate)

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	loan := domain.Loan{
		LoanID:       s.idgen.NextID(idgen.PrefixLoan),
		AccountNo:    member.AccountNo,
		MemberName:   member.Name,
		Category:     category,
		Principal:    principal,
		InterestRate: req.InterestRate,
		Installments: req.Installments,
		EMIAmount:    money.Round(req.EMIAmount),
		StartDate:    startDate,
		EndDate:      resolvedEnd,
		Remarks:      req.Remarks,
		AuditFields:  audit,
	}
	disbursal := domain.CashMovement{
		TransactionID: s.idgen.NextID(idgen.PrefixDebit),
		Direction:     domain.DirectionDebit,
		AccountNo:     member.AccountNo,
		Name:          member.Name,
		Category:      domain.CategoryLoanGiven,
		Amount:        principal,
		Date:          startDate,
		Mode:          "Cash",
		Remarks:       fmt.Sprintf("Loan Given - %s", loan.LoanID),
		AuditFields:   audit,
	}

	if err := s.loanRepo.SaveLoanDisbursement(ctx, loan, disbursal); err != nil {
		logger.Error("Failed to save loan disbursement", slog.String("error", err.Error()), slog.String("loan_id", loan.LoanID))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	logger.Info("Loan sanctioned",
		slog.String("loan_id", loan.LoanID),
		slog.String("account_no", member.AccountNo),
		slog.String("category", string(category)),
		slog.String("principal", principal.String()))
	if s.notifier != nil && member.Mobile != "" {
		s.notifier.NotifySMS(ctx, member.Mobile, fmt.Sprintf(
			"Shri Guru Finance: Rs %s LOAN SANCTIONED for A/c %s on %s. Loan ID: %s.",
			principal.StringFixed(money.Scale), member.AccountNo, startDate.Format(dto.DateLayout), loan.LoanID))
	}
	return &loan, nil
}

// checkNoActiveLoan rejects the sanction while any loan of the same category
// still has outstanding principal.
func (s *loanService) checkNoActiveLoan(ctx context.Context, accountNo string, category domain.LoanCategory) error {
	loans, err := s.loanRepo.ListLoansByAccount(ctx, accountNo)
	if err != nil {
		return fmt.Errorf("failed to list loans for %s: %w", accountNo, err)
	}

	sameCategory := make([]domain.Loan, 0, len(loans))
	loanIDs := make([]string, 0, len(loans))
	for _, l := range loans {
		if l.Category == category {
			sameCategory = append(sameCategory, l)
			loanIDs = append(loanIDs, l.LoanID)
		}
	}
	if len(sameCategory) == 0 {
		return nil
	}

	emiTotals, err := s.loanRepo.SumEMIByLoanIDs(ctx, loanIDs)
	if err != nil {
		return fmt.Errorf("failed to sum EMI payments for %s: %w", accountNo, err)
	}
	for _, old := range sameCategory {
		if accounting.Outstanding(old.Principal, emiTotals[old.LoanID]).IsPositive() {
			return fmt.Errorf("%w: %s (blocking loan %s)", apperrors.ErrConflict, ErrActiveLoanExists, old.LoanID)
		}
	}
	return nil
}

// deriveLoanEndDate falls back to the installment count when no explicit end
// date is given: weekly loans run one week per installment, everything else
// thirty days per installment.
func deriveLoanEndDate(category domain.LoanCategory, startDate time.Time, installments int, explicit *time.Time) time.Time {
	if explicit != nil {
		return *explicit
	}
	if category == domain.LoanWeekly {
		return startDate.AddDate(0, 0, 7*installments)
	}
	return startDate.AddDate(0, 0, 30*installments)
}

// GetLoanByID retrieves a specific loan by its identifier.
func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoanNotFound, loanID, err)
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	return loan, nil
}

// GetLoanOutstanding computes max(0, principal - sum of EMI payments).
func (s *loanService) GetLoanOutstanding(ctx context.Context, loanID string) (*dto.LoanOutstandingResponse, error) {
	loan, err := s.GetLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	emiTotals, err := s.loanRepo.SumEMIByLoanIDs(ctx, []string{loanID})
	if err != nil {
		return nil, fmt.Errorf("failed to sum EMI payments for loan %s: %w", loanID, err)
	}
	totalEMI := money.Round(emiTotals[loanID])
	return &dto.LoanOutstandingResponse{
		LoanID:      loanID,
		Principal:   money.Round(loan.Principal),
		TotalEMI:    totalEMI,
		Outstanding: accounting.Outstanding(loan.Principal, totalEMI),
	}, nil
}

// GetLoanStatement replays a loan's history chronologically and returns the
// events most recent first.
func (s *loanService) GetLoanStatement(ctx context.Context, loanID string) (*domain.LoanStatement, error) {
	loan, err := s.GetLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	movements, err := s.loanRepo.ListLoanMovements(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for loan %s: %w", loanID, err)
	}
	statement := accounting.ReplayLoanStatement(*loan, movements)
	return &statement, nil
}

// ListLoans retrieves loans, optionally date-bounded on the start date.
func (s *loanService) ListLoans(ctx context.Context, params dto.DateRangeParams) ([]domain.Loan, error) {
	from, to, err := params.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	loans, err := s.loanRepo.ListLoans(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

// ListRecentLoans retrieves the latest sanctioned loans, most recent first.
func (s *loanService) ListRecentLoans(ctx context.Context, limit int) ([]domain.Loan, error) {
	if limit <= 0 {
		limit = 10
	}
	loans, err := s.loanRepo.ListRecentLoans(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent loans: %w", err)
	}
	return loans, nil
}
