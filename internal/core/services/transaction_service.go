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
	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
)

// transactionService records cash movements and their ledger side effects.
type transactionService struct {
	memberRepo portsrepo.MemberReader
	ledgerRepo portsrepo.LedgerRepositoryFacade
	loanRepo   portsrepo.LoanReader
	miscRepo   portsrepo.MiscExpenseRepositoryFacade
	idgen      *idgen.Generator
	notifier   portssvc.Notifier
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(memberRepo portsrepo.MemberReader, ledgerRepo portsrepo.LedgerRepositoryFacade, loanRepo portsrepo.LoanReader, miscRepo portsrepo.MiscExpenseRepositoryFacade, gen *idgen.Generator, notifier portssvc.Notifier) portssvc.TransactionSvcFacade {
	return &transactionService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
		loanRepo:   loanRepo,
		miscRepo:   miscRepo,
		idgen:      gen,
		notifier:   notifier,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// RecordCredit persists an incoming cash movement as one unit of work.
// The category label decides the side effects: "Member Received" and
// "SB Received" credit the SB balance, "Member Received" alone is mirrored
// into the passbook, EMI/interest/fine labels book a loan movement against
// the latest matching loan.
func (s *transactionService) RecordCredit(ctx context.Context, req dto.CreateCreditRequest, creatorUserID string) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, date, amount, err := s.resolveMovementInputs(ctx, req.AccountNo, req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movement := domain.CashMovement{
		TransactionID: s.idgen.NextID(idgen.PrefixCredit),
		Direction:     domain.DirectionCredit,
		AccountNo:     member.AccountNo,
		Name:          member.Name,
		Category:      req.Category,
		Amount:        amount,
		Date:          date,
		Mode:          req.Mode,
		Remarks:       req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	balanceDelta := decimal.Zero
	if accounting.CreditAffectsSBBalance(req.Category) {
		balanceDelta = amount
	}

	var mirror *domain.PassbookEntry
	if accounting.MirrorCreditToPassbook(req.Category) {
		mirror = &domain.PassbookEntry{
			AccountNo:   member.AccountNo,
			Date:        date,
			Direction:   domain.DirectionCredit,
			Amount:      amount,
			Description: req.Category,
		}
	}

	var loanMovement *domain.LoanMovement
	if rule, ok := accounting.ClassifyCredit(req.Category); ok {
		loans, err := s.loanRepo.ListLoansByAccount(ctx, member.AccountNo)
		if err != nil {
			logger.Error("Failed to list loans for credit classification", slog.String("error", err.Error()), slog.String("account_no", member.AccountNo))
			return nil, fmt.Errorf("failed to list loans for %s: %w", member.AccountNo, err)
		}
		if loan := accounting.SelectLoanForPayment(loans, rule); loan != nil {
			remarks := req.Remarks
			if remarks == "" {
				remarks = req.Category
			}
			loanMovement = &domain.LoanMovement{
				LoanID:  loan.LoanID,
				Kind:    rule.Kind,
				Date:    date,
				Amount:  amount,
				Remarks: remarks,
			}
		} else {
			// No matching loan: keep the cash movement as a plain ledger entry.
			logger.Warn("No loan matched classified credit",
				slog.String("account_no", member.AccountNo),
				slog.String("category", req.Category),
				slog.String("amount", amount.String()))
		}
	}

	if err := s.ledgerRepo.SaveMovement(ctx, movement, balanceDelta, mirror, loanMovement); err != nil {
		logger.Error("Failed to save credit movement", slog.String("error", err.Error()), slog.String("transaction_id", movement.TransactionID))
		return nil, fmt.Errorf("failed to save credit: %w", err)
	}

	logger.Info("Credit recorded",
		slog.String("transaction_id", movement.TransactionID),
		slog.String("account_no", member.AccountNo),
		slog.String("category", req.Category),
		slog.Bool("loan_movement", loanMovement != nil))
	s.notifyMovement(ctx, member, &movement)
	return &movement, nil
}

// RecordDebit persists an outgoing cash movement as one unit of work. Every
// debit reduces the SB balance; only "Member Closed" reaches the passbook.
func (s *transactionService) RecordDebit(ctx context.Context, req dto.CreateDebitRequest, creatorUserID string) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, date, amount, err := s.resolveMovementInputs(ctx, req.AccountNo, req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movement := domain.CashMovement{
		TransactionID: s.idgen.NextID(idgen.PrefixDebit),
		Direction:     domain.DirectionDebit,
		AccountNo:     member.AccountNo,
		Name:          member.Name,
		Category:      req.Category,
		Amount:        amount,
		Date:          date,
		Mode:          req.Mode,
		Remarks:       req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var mirror *domain.PassbookEntry
	if accounting.MirrorDebitToPassbook(req.Category) {
		mirror = &domain.PassbookEntry{
			AccountNo:   member.AccountNo,
			Date:        date,
			Direction:   domain.DirectionDebit,
			Amount:      amount,
			Description: req.Category,
		}
	}

	if err := s.ledgerRepo.SaveMovement(ctx, movement, amount.Neg(), mirror, nil); err != nil {
		logger.Error("Failed to save debit movement", slog.String("error", err.Error()), slog.String("transaction_id", movement.TransactionID))
		return nil, fmt.Errorf("failed to save debit: %w", err)
	}

	logger.Info("Debit recorded",
		slog.String("transaction_id", movement.TransactionID),
		slog.String("account_no", member.AccountNo),
		slog.String("category", req.Category))
	s.notifyMovement(ctx, member, &movement)
	return &movement, nil
}

// RecordMiscExpense persists a miscellaneous expense. Misc expenses sit
// outside the member ledger; they surface again in the monthly report under
// the "Miscellaneous" debit head.
func (s *transactionService) RecordMiscExpense(ctx context.Context, req dto.CreateMiscExpenseRequest, creatorUserID string) (*domain.MiscExpense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := money.Round(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	date, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.MiscExpense{
		MiscID:  s.idgen.NextID(idgen.PrefixMisc),
		Date:    date,
		Head:    req.Head,
		Amount:  amount,
		Remarks: req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.miscRepo.SaveMiscExpense(ctx, expense); err != nil {
		logger.Error("Failed to save misc expense", slog.String("error", err.Error()), slog.String("misc_id", expense.MiscID))
		return nil, fmt.Errorf("failed to save misc expense: %w", err)
	}

	logger.Info("Misc expense recorded", slog.String("misc_id", expense.MiscID), slog.String("head", req.Head))
	return &expense, nil
}

// ListCredits retrieves credit movements, optionally date-bounded.
func (s *transactionService) ListCredits(ctx context.Context, params dto.DateRangeParams) ([]domain.CashMovement, error) {
	return s.listMovements(ctx, domain.DirectionCredit, params)
}

// ListDebits retrieves debit movements, optionally date-bounded.
func (s *transactionService) ListDebits(ctx context.Context, params dto.DateRangeParams) ([]domain.CashMovement, error) {
	return s.listMovements(ctx, domain.DirectionDebit, params)
}

func (s *transactionService) listMovements(ctx context.Context, direction domain.MovementDirection, params dto.DateRangeParams) ([]domain.CashMovement, error) {
	from, to, err := params.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	movements, err := s.ledgerRepo.ListCashMovements(ctx, direction, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s movements: %w", direction, err)
	}
	return movements, nil
}

// ListMiscExpenses retrieves miscellaneous expenses, optionally date-bounded.
func (s *transactionService) ListMiscExpenses(ctx context.Context, params dto.DateRangeParams) ([]domain.MiscExpense, error) {
	from, to, err := params.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	expenses, err := s.miscRepo.ListMiscExpenses(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list misc expenses: %w", err)
	}
	return expenses, nil
}

// resolveMovementInputs validates the shared credit/debit inputs: the member
// must exist, the amount must be positive, the date defaults to today.
func (s *transactionService) resolveMovementInputs(ctx context.Context, accountNo string, dateStr string, rawAmount decimal.Decimal) (*domain.Member, time.Time, decimal.Decimal, error) {
	amount := money.Round(rawAmount)
	if !amount.IsPositive() {
		return nil, time.Time{}, decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	member, err := s.memberRepo.FindMemberByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, time.Time{}, decimal.Zero, fmt.Errorf("%w: account %s: %w", ErrMemberNotFound, accountNo, err)
		}
		return nil, time.Time{}, decimal.Zero, fmt.Errorf("failed to find member %s: %w", accountNo, err)
	}

	date, err := resolveDate(dateStr)
	if err != nil {
		return nil, time.Time{}, decimal.Zero, err
	}
	return member, date, amount, nil
}

// resolveDate parses a wire date, defaulting to today's date.
func resolveDate(s string) (time.Time, error) {
	parsed, err := dto.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date: %s", apperrors.ErrValidation, s)
	}
	if parsed == nil {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	return *parsed, nil
}

// notifyMovement sends the best-effort SMS for a recorded movement.
func (s *transactionService) notifyMovement(ctx context.Context, member *domain.Member, movement *domain.CashMovement) {
	if s.notifier == nil || member.Mobile == "" {
		return
	}
	verb := "CREDITED to"
	if movement.Direction == domain.DirectionDebit {
		verb = "DEBITED from"
	}
	s.notifier.NotifySMS(ctx, member.Mobile, fmt.Sprintf(
		"Shri Guru Finance: Rs %s %s A/c %s on %s for %s.",
		movement.Amount.StringFixed(money.Scale), verb, member.AccountNo,
		movement.Date.Format(dto.DateLayout), movement.Category))
}
