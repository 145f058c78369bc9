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
	"github.com/gurukosh/guru_finance_app/internal/utils/idgen"
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

var (
	ErrDepositNotFound      = errors.New("deposit not found")
	ErrDepositAlreadyClosed = errors.New("deposit is already closed")
)

// depositService provides fixed and recurring deposit operations.
type depositService struct {
	memberRepo  portsrepo.MemberReader
	depositRepo portsrepo.DepositRepositoryFacade
	idgen       *idgen.Generator
	notifier    portssvc.Notifier
}

// NewDepositService creates a new DepositService.
func NewDepositService(memberRepo portsrepo.MemberReader, depositRepo portsrepo.DepositRepositoryFacade, gen *idgen.Generator, notifier portssvc.Notifier) portssvc.DepositSvcFacade {
	return &depositService{
		memberRepo:  memberRepo,
		depositRepo: depositRepo,
		idgen:       gen,
		notifier:    notifier,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

// maturityAmount computes principal * (1 + rate/100 * months/12).
func maturityAmount(principal, rate decimal.Decimal, months int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(
		rate.Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(1200)))
	return money.Round(principal.Mul(factor))
}

// maturityDate counts thirty days per month of the deposit period.
func maturityDate(start time.Time, months int) time.Time {
	return start.AddDate(0, 0, 30*months)
}

// OpenFixedDeposit opens a fixed deposit with a derived maturity date and amount.
func (s *depositService) OpenFixedDeposit(ctx context.Context, req dto.CreateFixedDepositRequest, creatorUserID string) (*domain.FixedDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := money.Round(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	member, err := s.findMember(ctx, req.AccountNo)
	if err != nil {
		return nil, err
	}
	startDate, err := resolveDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fd := domain.FixedDeposit{
		FDID:           s.idgen.NextID(idgen.PrefixFD),
		AccountNo:      member.AccountNo,
		MemberName:     member.Name,
		StartDate:      startDate,
		Amount:         amount,
		InterestRate:   req.InterestRate,
		PeriodMonths:   req.PeriodMonths,
		MaturityDate:   maturityDate(startDate, req.PeriodMonths),
		MaturityAmount: maturityAmount(amount, req.InterestRate, req.PeriodMonths),
		Remarks:        req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.depositRepo.SaveFixedDeposit(ctx, fd); err != nil {
		logger.Error("Failed to save fixed deposit", slog.String("error", err.Error()), slog.String("fd_id", fd.FDID))
		return nil, fmt.Errorf("failed to save fixed deposit: %w", err)
	}

	logger.Info("Fixed deposit opened", slog.String("fd_id", fd.FDID), slog.String("account_no", member.AccountNo))
	return &fd, nil
}

// CloseFixedDeposit closes a fixed deposit as one unit of work: a principal
// payout debit, an interest payout debit when the paid amount exceeds the
// principal, and the SB balance reduced by the full payout. Nothing reaches
// the passbook.
func (s *depositService) CloseFixedDeposit(ctx context.Context, fdID string, req dto.CloseFixedDepositRequest, requestingUserID string) (*domain.FixedDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fd, err := s.depositRepo.FindFixedDepositByID(ctx, fdID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: FD %s: %w", ErrDepositNotFound, fdID, err)
		}
		return nil, fmt.Errorf("failed to find FD %s: %w", fdID, err)
	}
	if fd.IsClosed {
		return nil, fmt.Errorf("%w: FD %s: %w", apperrors.ErrConflict, fdID, ErrDepositAlreadyClosed)
	}

	closeDate, err := resolveDate(req.CloseDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payouts, delta := s.payoutMovements(fd.AccountNo, fd.MemberName, fd.Amount, money.Round(req.AmountPaid), closeDate,
		domain.CategoryFDClose, fmt.Sprintf("FD Close %s", fd.FDID),
		domain.CategoryFDInterest, fmt.Sprintf("FD Interest Close %s", fd.FDID),
		requestingUserID, now)

	if err := s.depositRepo.CloseFixedDeposit(ctx, fdID, payouts, delta, requestingUserID, now); err != nil {
		logger.Error("Failed to close fixed deposit", slog.String("error", err.Error()), slog.String("fd_id", fdID))
		return nil, fmt.Errorf("failed to close FD %s: %w", fdID, err)
	}

	fd.IsClosed = true
	fd.LastUpdatedAt = now
	fd.LastUpdatedBy = requestingUserID
	logger.Info("Fixed deposit closed", slog.String("fd_id", fdID), slog.String("payout", delta.Neg().String()))
	return fd, nil
}

// OpenRecurringDeposit opens a recurring deposit. The maturity amount is
// computed over the full installment schedule.
func (s *depositService) OpenRecurringDeposit(ctx context.Context, req dto.CreateRecurringDepositRequest, creatorUserID string) (*domain.RecurringDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	installment := money.Round(req.InstallmentAmount)
	if !installment.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	member, err := s.findMember(ctx, req.AccountNo)
	if err != nil {
		return nil, err
	}
	startDate, err := resolveDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	principal := installment.Mul(decimal.NewFromInt(int64(req.PeriodMonths)))
	now := time.Now().UTC()
	rd := domain.RecurringDeposit{
		RDID:              s.idgen.NextID(idgen.PrefixRD),
		AccountNo:         member.AccountNo,
		MemberName:        member.Name,
		StartDate:         startDate,
		InstallmentAmount: installment,
		PeriodMonths:      req.PeriodMonths,
		InterestRate:      req.InterestRate,
		MaturityDate:      maturityDate(startDate, req.PeriodMonths),
		MaturityAmount:    maturityAmount(principal, req.InterestRate, req.PeriodMonths),
		Remarks:           req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.depositRepo.SaveRecurringDeposit(ctx, rd); err != nil {
		logger.Error("Failed to save recurring deposit", slog.String("error", err.Error()), slog.String("rd_id", rd.RDID))
		return nil, fmt.Errorf("failed to save recurring deposit: %w", err)
	}

	logger.Info("Recurring deposit opened", slog.String("rd_id", rd.RDID), slog.String("account_no", member.AccountNo))
	return &rd, nil
}

// RecordRDInstallment appends the next numbered installment. The amount
// falls back to the deposit's installment amount when absent.
func (s *depositService) RecordRDInstallment(ctx context.Context, rdID string, req dto.CreateRDInstallmentRequest, creatorUserID string) (*domain.RDInstallment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rd, err := s.findRecurringDeposit(ctx, rdID)
	if err != nil {
		return nil, err
	}
	if rd.IsClosed {
		return nil, fmt.Errorf("%w: RD %s: %w", apperrors.ErrConflict, rdID, ErrDepositAlreadyClosed)
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount := rd.InstallmentAmount
	if req.Amount != nil {
		amount = money.Round(*req.Amount)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	nextNo, err := s.depositRepo.NextRDInstallmentNo(ctx, rdID)
	if err != nil {
		return nil, fmt.Errorf("failed to number installment for RD %s: %w", rdID, err)
	}

	installment := domain.RDInstallment{
		RDID:          rdID,
		Date:          date,
		InstallmentNo: nextNo,
		Amount:        amount,
		Remarks:       req.Remarks,
	}
	if err := s.depositRepo.SaveRDInstallment(ctx, installment); err != nil {
		logger.Error("Failed to save RD installment", slog.String("error", err.Error()), slog.String("rd_id", rdID))
		return nil, fmt.Errorf("failed to save installment for RD %s: %w", rdID, err)
	}

	logger.Info("RD installment recorded", slog.String("rd_id", rdID), slog.Int("installment_no", nextNo))
	return &installment, nil
}

// CloseRecurringDeposit closes a recurring deposit the same way a fixed
// deposit is closed; the principal is installment amount x period months.
func (s *depositService) CloseRecurringDeposit(ctx context.Context, rdID string, req dto.CloseRecurringDepositRequest, requestingUserID string) (*domain.RecurringDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rd, err := s.findRecurringDeposit(ctx, rdID)
	if err != nil {
		return nil, err
	}
	if rd.IsClosed {
		return nil, fmt.Errorf("%w: RD %s: %w", apperrors.ErrConflict, rdID, ErrDepositAlreadyClosed)
	}

	closeDate, err := resolveDate(req.CloseDate)
	if err != nil {
		return nil, err
	}

	principal := money.Round(rd.InstallmentAmount.Mul(decimal.NewFromInt(int64(rd.PeriodMonths))))
	now := time.Now().UTC()
	payouts, delta := s.payoutMovements(rd.AccountNo, rd.MemberName, principal, money.Round(req.AmountPaid), closeDate,
		domain.CategoryRDClose, fmt.Sprintf("RD Close %s", rd.RDID),
		domain.CategoryRDInterest, fmt.Sprintf("RD Interest Close %s", rd.RDID),
		requestingUserID, now)

	if err := s.depositRepo.CloseRecurringDeposit(ctx, rdID, payouts, delta, requestingUserID, now); err != nil {
		logger.Error("Failed to close recurring deposit", slog.String("error", err.Error()), slog.String("rd_id", rdID))
		return nil, fmt.Errorf("failed to close RD %s: %w", rdID, err)
	}

	rd.IsClosed = true
	rd.LastUpdatedAt = now
	rd.LastUpdatedBy = requestingUserID
	logger.Info("Recurring deposit closed", slog.String("rd_id", rdID), slog.String("payout", delta.Neg().String()))
	return rd, nil
}

// payoutMovements builds the close-out debits: principal always, interest
// only when the paid amount exceeds the principal. The returned delta is the
// negative total payout.
func (s *depositService) payoutMovements(accountNo, name string, principal, amountPaid decimal.Decimal, date time.Time,
	principalCategory, principalRemarks, interestCategory, interestRemarks string,
	userID string, now time.Time) ([]domain.CashMovement, decimal.Decimal) {

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	principal = money.Round(principal)
	payouts := []domain.CashMovement{{
		TransactionID: s.idgen.NextID(idgen.PrefixDebit),
		Direction:     domain.DirectionDebit,
		AccountNo:     accountNo,
		Name:          name,
		Category:      principalCategory,
		Amount:        principal,
		Date:          date,
		Mode:          "Cash",
		Remarks:       principalRemarks,
		AuditFields:   audit,
	}}

	interest := amountPaid.Sub(principal)
	if interest.IsPositive() {
		payouts = append(payouts, domain.CashMovement{
			TransactionID: s.idgen.NextID(idgen.PrefixDebit),
			Direction:     domain.DirectionDebit,
			AccountNo:     accountNo,
			Name:          name,
			Category:      interestCategory,
			Amount:        interest,
			Date:          date,
			Mode:          "Cash",
			Remarks:       interestRemarks,
			AuditFields:   audit,
		})
	} else {
		interest = decimal.Zero
	}
	return payouts, principal.Add(interest).Neg()
}

// ListFixedDeposits retrieves fixed deposits, optionally date-bounded.
func (s *depositService) ListFixedDeposits(ctx context.Context, params dto.DateRangeParams) ([]domain.FixedDeposit, error) {
	from, to, err := params.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	fds, err := s.depositRepo.ListFixedDeposits(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed deposits: %w", err)
	}
	return fds, nil
}

// ListRecurringDeposits retrieves recurring deposits, optionally date-bounded.
func (s *depositService) ListRecurringDeposits(ctx context.Context, params dto.DateRangeParams) ([]domain.RecurringDeposit, error) {
	from, to, err := params.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	rds, err := s.depositRepo.ListRecurringDeposits(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring deposits: %w", err)
	}
	return rds, nil
}

// ListRDInstallments retrieves the installments recorded against a recurring deposit.
func (s *depositService) ListRDInstallments(ctx context.Context, rdID string) ([]domain.RDInstallment, error) {
	if _, err := s.findRecurringDeposit(ctx, rdID); err != nil {
		return nil, err
	}
	installments, err := s.depositRepo.ListRDInstallments(ctx, rdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments for RD %s: %w", rdID, err)
	}
	return installments, nil
}

func (s *depositService) findMember(ctx context.Context, accountNo string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s: %w", ErrMemberNotFound, accountNo, err)
		}
		return nil, fmt.Errorf("failed to find member %s: %w", accountNo, err)
	}
	return member, nil
}

func (s *depositService) findRecurringDeposit(ctx context.Context, rdID string) (*domain.RecurringDeposit, error) {
	rd, err := s.depositRepo.FindRecurringDepositByID(ctx, rdID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: RD %s: %w", ErrDepositNotFound, rdID, err)
		}
		return nil, fmt.Errorf("failed to find RD %s: %w", rdID, err)
	}
	return rd, nil
}
