package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
	"github.com/gurukosh/guru_finance_app/internal/utils/accounting"
)

var ErrInvalidReportMonth = errors.New("report month must be between 1 and 12")

// reportingService provides the read-only replays and aggregations. All of
// its operations are idempotent over the stored append-only records.
type reportingService struct {
	memberRepo portsrepo.MemberReader
	ledgerRepo portsrepo.LedgerRepositoryFacade
	miscRepo   portsrepo.MiscExpenseReader
	reportRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(memberRepo portsrepo.MemberReader, ledgerRepo portsrepo.LedgerRepositoryFacade, miscRepo portsrepo.MiscExpenseReader, reportRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
		miscRepo:   miscRepo,
		reportRepo: reportRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetAccountStatement replays a member's passbook entries into a
// running-balance statement starting at the opening balance.
func (s *reportingService) GetAccountStatement(ctx context.Context, accountNo string) (*domain.AccountStatement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.memberRepo.FindMemberByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s: %w", ErrMemberNotFound, accountNo, err)
		}
		return nil, fmt.Errorf("failed to find member %s: %w", accountNo, err)
	}

	entries, err := s.ledgerRepo.ListPassbookEntries(ctx, accountNo)
	if err != nil {
		logger.Error("Failed to list passbook entries", slog.String("error", err.Error()), slog.String("account_no", accountNo))
		return nil, fmt.Errorf("failed to list passbook entries for %s: %w", accountNo, err)
	}

	statement := accounting.ReplayAccountStatement(*member, entries)
	logger.Debug("Account statement replayed", slog.String("account_no", accountNo), slog.Int("rows", len(statement.Rows)))
	return &statement, nil
}

// GetMonthlyReport buckets one calendar month's cash movements and misc
// expenses into the fixed weekly windows per category head.
func (s *reportingService) GetMonthlyReport(ctx context.Context, month int, year int) (*domain.MonthlyReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %w: %d", apperrors.ErrValidation, ErrInvalidReportMonth, month)
	}

	start, end := accounting.MonthWindow(month, year)
	debits, err := s.ledgerRepo.ListCashMovements(ctx, domain.DirectionDebit, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to list debits for report: %w", err)
	}
	credits, err := s.ledgerRepo.ListCashMovements(ctx, domain.DirectionCredit, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits for report: %w", err)
	}
	expenses, err := s.miscRepo.ListMiscExpenses(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to list misc expenses for report: %w", err)
	}

	report := accounting.BuildMonthlyReport(month, year, debits, credits, expenses)
	logger.Info("Monthly report built",
		slog.Int("month", month), slog.Int("year", year),
		slog.Int("debits", len(debits)), slog.Int("credits", len(credits)), slog.Int("expenses", len(expenses)))
	return &report, nil
}

// GetDashboardTotals retrieves the whole-book counters.
func (s *reportingService) GetDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error) {
	totals, err := s.reportRepo.GetDashboardTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard totals: %w", err)
	}
	return totals, nil
}
