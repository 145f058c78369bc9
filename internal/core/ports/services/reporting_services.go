package services

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
)

// ReportingService defines the read-only reporting operations
type ReportingService interface {
	// GetAccountStatement replays a member's passbook entries into a
	// running-balance statement.
	GetAccountStatement(ctx context.Context, accountNo string) (*domain.AccountStatement, error)

	// GetMonthlyReport buckets one calendar month's movements and misc
	// expenses into weekly windows per category head.
	GetMonthlyReport(ctx context.Context, month int, year int) (*domain.MonthlyReport, error)

	// GetDashboardTotals retrieves the whole-book counters.
	GetDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error)
}
