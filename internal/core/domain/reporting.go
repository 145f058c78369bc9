package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportWeeks is the number of fixed weekly buckets in a monthly report.
// Day-of-month boundaries: 1-10, 11-17, 18-24, 25-end.
const ReportWeeks = 4

// ReportRow is one category head with its four weekly buckets and row total.
type ReportRow struct {
	Head  string                       `json:"head"`
	Weeks [ReportWeeks]decimal.Decimal `json:"weeks"`
	Total decimal.Decimal              `json:"total"`
}

// MonthlyReport buckets a calendar month's cash movements into weekly
// windows per category head. Movements whose category is not one of the
// known heads are excluded.
type MonthlyReport struct {
	Month              int                          `json:"month"`
	Year               int                          `json:"year"`
	StartDate          time.Time                    `json:"startDate"`
	EndDate            time.Time                    `json:"endDate"`
	DebitRows          []ReportRow                  `json:"debitRows"`
	CreditRows         []ReportRow                  `json:"creditRows"`
	WeeklyDebitTotals  [ReportWeeks]decimal.Decimal `json:"weeklyDebitTotals"`
	WeeklyCreditTotals [ReportWeeks]decimal.Decimal `json:"weeklyCreditTotals"`
	TotalDebit         decimal.Decimal              `json:"totalDebit"`
	TotalCredit        decimal.Decimal              `json:"totalCredit"`
	NetProfit          decimal.Decimal              `json:"netProfit"` // TotalCredit - TotalDebit
}

// DashboardTotals summarizes the whole book for the landing page.
type DashboardTotals struct {
	MemberCount int             `json:"memberCount"`
	LoanCount   int             `json:"loanCount"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
}
