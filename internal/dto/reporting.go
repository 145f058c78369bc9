package dto

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReportParams defines query parameters for the monthly report.
type MonthlyReportParams struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2199"`
}

// ReportRowResponse is one head of the monthly report with its week buckets.
type ReportRowResponse struct {
	Head  string            `json:"head"`
	Weeks []decimal.Decimal `json:"weeks"`
	Total decimal.Decimal   `json:"total"`
}

// MonthlyReportResponse defines the data returned for a monthly report.
type MonthlyReportResponse struct {
	Month              int                 `json:"month"`
	Year               int                 `json:"year"`
	StartDate          string              `json:"startDate"`
	EndDate            string              `json:"endDate"`
	DebitRows          []ReportRowResponse `json:"debitRows"`
	CreditRows         []ReportRowResponse `json:"creditRows"`
	WeeklyDebitTotals  []decimal.Decimal   `json:"weeklyDebitTotals"`
	WeeklyCreditTotals []decimal.Decimal   `json:"weeklyCreditTotals"`
	TotalDebit         decimal.Decimal     `json:"totalDebit"`
	TotalCredit        decimal.Decimal     `json:"totalCredit"`
	NetProfit          decimal.Decimal     `json:"netProfit"`
}

// StatementRowResponse is one row of a passbook statement.
type StatementRowResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountStatementResponse defines the passbook replay returned for a member.
type AccountStatementResponse struct {
	AccountNo      string                 `json:"accountNo"`
	MemberName     string                 `json:"memberName"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	Rows           []StatementRowResponse `json:"rows"`
	TotalDebits    decimal.Decimal        `json:"totalDebits"`
	TotalCredits   decimal.Decimal        `json:"totalCredits"`
	ClosingBalance decimal.Decimal        `json:"closingBalance"`
}

// DashboardResponse defines the aggregate counters shown on the dashboard.
type DashboardResponse struct {
	MemberCount int             `json:"memberCount"`
	LoanCount   int             `json:"loanCount"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport to MonthlyReportResponse DTO
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	toRows := func(rows []domain.ReportRow) []ReportRowResponse {
		res := make([]ReportRowResponse, len(rows))
		for i, row := range rows {
			res[i] = ReportRowResponse{
				Head:  row.Head,
				Weeks: row.Weeks[:],
				Total: row.Total,
			}
		}
		return res
	}
	return MonthlyReportResponse{
		Month:              r.Month,
		Year:               r.Year,
		StartDate:          FormatDate(r.StartDate),
		EndDate:            FormatDate(r.EndDate),
		DebitRows:          toRows(r.DebitRows),
		CreditRows:         toRows(r.CreditRows),
		WeeklyDebitTotals:  r.WeeklyDebitTotals[:],
		WeeklyCreditTotals: r.WeeklyCreditTotals[:],
		TotalDebit:         r.TotalDebit,
		TotalCredit:        r.TotalCredit,
		NetProfit:          r.NetProfit,
	}
}

// ToAccountStatementResponse converts a domain.AccountStatement to AccountStatementResponse DTO
func ToAccountStatementResponse(s *domain.AccountStatement) AccountStatementResponse {
	rows := make([]StatementRowResponse, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = StatementRowResponse{
			Date:        FormatDate(row.Date),
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
	}
	return AccountStatementResponse{
		AccountNo:      s.AccountNo,
		MemberName:     s.MemberName,
		OpeningBalance: s.OpeningBalance,
		Rows:           rows,
		TotalDebits:    s.TotalDebits,
		TotalCredits:   s.TotalCredits,
		ClosingBalance: s.ClosingBalance,
	}
}

// ToDashboardResponse converts domain.DashboardTotals to DashboardResponse DTO
func ToDashboardResponse(t *domain.DashboardTotals) DashboardResponse {
	return DashboardResponse{
		MemberCount: t.MemberCount,
		LoanCount:   t.LoanCount,
		TotalCredit: t.TotalCredit,
		TotalDebit:  t.TotalDebit,
	}
}
