package accounting

import (
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// MiscExpenseHead is the debit head misc expenses are folded into.
const MiscExpenseHead = "Miscellaneous"

// DebitHeads is the closed, ordered enumeration of debit-side report heads.
var DebitHeads = []string{
	"Loan Given",
	"FD Close",
	"RD Close",
	"SB Close",
	MiscExpenseHead,
	"Member Closed",
	"FD Interest Closed",
	"RD Interest Closed",
}

// CreditHeads is the closed, ordered enumeration of credit-side report heads.
var CreditHeads = []string{
	"SB Received",
	"FD Received",
	"RD Received",
	"Weekly Loan EMI Received",
	"Monthly Loan EMI Received",
	"Yearly Loan EMI Received",
	"FD Loan EMI Received",
	"Bond Charges",
	"Building Fund",
	"Fine Received",
	"Weekly Interest Received",
	"Monthly Interest Received",
	"Loan Interest Received",
	"Miscellaneous Credit",
	"Member Received",
}

// WeekIndexForDay maps a day of month to the fixed weekly bucket 1-4.
func WeekIndexForDay(day int) int {
	switch {
	case day <= 10:
		return 1
	case day <= 17:
		return 2
	case day <= 24:
		return 3
	default:
		return 4
	}
}

// MonthWindow returns the first and last day of (month, year), handling the
// December to January rollover.
func MonthWindow(month, year int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var next time.Time
	if month == 12 {
		next = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		next = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	end = next.AddDate(0, 0, -1)
	return start, end
}

// BuildMonthlyReport buckets the month's movements into the four weekly
// windows per head. Movements with a category outside the closed head
// enumerations are silently excluded. Misc expenses land under the
// "Miscellaneous" debit head with the same week rule.
func BuildMonthlyReport(month, year int, debits, credits []domain.CashMovement, expenses []domain.MiscExpense) domain.MonthlyReport {
	start, end := MonthWindow(month, year)

	debitBuckets := newBuckets(DebitHeads)
	creditBuckets := newBuckets(CreditHeads)

	for _, mv := range debits {
		addToBucket(debitBuckets, mv.Category, mv.Date, mv.Amount, start, end)
	}
	for _, e := range expenses {
		addToBucket(debitBuckets, MiscExpenseHead, e.Date, e.Amount, start, end)
	}
	for _, mv := range credits {
		addToBucket(creditBuckets, mv.Category, mv.Date, mv.Amount, start, end)
	}

	report := domain.MonthlyReport{
		Month:     month,
		Year:      year,
		StartDate: start,
		EndDate:   end,
	}

	report.DebitRows, report.WeeklyDebitTotals, report.TotalDebit = assembleRows(DebitHeads, debitBuckets)
	report.CreditRows, report.WeeklyCreditTotals, report.TotalCredit = assembleRows(CreditHeads, creditBuckets)
	report.NetProfit = report.TotalCredit.Sub(report.TotalDebit)
	return report
}

func newBuckets(heads []string) map[string]*[domain.ReportWeeks]decimal.Decimal {
	buckets := make(map[string]*[domain.ReportWeeks]decimal.Decimal, len(heads))
	for _, h := range heads {
		buckets[h] = &[domain.ReportWeeks]decimal.Decimal{}
	}
	return buckets
}

func addToBucket(buckets map[string]*[domain.ReportWeeks]decimal.Decimal, head string, date time.Time, amount decimal.Decimal, start, end time.Time) {
	if date.Before(start) || date.After(end) {
		return
	}
	row, known := buckets[head]
	if !known {
		return
	}
	idx := WeekIndexForDay(date.Day()) - 1
	row[idx] = row[idx].Add(money.Round(amount))
}

func assembleRows(heads []string, buckets map[string]*[domain.ReportWeeks]decimal.Decimal) ([]domain.ReportRow, [domain.ReportWeeks]decimal.Decimal, decimal.Decimal) {
	rows := make([]domain.ReportRow, 0, len(heads))
	var weekly [domain.ReportWeeks]decimal.Decimal
	grand := decimal.Zero

	for _, head := range heads {
		row := domain.ReportRow{Head: head, Weeks: *buckets[head]}
		rowTotal := decimal.Zero
		for i, amt := range row.Weeks {
			rowTotal = rowTotal.Add(amt)
			weekly[i] = weekly[i].Add(amt)
		}
		row.Total = rowTotal
		grand = grand.Add(rowTotal)
		rows = append(rows, row)
	}
	return rows, weekly, grand
}
