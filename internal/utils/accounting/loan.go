package accounting

import (
	"sort"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Outstanding computes the principal not yet recovered through EMI
// payments: max(0, principal - emiTotal). Over-payment clamps at zero.
func Outstanding(principal, emiTotal decimal.Decimal) decimal.Decimal {
	out := money.Round(principal).Sub(money.Round(emiTotal))
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// EMITotal sums the EMI movements of a loan; interest and fine movements do
// not recover principal.
func EMITotal(movements []domain.LoanMovement) decimal.Decimal {
	total := decimal.Zero
	for _, mv := range movements {
		if mv.Kind == domain.MovementEMI {
			total = total.Add(money.Round(mv.Amount))
		}
	}
	return total
}

// ReplayLoanStatement reconstructs a loan's event history. The chronological
// pass starts with a synthetic "Loan Given" event at full principal, then
// applies movements in (date asc, insertion asc) order: EMIs decrement the
// remaining principal clamped at zero, interest and fines leave it
// unchanged, unknown kinds pass through with their raw label. Once the
// remaining values are fixed, the display order is reversed so the most
// recent event comes first.
func ReplayLoanStatement(loan domain.Loan, movements []domain.LoanMovement) domain.LoanStatement {
	sorted := make([]domain.LoanMovement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].MovementID < sorted[j].MovementID
	})

	principal := money.Round(loan.Principal)
	remaining := principal

	events := make([]domain.LoanEvent, 0, len(sorted)+1)
	events = append(events, domain.LoanEvent{
		Date:      loan.StartDate,
		Label:     "Loan Given",
		Amount:    principal,
		Remaining: remaining,
	})

	totalEMI := decimal.Zero
	totalInterest := decimal.Zero
	totalFine := decimal.Zero

	for _, mv := range sorted {
		amount := money.Round(mv.Amount)
		var label string
		switch mv.Kind {
		case domain.MovementEMI:
			label = "EMI Received"
			totalEMI = totalEMI.Add(amount)
			remaining = remaining.Sub(amount)
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
		case domain.MovementInterest:
			label = "Interest Received"
			totalInterest = totalInterest.Add(amount)
		case domain.MovementFine:
			label = "Fine Received"
			totalFine = totalFine.Add(amount)
		default:
			label = string(mv.Kind)
		}
		events = append(events, domain.LoanEvent{
			Date:      mv.Date,
			Label:     label,
			Amount:    amount,
			Remaining: remaining,
		})
	}

	// Most recent first; remaining values already computed travel unchanged.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return domain.LoanStatement{
		LoanID:        loan.LoanID,
		AccountNo:     loan.AccountNo,
		MemberName:    loan.MemberName,
		Events:        events,
		TotalEMI:      totalEMI,
		TotalInterest: totalInterest,
		TotalFine:     totalFine,
		Outstanding:   remaining,
	}
}

// ReplayAccountStatement builds the passbook statement for a member from the
// mirrored entries, ordered (date asc, insertion asc), starting at the
// opening balance.
func ReplayAccountStatement(member domain.Member, entries []domain.PassbookEntry) domain.AccountStatement {
	sorted := make([]domain.PassbookEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].EntryID < sorted[j].EntryID
	})

	running := money.Round(member.OpeningBalance)
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	rows := make([]domain.StatementRow, 0, len(sorted))
	for _, e := range sorted {
		amount := money.Round(e.Amount)
		row := domain.StatementRow{
			Date:        e.Date,
			Description: e.Description,
		}
		if e.Direction == domain.DirectionDebit {
			row.Debit = amount
			running = running.Sub(amount)
			totalDebits = totalDebits.Add(amount)
		} else {
			row.Credit = amount
			running = running.Add(amount)
			totalCredits = totalCredits.Add(amount)
		}
		row.Balance = running
		rows = append(rows, row)
	}

	return domain.AccountStatement{
		AccountNo:      member.AccountNo,
		MemberName:     member.Name,
		OpeningBalance: money.Round(member.OpeningBalance),
		Rows:           rows,
		TotalDebits:    totalDebits,
		TotalCredits:   totalCredits,
		ClosingBalance: running,
	}
}
