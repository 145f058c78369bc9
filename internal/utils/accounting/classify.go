// Package accounting holds the pure ledger rules: credit-label
// classification, outstanding-principal arithmetic, statement replays and
// monthly-report bucketing. Everything here is side-effect free; services
// and repositories share it to keep the rules in one place.
package accounting

import "github.com/gurukosh/guru_finance_app/internal/core/domain"

// CreditRule maps a credit category label to a loan movement kind and a
// loan-category filter. AnyCategory means the payment may settle against a
// loan of any category (latest one wins).
type CreditRule struct {
	Kind        domain.MovementKind
	Category    domain.LoanCategory // Meaningful only when AnyCategory is false
	AnyCategory bool
}

// creditRules is the closed dispatch table from credit category label to
// loan movement classification. Labels absent from the table carry no loan
// side effect; the cash movement still records the cash event.
var creditRules = map[string]CreditRule{
	"Weekly Loan EMI Received":  {Kind: domain.MovementEMI, Category: domain.LoanWeekly},
	"Monthly Loan EMI Received": {Kind: domain.MovementEMI, Category: domain.LoanMonthly},
	"Yearly Loan EMI Received":  {Kind: domain.MovementEMI, Category: domain.LoanYearly},
	"FD Loan EMI Received":      {Kind: domain.MovementEMI, Category: domain.LoanFD},
	"Loan EMI Received":         {Kind: domain.MovementEMI, AnyCategory: true},
	"Weekly Interest Received":  {Kind: domain.MovementInterest, Category: domain.LoanWeekly},
	"Monthly Interest Received": {Kind: domain.MovementInterest, Category: domain.LoanMonthly},
	"Loan Interest Received":    {Kind: domain.MovementInterest, AnyCategory: true},
	"Fine Received":             {Kind: domain.MovementFine, AnyCategory: true},
	"Loan Fine Received":        {Kind: domain.MovementFine, AnyCategory: true},
}

// ClassifyCredit looks up the loan movement rule for a credit category
// label. ok is false when the label carries no loan side effect.
func ClassifyCredit(category string) (rule CreditRule, ok bool) {
	rule, ok = creditRules[category]
	return rule, ok
}

// ClassifiableCreditLabels returns every label present in the dispatch
// table. Used by tests to validate exhaustiveness.
func ClassifiableCreditLabels() []string {
	labels := make([]string, 0, len(creditRules))
	for l := range creditRules {
		labels = append(labels, l)
	}
	return labels
}

// CreditAffectsSBBalance reports whether a credit category label increases
// the member's SB balance. EMI / interest / fine receipts replenish the
// institution, not the member's own savings.
func CreditAffectsSBBalance(category string) bool {
	return category == domain.CategoryMemberReceived || category == domain.CategorySBReceived
}

// MirrorCreditToPassbook reports whether a credit category label is
// mirrored into the passbook statement.
func MirrorCreditToPassbook(category string) bool {
	return category == domain.CategoryMemberReceived
}

// MirrorDebitToPassbook reports whether a debit category label is mirrored
// into the passbook statement.
func MirrorDebitToPassbook(category string) bool {
	return category == domain.CategoryMemberClosed
}

// SelectLoanForPayment picks the loan a classified payment settles against:
// filter by category when the rule is specific, then latest start date,
// tie-broken by highest insertion sequence. Returns nil when no loan
// qualifies, in which case the payment stays a plain cash movement.
func SelectLoanForPayment(loans []domain.Loan, rule CreditRule) *domain.Loan {
	var best *domain.Loan
	for i := range loans {
		l := &loans[i]
		if !rule.AnyCategory && l.Category != rule.Category {
			continue
		}
		if best == nil ||
			l.StartDate.After(best.StartDate) ||
			(l.StartDate.Equal(best.StartDate) && l.Seq > best.Seq) {
			best = l
		}
	}
	return best
}
