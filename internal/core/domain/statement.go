package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one line of a member's SB passbook statement with the
// running balance after the entry.
type StatementRow struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountStatement is the passbook replay for one member. ClosingBalance is
// derived purely from the mirrored entries; it is NOT required to equal
// Member.CurrentBalance, since loan/FD/RD cash flows move the SB balance
// without appearing on the passbook.
type AccountStatement struct {
	AccountNo      string          `json:"accountNo"`
	MemberName     string          `json:"memberName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Rows           []StatementRow  `json:"rows"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// LoanEvent is one row of a single-loan statement: the disbursal or a
// payment, with the principal remaining after the event.
type LoanEvent struct {
	Date      time.Time       `json:"date"`
	Label     string          `json:"label"` // "Loan Given", "EMI Received", ...
	Amount    decimal.Decimal `json:"amount"`
	Remaining decimal.Decimal `json:"remaining"`
}

// LoanStatement is the replayed history of one loan. Events are listed most
// recent first; Remaining values were computed in chronological order and
// travel with their event through the reversal.
type LoanStatement struct {
	LoanID        string          `json:"loanID"`
	AccountNo     string          `json:"accountNo"`
	MemberName    string          `json:"memberName"`
	Events        []LoanEvent     `json:"events"`
	TotalEMI      decimal.Decimal `json:"totalEMI"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalFine     decimal.Decimal `json:"totalFine"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}
