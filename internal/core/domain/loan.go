package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanCategory is the fixed set of loan products.
type LoanCategory string

const (
	LoanWeekly  LoanCategory = "Weekly"
	LoanMonthly LoanCategory = "Monthly"
	LoanYearly  LoanCategory = "Yearly"
	LoanFD      LoanCategory = "FD Loan"
)

// KnownLoanCategories lists every valid loan category.
var KnownLoanCategories = []LoanCategory{LoanWeekly, LoanMonthly, LoanYearly, LoanFD}

// IsValid reports whether c is one of the known loan categories.
func (c LoanCategory) IsValid() bool {
	switch c {
	case LoanWeekly, LoanMonthly, LoanYearly, LoanFD:
		return true
	}
	return false
}

// Loan represents a disbursed loan. Immutable after creation.
// Seq is the storage insertion sequence; it tie-breaks loans sharing a start
// date when payments are classified (most recently created wins).
type Loan struct {
	LoanID       string          `json:"loanID"` // Prefixed id, e.g. "L1717..."
	AccountNo    string          `json:"accountNo"`
	MemberName   string          `json:"memberName"`
	Category     LoanCategory    `json:"category"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Installments int             `json:"installments"`
	EMIAmount    decimal.Decimal `json:"emiAmount"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Remarks      string          `json:"remarks,omitempty"`
	Seq          int64           `json:"-"`
	AuditFields
}

// MovementKind classifies a loan movement.
type MovementKind string

const (
	MovementEMI      MovementKind = "EMI"
	MovementInterest MovementKind = "INTEREST"
	MovementFine     MovementKind = "FINE"
)

// LoanMovement is one EMI / interest / fine payment against a loan.
// Append-only; never mutated or deleted.
type LoanMovement struct {
	MovementID int64           `json:"movementID"`
	LoanID     string          `json:"loanID"`
	Kind       MovementKind    `json:"kind"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Remarks    string          `json:"remarks,omitempty"`
}
