package domain

import (
	"time"

	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Member represents a society member's savings (SB) account.
// CurrentBalance is the authoritative SB balance and must only ever be
// changed through ApplyCredit / ApplyDebit.
type Member struct {
	AccountNo      string          `json:"accountNo"` // Unique, numeric style ("10001")
	Name           string          `json:"name"`
	DOB            *time.Time      `json:"dob,omitempty"`
	Mobile         string          `json:"mobile,omitempty"`
	Aadhar         string          `json:"aadhar,omitempty"`
	PAN            string          `json:"pan,omitempty"`
	Address        string          `json:"address,omitempty"`
	OpeningDate    time.Time       `json:"openingDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields
}

// ApplyCredit increases the SB balance. Both operands pass through the
// fixed-scale rounding so repeated application never drifts.
func (m *Member) ApplyCredit(amount decimal.Decimal) {
	m.CurrentBalance = money.Round(m.CurrentBalance).Add(money.Round(amount))
}

// ApplyDebit decreases the SB balance. There is no floor at zero: overdraft
// is representable (FD/RD closures net against SB balance) and affordability
// is the caller's policy to enforce.
func (m *Member) ApplyDebit(amount decimal.Decimal) {
	m.CurrentBalance = money.Round(m.CurrentBalance).Sub(money.Round(amount))
}

// MemberSummary aggregates a member's position across products.
type MemberSummary struct {
	SBBalance       decimal.Decimal `json:"sbBalance"`
	LoanCount       int             `json:"loanCount"`
	LoanOutstanding decimal.Decimal `json:"loanOutstanding"`
	OpenFDCount     int             `json:"openFDCount"`
	OpenRDCount     int             `json:"openRDCount"`
}
