package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the db representation of a disbursed loan. seq is a bigserial used
// to tie-break loans sharing a start date.
type Loan struct {
	LoanID       string          `db:"loan_id"`
	AccountNo    string          `db:"account_no"`
	MemberName   string          `db:"member_name"`
	Category     string          `db:"category"`
	Principal    decimal.Decimal `db:"principal"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	Installments int             `db:"installments"`
	EMIAmount    decimal.Decimal `db:"emi_amount"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	Remarks      string          `db:"remarks"`
	Seq          int64           `db:"seq"`
	AuditFields
}

// LoanMovement is the db representation of one EMI / interest / fine payment.
type LoanMovement struct {
	MovementID int64           `db:"movement_id"`
	LoanID     string          `db:"loan_id"`
	Kind       string          `db:"kind"`
	Date       time.Time       `db:"movement_date"`
	Amount     decimal.Decimal `db:"amount"`
	Remarks    string          `db:"remarks"`
}
