package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedDeposit is a lump-sum time deposit held by a member.
type FixedDeposit struct {
	FDID           string          `json:"fdID"` // Prefixed id, e.g. "FD1717..."
	AccountNo      string          `json:"accountNo"`
	MemberName     string          `json:"memberName"`
	StartDate      time.Time       `json:"startDate"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	PeriodMonths   int             `json:"periodMonths"`
	MaturityDate   time.Time       `json:"maturityDate"`
	MaturityAmount decimal.Decimal `json:"maturityAmount"`
	Remarks        string          `json:"remarks,omitempty"`
	IsClosed       bool            `json:"isClosed"`
	AuditFields
}

// RecurringDeposit accumulates fixed monthly installments until maturity.
type RecurringDeposit struct {
	RDID              string          `json:"rdID"` // Prefixed id, e.g. "RD1717..."
	AccountNo         string          `json:"accountNo"`
	MemberName        string          `json:"memberName"`
	StartDate         time.Time       `json:"startDate"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	PeriodMonths      int             `json:"periodMonths"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	MaturityDate      time.Time       `json:"maturityDate"`
	MaturityAmount    decimal.Decimal `json:"maturityAmount"`
	Remarks           string          `json:"remarks,omitempty"`
	IsClosed          bool            `json:"isClosed"`
	AuditFields
}

// RDInstallment is one numbered payment into a recurring deposit.
type RDInstallment struct {
	InstallmentID int64           `json:"installmentID"`
	RDID          string          `json:"rdID"`
	Date          time.Time       `json:"date"`
	InstallmentNo int             `json:"installmentNo"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks,omitempty"`
}
