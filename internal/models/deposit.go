package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedDeposit is the db representation of a lump-sum time deposit.
type FixedDeposit struct {
	FDID           string          `db:"fd_id"`
	AccountNo      string          `db:"account_no"`
	MemberName     string          `db:"member_name"`
	StartDate      time.Time       `db:"start_date"`
	Amount         decimal.Decimal `db:"amount"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	PeriodMonths   int             `db:"period_months"`
	MaturityDate   time.Time       `db:"maturity_date"`
	MaturityAmount decimal.Decimal `db:"maturity_amount"`
	Remarks        string          `db:"remarks"`
	IsClosed       bool            `db:"is_closed"`
	AuditFields
}

// RecurringDeposit is the db representation of a recurring deposit.
type RecurringDeposit struct {
	RDID              string          `db:"rd_id"`
	AccountNo         string          `db:"account_no"`
	MemberName        string          `db:"member_name"`
	StartDate         time.Time       `db:"start_date"`
	InstallmentAmount decimal.Decimal `db:"installment_amount"`
	PeriodMonths      int             `db:"period_months"`
	InterestRate      decimal.Decimal `db:"interest_rate"`
	MaturityDate      time.Time       `db:"maturity_date"`
	MaturityAmount    decimal.Decimal `db:"maturity_amount"`
	Remarks           string          `db:"remarks"`
	IsClosed          bool            `db:"is_closed"`
	AuditFields
}

// RDInstallment is the db representation of one RD installment.
type RDInstallment struct {
	InstallmentID int64           `db:"installment_id"`
	RDID          string          `db:"rd_id"`
	Date          time.Time       `db:"installment_date"`
	InstallmentNo int             `db:"installment_no"`
	Amount        decimal.Decimal `db:"amount"`
	Remarks       string          `db:"remarks"`
}

// MiscExpense is the db representation of an out-of-ledger expense.
type MiscExpense struct {
	MiscID  string          `db:"misc_id"`
	Date    time.Time       `db:"expense_date"`
	Head    string          `db:"head"`
	Amount  decimal.Decimal `db:"amount"`
	Remarks string          `db:"remarks"`
	AuditFields
}
