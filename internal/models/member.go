package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member is the db representation of a savings account holder.
type Member struct {
	AccountNo      string          `db:"account_no"`
	Name           string          `db:"name"`
	DOB            *time.Time      `db:"dob"` // Nullable
	Mobile         string          `db:"mobile"`
	Aadhar         string          `db:"aadhar"`
	PAN            string          `db:"pan"`
	Address        string          `db:"address"`
	OpeningDate    time.Time       `db:"opening_date"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AuditFields
}
