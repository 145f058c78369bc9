package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashMovement is the db representation of one credit or debit cash event.
type CashMovement struct {
	TransactionID string          `db:"transaction_id"`
	Direction     string          `db:"direction"`
	AccountNo     string          `db:"account_no"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"movement_date"`
	Mode          string          `db:"mode"`
	Remarks       string          `db:"remarks"`
	Seq           int64           `db:"seq"`
	AuditFields
}

// PassbookEntry is the db representation of one mirrored statement line.
type PassbookEntry struct {
	EntryID     int64           `db:"entry_id"`
	AccountNo   string          `db:"account_no"`
	Date        time.Time       `db:"entry_date"`
	Direction   string          `db:"direction"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
}
