package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PassbookEntry mirrors a strict subset of cash movements into the member's
// running-balance statement: credit "Member Received" and debit
// "Member Closed" only. Loan, FD and RD settlements move the SB balance but
// never appear here; the passbook reconciles to cash the member physically
// deposited or withdrew. Derived data, never independently mutated.
type PassbookEntry struct {
	EntryID     int64             `json:"entryID"`
	AccountNo   string            `json:"accountNo"`
	Date        time.Time         `json:"date"`
	Direction   MovementDirection `json:"direction"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description,omitempty"`
}
