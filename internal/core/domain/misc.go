package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MiscExpense is an out-of-ledger expense. It does not touch any member's
// SB balance but is folded into the monthly report under the
// "Miscellaneous" debit head.
type MiscExpense struct {
	MiscID  string          `json:"miscID"` // Prefixed id, e.g. "M1717..."
	Date    time.Time       `json:"date"`
	Head    string          `json:"head"`
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks,omitempty"`
	AuditFields
}
