package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection indicates whether a cash movement is money in or money out.
type MovementDirection string

const (
	DirectionCredit MovementDirection = "CREDIT"
	DirectionDebit  MovementDirection = "DEBIT"
)

// Category labels that carry ledger side effects. Labels are free text on the
// wire; these are the ones the core dispatches on.
const (
	CategoryMemberReceived = "Member Received"
	CategorySBReceived     = "SB Received"
	CategoryMemberClosed   = "Member Closed"
	CategoryLoanGiven      = "Loan Given"
	CategoryFDClose        = "FD Close"
	CategoryFDInterest     = "FD Interest Closed"
	CategoryRDClose        = "RD Close"
	CategoryRDInterest     = "RD Interest Closed"
)

// CashMovement is one credit or debit in the society's cash ledger. Every
// recorded cash event lands here regardless of whether it changes the SB
// balance or the passbook. Append-only; never updated or deleted.
// Seq is the storage insertion sequence used as ordering tie-break.
type CashMovement struct {
	TransactionID string            `json:"transactionID"` // Prefixed id, e.g. "C1717...402"
	Direction     MovementDirection `json:"direction"`
	AccountNo     string            `json:"accountNo,omitempty"`
	Name          string            `json:"name,omitempty"`
	Category      string            `json:"category"` // e.g. "Member Received", "Loan Given"
	Amount        decimal.Decimal   `json:"amount"`
	Date          time.Time         `json:"date"`
	Mode          string            `json:"mode"` // Cash / Transfer / Other
	Remarks       string            `json:"remarks,omitempty"`
	Seq           int64             `json:"-"`
	AuditFields
}
