package dto

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCreditRequest defines the data needed to record an incoming cash movement.
type CreateCreditRequest struct {
	AccountNo string          `json:"accountNo" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Mode      string          `json:"mode"`
	Remarks   string          `json:"remarks"`
}

// CreateDebitRequest defines the data needed to record an outgoing cash movement.
type CreateDebitRequest struct {
	AccountNo string          `json:"accountNo" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Mode      string          `json:"mode"`
	Remarks   string          `json:"remarks"`
}

// CashMovementResponse defines the data returned for a cash movement.
type CashMovementResponse struct {
	TransactionID string          `json:"transactionID"`
	Direction     string          `json:"direction"`
	AccountNo     string          `json:"accountNo"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Mode          string          `json:"mode"`
	Remarks       string          `json:"remarks"`
}

// ListMovementsResponse wraps a list of cash movements.
type ListMovementsResponse struct {
	Movements []CashMovementResponse `json:"movements"`
}

// CreateMiscExpenseRequest defines the data needed to record a miscellaneous expense.
type CreateMiscExpenseRequest struct {
	Date    string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Head    string          `json:"head" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Remarks string          `json:"remarks"`
}

// MiscExpenseResponse defines the data returned for a miscellaneous expense.
type MiscExpenseResponse struct {
	MiscID  string          `json:"miscID"`
	Date    string          `json:"date"`
	Head    string          `json:"head"`
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks"`
}

// ListMiscExpensesResponse wraps a list of miscellaneous expenses.
type ListMiscExpensesResponse struct {
	Expenses []MiscExpenseResponse `json:"expenses"`
}

// ToCashMovementResponse converts a domain.CashMovement to CashMovementResponse DTO
func ToCashMovementResponse(m *domain.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		TransactionID: m.TransactionID,
		Direction:     string(m.Direction),
		AccountNo:     m.AccountNo,
		Name:          m.Name,
		Category:      m.Category,
		Amount:        m.Amount,
		Date:          FormatDate(m.Date),
		Mode:          m.Mode,
		Remarks:       m.Remarks,
	}
}

// ToListMovementsResponse converts a slice of domain.CashMovement to ListMovementsResponse
func ToListMovementsResponse(movements []domain.CashMovement) ListMovementsResponse {
	res := make([]CashMovementResponse, len(movements))
	for i, m := range movements {
		res[i] = ToCashMovementResponse(&m)
	}
	return ListMovementsResponse{Movements: res}
}

// ToMiscExpenseResponse converts a domain.MiscExpense to MiscExpenseResponse DTO
func ToMiscExpenseResponse(e *domain.MiscExpense) MiscExpenseResponse {
	return MiscExpenseResponse{
		MiscID:  e.MiscID,
		Date:    FormatDate(e.Date),
		Head:    e.Head,
		Amount:  e.Amount,
		Remarks: e.Remarks,
	}
}

// ToListMiscExpensesResponse converts a slice of domain.MiscExpense to ListMiscExpensesResponse
func ToListMiscExpensesResponse(expenses []domain.MiscExpense) ListMiscExpensesResponse {
	res := make([]MiscExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToMiscExpenseResponse(&e)
	}
	return ListMiscExpensesResponse{Expenses: res}
}
