package dto

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to sanction a new loan.
type CreateLoanRequest struct {
	AccountNo    string          `json:"accountNo" binding:"required"`
	Category     string          `json:"category" binding:"required,oneof=Weekly Monthly Yearly 'FD Loan'"`
	Principal    decimal.Decimal `json:"principal" binding:"required"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Installments int             `json:"installments" binding:"required,gt=0"`
	EMIAmount    decimal.Decimal `json:"emiAmount"`
	StartDate    string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate      string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Remarks      string          `json:"remarks"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID       string          `json:"loanID"`
	AccountNo    string          `json:"accountNo"`
	MemberName   string          `json:"memberName"`
	Category     string          `json:"category"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Installments int             `json:"installments"`
	EMIAmount    decimal.Decimal `json:"emiAmount"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Remarks      string          `json:"remarks"`
}

// LoanOutstandingResponse defines the data returned for an outstanding query.
type LoanOutstandingResponse struct {
	LoanID      string          `json:"loanID"`
	Principal   decimal.Decimal `json:"principal"`
	TotalEMI    decimal.Decimal `json:"totalEMI"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// LoanEventResponse is one row of a loan statement.
type LoanEventResponse struct {
	Date      string          `json:"date"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	Remaining decimal.Decimal `json:"remaining"`
}

// LoanStatementResponse defines the replayed history returned for a loan.
type LoanStatementResponse struct {
	LoanID        string              `json:"loanID"`
	AccountNo     string              `json:"accountNo"`
	MemberName    string              `json:"memberName"`
	Events        []LoanEventResponse `json:"events"`
	TotalEMI      decimal.Decimal     `json:"totalEMI"`
	TotalInterest decimal.Decimal     `json:"totalInterest"`
	TotalFine     decimal.Decimal     `json:"totalFine"`
	Outstanding   decimal.Decimal     `json:"outstanding"`
}

// ListLoansResponse wraps a list of loans.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:       l.LoanID,
		AccountNo:    l.AccountNo,
		MemberName:   l.MemberName,
		Category:     string(l.Category),
		Principal:    l.Principal,
		InterestRate: l.InterestRate,
		Installments: l.Installments,
		EMIAmount:    l.EMIAmount,
		StartDate:    FormatDate(l.StartDate),
		EndDate:      FormatDate(l.EndDate),
		Remarks:      l.Remarks,
	}
}

// ToListLoansResponse converts a slice of domain.Loan to ListLoansResponse
func ToListLoansResponse(loans []domain.Loan) ListLoansResponse {
	res := make([]LoanResponse, len(loans))
	for i, l := range loans {
		res[i] = ToLoanResponse(&l)
	}
	return ListLoansResponse{Loans: res}
}

// ToLoanStatementResponse converts a domain.LoanStatement to LoanStatementResponse DTO
func ToLoanStatementResponse(s *domain.LoanStatement) LoanStatementResponse {
	events := make([]LoanEventResponse, len(s.Events))
	for i, e := range s.Events {
		events[i] = LoanEventResponse{
			Date:      FormatDate(e.Date),
			Label:     e.Label,
			Amount:    e.Amount,
			Remaining: e.Remaining,
		}
	}
	return LoanStatementResponse{
		LoanID:        s.LoanID,
		AccountNo:     s.AccountNo,
		MemberName:    s.MemberName,
		Events:        events,
		TotalEMI:      s.TotalEMI,
		TotalInterest: s.TotalInterest,
		TotalFine:     s.TotalFine,
		Outstanding:   s.Outstanding,
	}
}
