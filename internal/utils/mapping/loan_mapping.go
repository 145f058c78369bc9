package mapping

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:       d.LoanID,
		AccountNo:    d.AccountNo,
		MemberName:   d.MemberName,
		Category:     string(d.Category),
		Principal:    d.Principal,
		InterestRate: d.InterestRate,
		Installments: d.Installments,
		EMIAmount:    d.EMIAmount,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Remarks:      d.Remarks,
		Seq:          d.Seq,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:       m.LoanID,
		AccountNo:    m.AccountNo,
		MemberName:   m.MemberName,
		Category:     domain.LoanCategory(m.Category),
		Principal:    m.Principal,
		InterestRate: m.InterestRate,
		Installments: m.Installments,
		EMIAmount:    m.EMIAmount,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Remarks:      m.Remarks,
		Seq:          m.Seq,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLoanMovement converts a domain LoanMovement to a model LoanMovement
func ToModelLoanMovement(d domain.LoanMovement) models.LoanMovement {
	return models.LoanMovement{
		MovementID: d.MovementID,
		LoanID:     d.LoanID,
		Kind:       string(d.Kind),
		Date:       d.Date,
		Amount:     d.Amount,
		Remarks:    d.Remarks,
	}
}

// ToDomainLoanMovement converts a model LoanMovement to a domain LoanMovement
func ToDomainLoanMovement(m models.LoanMovement) domain.LoanMovement {
	return domain.LoanMovement{
		MovementID: m.MovementID,
		LoanID:     m.LoanID,
		Kind:       domain.MovementKind(m.Kind),
		Date:       m.Date,
		Amount:     m.Amount,
		Remarks:    m.Remarks,
	}
}

// ToDomainLoanSlice converts a slice of model Loans to domain Loans
func ToDomainLoanSlice(ms []models.Loan) []domain.Loan {
	out := make([]domain.Loan, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLoan(m)
	}
	return out
}

// ToDomainLoanMovementSlice converts a slice of model LoanMovements to domain LoanMovements
func ToDomainLoanMovementSlice(ms []models.LoanMovement) []domain.LoanMovement {
	out := make([]domain.LoanMovement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLoanMovement(m)
	}
	return out
}
