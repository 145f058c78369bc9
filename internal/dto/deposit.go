package dto

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedDepositRequest defines the data needed to open a fixed deposit.
type CreateFixedDepositRequest struct {
	AccountNo    string          `json:"accountNo" binding:"required"`
	StartDate    string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	InterestRate decimal.Decimal `json:"interestRate"`
	PeriodMonths int             `json:"periodMonths" binding:"required,gt=0"`
	Remarks      string          `json:"remarks"`
}

// CloseFixedDepositRequest defines the data needed to close a fixed deposit.
type CloseFixedDepositRequest struct {
	AmountPaid decimal.Decimal `json:"amountPaid" binding:"required"`
	CloseDate  string          `json:"closeDate" binding:"omitempty,datetime=2006-01-02"`
}

// FixedDepositResponse defines the data returned for a fixed deposit.
type FixedDepositResponse struct {
	FDID           string          `json:"fdID"`
	AccountNo      string          `json:"accountNo"`
	MemberName     string          `json:"memberName"`
	StartDate      string          `json:"startDate"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	PeriodMonths   int             `json:"periodMonths"`
	MaturityDate   string          `json:"maturityDate"`
	MaturityAmount decimal.Decimal `json:"maturityAmount"`
	Remarks        string          `json:"remarks"`
	IsClosed       bool            `json:"isClosed"`
}

// CreateRecurringDepositRequest defines the data needed to open a recurring deposit.
type CreateRecurringDepositRequest struct {
	AccountNo         string          `json:"accountNo" binding:"required"`
	StartDate         string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" binding:"required"`
	PeriodMonths      int             `json:"periodMonths" binding:"required,gt=0"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	Remarks           string          `json:"remarks"`
}

// CreateRDInstallmentRequest defines the data needed to record an RD installment.
// Amount falls back to the deposit's installment amount when absent.
type CreateRDInstallmentRequest struct {
	Date    string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount  *decimal.Decimal `json:"amount"`
	Remarks string           `json:"remarks"`
}

// CloseRecurringDepositRequest defines the data needed to close a recurring deposit.
type CloseRecurringDepositRequest struct {
	AmountPaid decimal.Decimal `json:"amountPaid" binding:"required"`
	CloseDate  string          `json:"closeDate" binding:"omitempty,datetime=2006-01-02"`
}

// RecurringDepositResponse defines the data returned for a recurring deposit.
type RecurringDepositResponse struct {
	RDID              string          `json:"rdID"`
	AccountNo         string          `json:"accountNo"`
	MemberName        string          `json:"memberName"`
	StartDate         string          `json:"startDate"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	PeriodMonths      int             `json:"periodMonths"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	MaturityDate      string          `json:"maturityDate"`
	MaturityAmount    decimal.Decimal `json:"maturityAmount"`
	Remarks           string          `json:"remarks"`
	IsClosed          bool            `json:"isClosed"`
}

// RDInstallmentResponse defines the data returned for an RD installment.
type RDInstallmentResponse struct {
	RDID          string          `json:"rdID"`
	Date          string          `json:"date"`
	InstallmentNo int             `json:"installmentNo"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks"`
}

// ListFixedDepositsResponse wraps a list of fixed deposits.
type ListFixedDepositsResponse struct {
	FixedDeposits []FixedDepositResponse `json:"fixedDeposits"`
}

// ListRecurringDepositsResponse wraps a list of recurring deposits.
type ListRecurringDepositsResponse struct {
	RecurringDeposits []RecurringDepositResponse `json:"recurringDeposits"`
}

// ListRDInstallmentsResponse wraps a list of RD installments.
type ListRDInstallmentsResponse struct {
	Installments []RDInstallmentResponse `json:"installments"`
}

// ToFixedDepositResponse converts a domain.FixedDeposit to FixedDepositResponse DTO
func ToFixedDepositResponse(fd *domain.FixedDeposit) FixedDepositResponse {
	return FixedDepositResponse{
		FDID:           fd.FDID,
		AccountNo:      fd.AccountNo,
		MemberName:     fd.MemberName,
		StartDate:      FormatDate(fd.StartDate),
		Amount:         fd.Amount,
		InterestRate:   fd.InterestRate,
		PeriodMonths:   fd.PeriodMonths,
		MaturityDate:   FormatDate(fd.MaturityDate),
		MaturityAmount: fd.MaturityAmount,
		Remarks:        fd.Remarks,
		IsClosed:       fd.IsClosed,
	}
}

// ToListFixedDepositsResponse converts a slice of domain.FixedDeposit to ListFixedDepositsResponse
func ToListFixedDepositsResponse(fds []domain.FixedDeposit) ListFixedDepositsResponse {
	res := make([]FixedDepositResponse, len(fds))
	for i, fd := range fds {
		res[i] = ToFixedDepositResponse(&fd)
	}
	return ListFixedDepositsResponse{FixedDeposits: res}
}

// ToRecurringDepositResponse converts a domain.RecurringDeposit to RecurringDepositResponse DTO
func ToRecurringDepositResponse(rd *domain.RecurringDeposit) RecurringDepositResponse {
	return RecurringDepositResponse{
		RDID:              rd.RDID,
		AccountNo:         rd.AccountNo,
		MemberName:        rd.MemberName,
		StartDate:         FormatDate(rd.StartDate),
		InstallmentAmount: rd.InstallmentAmount,
		PeriodMonths:      rd.PeriodMonths,
		InterestRate:      rd.InterestRate,
		MaturityDate:      FormatDate(rd.MaturityDate),
		MaturityAmount:    rd.MaturityAmount,
		Remarks:           rd.Remarks,
		IsClosed:          rd.IsClosed,
	}
}

// ToListRecurringDepositsResponse converts a slice of domain.RecurringDeposit to ListRecurringDepositsResponse
func ToListRecurringDepositsResponse(rds []domain.RecurringDeposit) ListRecurringDepositsResponse {
	res := make([]RecurringDepositResponse, len(rds))
	for i, rd := range rds {
		res[i] = ToRecurringDepositResponse(&rd)
	}
	return ListRecurringDepositsResponse{RecurringDeposits: res}
}

// ToRDInstallmentResponse converts a domain.RDInstallment to RDInstallmentResponse DTO
func ToRDInstallmentResponse(inst *domain.RDInstallment) RDInstallmentResponse {
	return RDInstallmentResponse{
		RDID:          inst.RDID,
		Date:          FormatDate(inst.Date),
		InstallmentNo: inst.InstallmentNo,
		Amount:        inst.Amount,
		Remarks:       inst.Remarks,
	}
}

// ToListRDInstallmentsResponse converts a slice of domain.RDInstallment to ListRDInstallmentsResponse
func ToListRDInstallmentsResponse(installments []domain.RDInstallment) ListRDInstallmentsResponse {
	res := make([]RDInstallmentResponse, len(installments))
	for i, inst := range installments {
		res[i] = ToRDInstallmentResponse(&inst)
	}
	return ListRDInstallmentsResponse{Installments: res}
}
