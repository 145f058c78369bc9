package mapping

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/models"
)

// ToModelFixedDeposit converts a domain FixedDeposit to a model FixedDeposit
func ToModelFixedDeposit(d domain.FixedDeposit) models.FixedDeposit {
	return models.FixedDeposit{
		FDID:           d.FDID,
		AccountNo:      d.AccountNo,
		MemberName:     d.MemberName,
		StartDate:      d.StartDate,
		Amount:         d.Amount,
		InterestRate:   d.InterestRate,
		PeriodMonths:   d.PeriodMonths,
		MaturityDate:   d.MaturityDate,
		MaturityAmount: d.MaturityAmount,
		Remarks:        d.Remarks,
		IsClosed:       d.IsClosed,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedDeposit converts a model FixedDeposit to a domain FixedDeposit
func ToDomainFixedDeposit(m models.FixedDeposit) domain.FixedDeposit {
	return domain.FixedDeposit{
		FDID:           m.FDID,
		AccountNo:      m.AccountNo,
		MemberName:     m.MemberName,
		StartDate:      m.StartDate,
		Amount:         m.Amount,
		InterestRate:   m.InterestRate,
		PeriodMonths:   m.PeriodMonths,
		MaturityDate:   m.MaturityDate,
		MaturityAmount: m.MaturityAmount,
		Remarks:        m.Remarks,
		IsClosed:       m.IsClosed,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRecurringDeposit converts a domain RecurringDeposit to a model RecurringDeposit
func ToModelRecurringDeposit(d domain.RecurringDeposit) models.RecurringDeposit {
	return models.RecurringDeposit{
		RDID:              d.RDID,
		AccountNo:         d.AccountNo,
		MemberName:        d.MemberName,
		StartDate:         d.StartDate,
		InstallmentAmount: d.InstallmentAmount,
		PeriodMonths:      d.PeriodMonths,
		InterestRate:      d.InterestRate,
		MaturityDate:      d.MaturityDate,
		MaturityAmount:    d.MaturityAmount,
		Remarks:           d.Remarks,
		IsClosed:          d.IsClosed,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringDeposit converts a model RecurringDeposit to a domain RecurringDeposit
func ToDomainRecurringDeposit(m models.RecurringDeposit) domain.RecurringDeposit {
	return domain.RecurringDeposit{
		RDID:              m.RDID,
		AccountNo:         m.AccountNo,
		MemberName:        m.MemberName,
		StartDate:         m.StartDate,
		InstallmentAmount: m.InstallmentAmount,
		PeriodMonths:      m.PeriodMonths,
		InterestRate:      m.InterestRate,
		MaturityDate:      m.MaturityDate,
		MaturityAmount:    m.MaturityAmount,
		Remarks:           m.Remarks,
		IsClosed:          m.IsClosed,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRDInstallment converts a model RDInstallment to a domain RDInstallment
func ToDomainRDInstallment(m models.RDInstallment) domain.RDInstallment {
	return domain.RDInstallment{
		InstallmentID: m.InstallmentID,
		RDID:          m.RDID,
		Date:          m.Date,
		InstallmentNo: m.InstallmentNo,
		Amount:        m.Amount,
		Remarks:       m.Remarks,
	}
}

// ToModelRDInstallment converts a domain RDInstallment to a model RDInstallment
func ToModelRDInstallment(d domain.RDInstallment) models.RDInstallment {
	return models.RDInstallment{
		InstallmentID: d.InstallmentID,
		RDID:          d.RDID,
		Date:          d.Date,
		InstallmentNo: d.InstallmentNo,
		Amount:        d.Amount,
		Remarks:       d.Remarks,
	}
}

// ToModelMiscExpense converts a domain MiscExpense to a model MiscExpense
func ToModelMiscExpense(d domain.MiscExpense) models.MiscExpense {
	return models.MiscExpense{
		MiscID:      d.MiscID,
		Date:        d.Date,
		Head:        d.Head,
		Amount:      d.Amount,
		Remarks:     d.Remarks,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMiscExpense converts a model MiscExpense to a domain MiscExpense
func ToDomainMiscExpense(m models.MiscExpense) domain.MiscExpense {
	return domain.MiscExpense{
		MiscID:      m.MiscID,
		Date:        m.Date,
		Head:        m.Head,
		Amount:      m.Amount,
		Remarks:     m.Remarks,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
