package mapping

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/models"
)

// ToModelCashMovement converts a domain CashMovement to a model CashMovement
func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		TransactionID: d.TransactionID,
		Direction:     string(d.Direction),
		AccountNo:     d.AccountNo,
		Name:          d.Name,
		Category:      d.Category,
		Amount:        d.Amount,
		Date:          d.Date,
		Mode:          d.Mode,
		Remarks:       d.Remarks,
		Seq:           d.Seq,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashMovement converts a model CashMovement to a domain CashMovement
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		TransactionID: m.TransactionID,
		Direction:     domain.MovementDirection(m.Direction),
		AccountNo:     m.AccountNo,
		Name:          m.Name,
		Category:      m.Category,
		Amount:        m.Amount,
		Date:          m.Date,
		Mode:          m.Mode,
		Remarks:       m.Remarks,
		Seq:           m.Seq,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashMovementSlice converts model CashMovements to domain CashMovements
func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	out := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCashMovement(m)
	}
	return out
}

// ToModelPassbookEntry converts a domain PassbookEntry to a model PassbookEntry
func ToModelPassbookEntry(d domain.PassbookEntry) models.PassbookEntry {
	return models.PassbookEntry{
		EntryID:     d.EntryID,
		AccountNo:   d.AccountNo,
		Date:        d.Date,
		Direction:   string(d.Direction),
		Amount:      d.Amount,
		Description: d.Description,
	}
}

// ToDomainPassbookEntry converts a model PassbookEntry to a domain PassbookEntry
func ToDomainPassbookEntry(m models.PassbookEntry) domain.PassbookEntry {
	return domain.PassbookEntry{
		EntryID:     m.EntryID,
		AccountNo:   m.AccountNo,
		Date:        m.Date,
		Direction:   domain.MovementDirection(m.Direction),
		Amount:      m.Amount,
		Description: m.Description,
	}
}

// ToDomainPassbookEntrySlice converts model PassbookEntries to domain PassbookEntries
func ToDomainPassbookEntrySlice(ms []models.PassbookEntry) []domain.PassbookEntry {
	out := make([]domain.PassbookEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPassbookEntry(m)
	}
	return out
}
