package mapping

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		AccountNo:      d.AccountNo,
		Name:           d.Name,
		DOB:            d.DOB,
		Mobile:         d.Mobile,
		Aadhar:         d.Aadhar,
		PAN:            d.PAN,
		Address:        d.Address,
		OpeningDate:    d.OpeningDate,
		OpeningBalance: d.OpeningBalance,
		CurrentBalance: d.CurrentBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		AccountNo:      m.AccountNo,
		Name:           m.Name,
		DOB:            m.DOB,
		Mobile:         m.Mobile,
		Aadhar:         m.Aadhar,
		PAN:            m.PAN,
		Address:        m.Address,
		OpeningDate:    m.OpeningDate,
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
