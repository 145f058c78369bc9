package dto

import (
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest defines the data needed to open a new member account.
type CreateMemberRequest struct {
	AccountNo      string          `json:"accountNo"` // assigned automatically when absent
	Name           string          `json:"name" binding:"required"`
	DOB            string          `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Mobile         string          `json:"mobile" binding:"omitempty,len=10,numeric"`
	Aadhar         string          `json:"aadhar" binding:"omitempty,len=12,numeric"`
	PAN            string          `json:"pan" binding:"omitempty,panformat"` // format re-checked in the service
	Address        string          `json:"address"`
	OpeningDate    string          `json:"openingDate" binding:"omitempty,datetime=2006-01-02"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateMemberRequest struct {
	Mobile  *string `json:"mobile" binding:"omitempty,len=10,numeric"`
	Address *string `json:"address"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	AccountNo      string          `json:"accountNo"`
	Name           string          `json:"name"`
	DOB            string          `json:"dob,omitempty"`
	Mobile         string          `json:"mobile"`
	Aadhar         string          `json:"aadhar"`
	PAN            string          `json:"pan"`
	Address        string          `json:"address"`
	OpeningDate    string          `json:"openingDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// MemberSummaryResponse defines the aggregate view returned for a member.
type MemberSummaryResponse struct {
	Member          MemberResponse  `json:"member"`
	SBBalance       decimal.Decimal `json:"sbBalance"`
	LoanCount       int             `json:"loanCount"`
	LoanOutstanding decimal.Decimal `json:"loanOutstanding"`
	OpenFDCount     int             `json:"openFDCount"`
	OpenRDCount     int             `json:"openRDCount"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// SearchMembersParams defines query parameters for member search.
type SearchMembersParams struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=20"`
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO
func ToMemberResponse(m *domain.Member) MemberResponse {
	resp := MemberResponse{
		AccountNo:      m.AccountNo,
		Name:           m.Name,
		Mobile:         m.Mobile,
		Aadhar:         m.Aadhar,
		PAN:            m.PAN,
		Address:        m.Address,
		OpeningDate:    FormatDate(m.OpeningDate),
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
	}
	if m.DOB != nil {
		resp.DOB = FormatDate(*m.DOB)
	}
	return resp
}

// ToListMembersResponse converts a slice of domain.Member to ListMembersResponse
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = ToMemberResponse(&m)
	}
	return ListMembersResponse{Members: res}
}

// ToMemberSummaryResponse converts a member and its summary to a MemberSummaryResponse DTO
func ToMemberSummaryResponse(m *domain.Member, s *domain.MemberSummary) MemberSummaryResponse {
	return MemberSummaryResponse{
		Member:          ToMemberResponse(m),
		SBBalance:       s.SBBalance,
		LoanCount:       s.LoanCount,
		LoanOutstanding: s.LoanOutstanding,
		OpenFDCount:     s.OpenFDCount,
		OpenRDCount:     s.OpenRDCount,
	}
}
