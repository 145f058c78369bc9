package services

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/dto"
)

// MemberReaderSvc defines read operations for member data
type MemberReaderSvc interface {
	// GetMemberByAccountNo retrieves a specific member by account number.
	GetMemberByAccountNo(ctx context.Context, accountNo string) (*domain.Member, error)

	// SearchMembers retrieves members matching a free-text query.
	SearchMembers(ctx context.Context, params dto.SearchMembersParams) ([]domain.Member, error)

	// ListMembers retrieves a paginated list of members.
	ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error)

	// GetMemberSummary retrieves a member's aggregate position: savings
	// balance, loan count and outstanding, open deposit counts.
	GetMemberSummary(ctx context.Context, accountNo string) (*domain.Member, *domain.MemberSummary, error)
}

// MemberWriterSvc defines write operations for member data
type MemberWriterSvc interface {
	// OpenMember creates a member account. The account number is assigned
	// automatically; an opening balance above zero emits a synthetic
	// "SB Received" credit and its passbook mirror.
	OpenMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error)

	// UpdateMember updates a member's contact details.
	UpdateMember(ctx context.Context, accountNo string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error)
}

// MemberSvcFacade combines all member-related service interfaces
// This is a facade for clients that need access to all operations
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
