package services_test

import (
	"context"
	"testing"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/core/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/utils/idgen"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo  *MockMemberRepository
	mockLoanRepo    *MockLoanRepository
	mockDepositRepo *MockDepositRepository
	mockNotifier    *MockNotifier
	service         portssvc.MemberSvcFacade
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewMemberService(
		suite.mockMemberRepo, suite.mockLoanRepo, suite.mockDepositRepo,
		idgen.New(), suite.mockNotifier)
}

func (suite *MemberServiceTestSuite) TestOpenMember_WithOpeningBalance() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		Name:           "Asha",
		Mobile:         "9876543210",
		OpeningDate:    "2025-06-01",
		OpeningBalance: decimal.RequireFromString("500"),
	}

	suite.mockMemberRepo.On("MaxAccountNo", ctx).Return(int64(0), nil).Once()
	suite.mockMemberRepo.On("SaveMember", ctx,
		mock.MatchedBy(func(m domain.Member) bool {
			return m.AccountNo == "10001" && m.Name == "Asha" &&
				m.CurrentBalance.Equal(decimal.RequireFromString("500.00")) &&
				m.OpeningBalance.Equal(m.CurrentBalance)
		}),
		mock.MatchedBy(func(opening *domain.CashMovement) bool {
			return opening != nil && opening.Category == domain.CategorySBReceived &&
				opening.Amount.Equal(decimal.RequireFromString("500.00")) &&
				opening.Remarks == "Opening balance for account 10001"
		}),
		mock.MatchedBy(func(mirror *domain.PassbookEntry) bool {
			return mirror != nil && mirror.Description == "SB Received - Opening Balance" &&
				mirror.Direction == domain.DirectionCredit
		}),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	member, err := suite.service.OpenMember(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal("10001", member.AccountNo)
	suite.True(member.CurrentBalance.Equal(decimal.RequireFromString("500.00")))
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestOpenMember_ZeroBalanceSkipsOpeningCredit() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{Name: "Ravi", OpeningDate: "2025-06-01"}

	suite.mockMemberRepo.On("MaxAccountNo", ctx).Return(int64(10007), nil).Once()
	suite.mockMemberRepo.On("SaveMember", ctx,
		mock.MatchedBy(func(m domain.Member) bool { return m.AccountNo == "10008" }),
		(*domain.CashMovement)(nil),
		(*domain.PassbookEntry)(nil),
	).Return(nil).Once()

	member, err := suite.service.OpenMember(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Equal("10008", member.AccountNo)
	suite.mockMemberRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertNotCalled(suite.T(), "NotifySMS")
}

func (suite *MemberServiceTestSuite) TestOpenMember_ExplicitAccountNoMustBeFree() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{AccountNo: "10005", Name: "Ravi"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10005").
		Return(&domain.Member{AccountNo: "10005"}, nil).Once()

	_, err := suite.service.OpenMember(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SaveMember")
}

func (suite *MemberServiceTestSuite) TestOpenMember_InvalidPAN() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{Name: "Ravi", PAN: "not-a-pan"}

	_, err := suite.service.OpenMember(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SaveMember")
}

func (suite *MemberServiceTestSuite) TestUpdateMember_ContactOnly() {
	ctx := context.Background()
	newMobile := "9000000001"
	existing := &domain.Member{AccountNo: "10001", Name: "Asha", Mobile: "9876543210", Address: "Old Street"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(existing, nil).Once()
	suite.mockMemberRepo.On("UpdateMemberContact", ctx, "10001", newMobile, "Old Street", "admin", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	member, err := suite.service.UpdateMember(ctx, "10001", dto.UpdateMemberRequest{Mobile: &newMobile}, "admin")

	suite.Require().NoError(err)
	suite.Equal(newMobile, member.Mobile)
	suite.Equal("Old Street", member.Address)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestGetMemberSummary_AggregatesLoansAndDeposits() {
	ctx := context.Background()
	member := &domain.Member{AccountNo: "10001", CurrentBalance: decimal.RequireFromString("350.00")}
	loans := []domain.Loan{
		{LoanID: "L1", Principal: decimal.RequireFromString("1000.00")},
		{LoanID: "L2", Principal: decimal.RequireFromString("2000.00")},
	}
	emiTotals := map[string]decimal.Decimal{
		"L1": decimal.RequireFromString("400.00"),
		// L2 has no EMI payments yet.
	}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(member, nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return(loans, nil).Once()
	suite.mockLoanRepo.On("SumEMIByLoanIDs", ctx, []string{"L1", "L2"}).Return(emiTotals, nil).Once()
	suite.mockDepositRepo.On("CountOpenDepositsByAccount", ctx, "10001").Return(1, 2, nil).Once()

	got, summary, err := suite.service.GetMemberSummary(ctx, "10001")

	suite.Require().NoError(err)
	suite.Equal(member, got)
	suite.Equal(2, summary.LoanCount)
	suite.True(summary.LoanOutstanding.Equal(decimal.RequireFromString("2600.00")))
	suite.Equal(1, summary.OpenFDCount)
	suite.Equal(2, summary.OpenRDCount)
}

func (suite *MemberServiceTestSuite) TestGetMemberByAccountNo_NotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "99999").Return(nil, apperrors.ErrNotFound).Once()

	member, err := suite.service.GetMemberByAccountNo(ctx, "99999")

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, services.ErrMemberNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
