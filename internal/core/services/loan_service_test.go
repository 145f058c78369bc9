package services_test

import (
	"context"
	"testing"
	"time"

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

type LoanServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	mockLoanRepo   *MockLoanRepository
	mockNotifier   *MockNotifier
	service        portssvc.LoanSvcFacade
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewLoanService(
		suite.mockMemberRepo, suite.mockLoanRepo, idgen.New(), suite.mockNotifier)
}

func (suite *LoanServiceTestSuite) member() *domain.Member {
	return &domain.Member{AccountNo: "10001", Name: "Asha", Mobile: "9876543210"}
}

func (suite *LoanServiceTestSuite) TestCreateLoan_DisbursesWithoutTouchingSBBalance() {
	ctx := context.Background()
	principal := decimal.RequireFromString("1000.00")
	req := dto.CreateLoanRequest{
		AccountNo:    "10001",
		Category:     "Weekly",
		Principal:    principal,
		InterestRate: decimal.RequireFromString("12"),
		Installments: 10,
		EMIAmount:    decimal.RequireFromString("100.00"),
		StartDate:    "2025-06-01",
	}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return([]domain.Loan{}, nil).Once()
	suite.mockLoanRepo.On("SaveLoanDisbursement", ctx,
		mock.MatchedBy(func(l domain.Loan) bool {
			// Weekly loans run one week per installment.
			wantEnd := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 70)
			return l.Category == domain.LoanWeekly && l.Principal.Equal(principal) &&
				l.EndDate.Equal(wantEnd)
		}),
		mock.MatchedBy(func(d domain.CashMovement) bool {
			return d.Direction == domain.DirectionDebit &&
				d.Category == domain.CategoryLoanGiven &&
				d.Amount.Equal(principal)
		}),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.MatchedBy(func(msg string) bool {
		return len(msg) > 0
	})).Return().Once()

	loan, err := suite.service.CreateLoan(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.Equal("10001", loan.AccountNo)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_MonthlyEndDateThirtyDaysPerInstallment() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		AccountNo:    "10001",
		Category:     "Monthly",
		Principal:    decimal.RequireFromString("2000.00"),
		Installments: 6,
		StartDate:    "2025-01-15",
	}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return([]domain.Loan{}, nil).Once()
	suite.mockLoanRepo.On("SaveLoanDisbursement", ctx,
		mock.MatchedBy(func(l domain.Loan) bool {
			wantEnd := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 180)
			return l.EndDate.Equal(wantEnd)
		}),
		mock.AnythingOfType("domain.CashMovement"),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	_, err := suite.service.CreateLoan(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_BlockedByOutstandingLoanOfSameCategory() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		AccountNo:    "10001",
		Category:     "Monthly",
		Principal:    decimal.RequireFromString("1000.00"),
		Installments: 10,
	}
	existing := domain.Loan{LoanID: "L9", Category: domain.LoanMonthly, Principal: decimal.RequireFromString("1000.00")}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return([]domain.Loan{existing}, nil).Once()
	suite.mockLoanRepo.On("SumEMIByLoanIDs", ctx, []string{"L9"}).
		Return(map[string]decimal.Decimal{"L9": decimal.RequireFromString("400.00")}, nil).Once()

	_, err := suite.service.CreateLoan(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrActiveLoanExists)
	suite.Contains(err.Error(), "L9")
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveLoanDisbursement")
}

func (suite *LoanServiceTestSuite) TestCreateLoan_AllowedOnceOldLoanRepaid() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		AccountNo:    "10001",
		Category:     "Monthly",
		Principal:    decimal.RequireFromString("1000.00"),
		Installments: 10,
	}
	repaid := domain.Loan{LoanID: "L9", Category: domain.LoanMonthly, Principal: decimal.RequireFromString("1000.00")}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return([]domain.Loan{repaid}, nil).Once()
	suite.mockLoanRepo.On("SumEMIByLoanIDs", ctx, []string{"L9"}).
		Return(map[string]decimal.Decimal{"L9": decimal.RequireFromString("1000.00")}, nil).Once()
	suite.mockLoanRepo.On("SaveLoanDisbursement", ctx, mock.AnythingOfType("domain.Loan"), mock.AnythingOfType("domain.CashMovement")).
		Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	_, err := suite.service.CreateLoan(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_InvalidCategory() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{AccountNo: "10001", Category: "Daily", Principal: decimal.RequireFromString("100.00")}

	_, err := suite.service.CreateLoan(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrInvalidLoanCategory)
}

func (suite *LoanServiceTestSuite) TestGetLoanOutstanding_FloorsAtZero() {
	ctx := context.Background()
	loan := &domain.Loan{LoanID: "L1", Principal: decimal.RequireFromString("1000.00")}

	suite.mockLoanRepo.On("FindLoanByID", ctx, "L1").Return(loan, nil).Once()
	suite.mockLoanRepo.On("SumEMIByLoanIDs", ctx, []string{"L1"}).
		Return(map[string]decimal.Decimal{"L1": decimal.RequireFromString("1200.00")}, nil).Once()

	resp, err := suite.service.GetLoanOutstanding(ctx, "L1")

	suite.Require().NoError(err)
	suite.True(resp.Outstanding.IsZero())
	suite.True(resp.TotalEMI.Equal(decimal.RequireFromString("1200.00")))
}

func (suite *LoanServiceTestSuite) TestGetLoanOutstanding_PartiallyRepaid() {
	ctx := context.Background()
	loan := &domain.Loan{LoanID: "L1", Principal: decimal.RequireFromString("1000.00")}

	suite.mockLoanRepo.On("FindLoanByID", ctx, "L1").Return(loan, nil).Once()
	suite.mockLoanRepo.On("SumEMIByLoanIDs", ctx, []string{"L1"}).
		Return(map[string]decimal.Decimal{"L1": decimal.RequireFromString("150.00")}, nil).Once()

	resp, err := suite.service.GetLoanOutstanding(ctx, "L1")

	suite.Require().NoError(err)
	suite.True(resp.Outstanding.Equal(decimal.RequireFromString("850.00")))
}

func (suite *LoanServiceTestSuite) TestGetLoanStatement_ReplaysMovements() {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	loan := &domain.Loan{LoanID: "L1", Principal: decimal.RequireFromString("1000.00"), StartDate: start}
	movements := []domain.LoanMovement{
		{LoanID: "L1", Kind: domain.MovementEMI, Date: start.AddDate(0, 0, 7), Amount: decimal.RequireFromString("100.00")},
		{LoanID: "L1", Kind: domain.MovementFine, Date: start.AddDate(0, 0, 14), Amount: decimal.RequireFromString("10.00")},
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, "L1").Return(loan, nil).Once()
	suite.mockLoanRepo.On("ListLoanMovements", ctx, "L1").Return(movements, nil).Once()

	statement, err := suite.service.GetLoanStatement(ctx, "L1")

	suite.Require().NoError(err)
	suite.True(statement.Outstanding.Equal(decimal.RequireFromString("900.00")))
	suite.Require().Len(statement.Events, 3) // disbursal plus two payments
}

func (suite *LoanServiceTestSuite) TestGetLoanByID_NotFound() {
	ctx := context.Background()

	suite.mockLoanRepo.On("FindLoanByID", ctx, "L404").Return(nil, apperrors.ErrNotFound).Once()

	loan, err := suite.service.GetLoanByID(ctx, "L404")

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, services.ErrLoanNotFound)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
