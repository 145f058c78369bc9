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

type DepositServiceTestSuite struct {
	suite.Suite
	mockMemberRepo  *MockMemberRepository
	mockDepositRepo *MockDepositRepository
	mockNotifier    *MockNotifier
	service         portssvc.DepositSvcFacade
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewDepositService(
		suite.mockMemberRepo, suite.mockDepositRepo, idgen.New(), suite.mockNotifier)
}

func (suite *DepositServiceTestSuite) member() *domain.Member {
	return &domain.Member{AccountNo: "10001", Name: "Asha"}
}

func (suite *DepositServiceTestSuite) TestOpenFixedDeposit_DerivesMaturity() {
	ctx := context.Background()
	req := dto.CreateFixedDepositRequest{
		AccountNo:    "10001",
		Amount:       decimal.RequireFromString("10000.00"),
		InterestRate: decimal.RequireFromString("8"),
		PeriodMonths: 12,
		StartDate:    "2025-01-01",
	}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockDepositRepo.On("SaveFixedDeposit", ctx, mock.MatchedBy(func(fd domain.FixedDeposit) bool {
		wantMaturityDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 360)
		// 10000 * (1 + 8/100 * 12/12)
		return fd.MaturityDate.Equal(wantMaturityDate) &&
			fd.MaturityAmount.Equal(decimal.RequireFromString("10800.00"))
	})).Return(nil).Once()

	fd, err := suite.service.OpenFixedDeposit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(fd)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCloseFixedDeposit_InterestPayoutWhenPaidAbovePrincipal() {
	ctx := context.Background()
	fd := &domain.FixedDeposit{
		FDID:      "FD1",
		AccountNo: "10001",
		Amount:    decimal.RequireFromString("10000.00"),
	}
	req := dto.CloseFixedDepositRequest{
		AmountPaid: decimal.RequireFromString("10800.00"),
		CloseDate:  "2026-01-01",
	}

	suite.mockDepositRepo.On("FindFixedDepositByID", ctx, "FD1").Return(fd, nil).Once()
	suite.mockDepositRepo.On("CloseFixedDeposit", ctx, "FD1",
		mock.MatchedBy(func(payouts []domain.CashMovement) bool {
			if len(payouts) != 2 {
				return false
			}
			principal, interest := payouts[0], payouts[1]
			return principal.Category == domain.CategoryFDClose &&
				principal.Amount.Equal(decimal.RequireFromString("10000.00")) &&
				principal.Remarks == "FD Close FD1" &&
				interest.Category == domain.CategoryFDInterest &&
				interest.Amount.Equal(decimal.RequireFromString("800.00")) &&
				interest.Remarks == "FD Interest Close FD1"
		}),
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			return delta.Equal(decimal.RequireFromString("-10800.00"))
		}),
		"admin", mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	closed, err := suite.service.CloseFixedDeposit(ctx, "FD1", req, "admin")

	suite.Require().NoError(err)
	suite.True(closed.IsClosed)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCloseFixedDeposit_NoInterestPayoutAtOrBelowPrincipal() {
	ctx := context.Background()
	fd := &domain.FixedDeposit{
		FDID:      "FD1",
		AccountNo: "10001",
		Amount:    decimal.RequireFromString("10000.00"),
	}
	req := dto.CloseFixedDepositRequest{AmountPaid: decimal.RequireFromString("10000.00")}

	suite.mockDepositRepo.On("FindFixedDepositByID", ctx, "FD1").Return(fd, nil).Once()
	suite.mockDepositRepo.On("CloseFixedDeposit", ctx, "FD1",
		mock.MatchedBy(func(payouts []domain.CashMovement) bool {
			return len(payouts) == 1 && payouts[0].Category == domain.CategoryFDClose
		}),
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			return delta.Equal(decimal.RequireFromString("-10000.00"))
		}),
		"admin", mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	_, err := suite.service.CloseFixedDeposit(ctx, "FD1", req, "admin")

	suite.Require().NoError(err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCloseFixedDeposit_AlreadyClosed() {
	ctx := context.Background()
	fd := &domain.FixedDeposit{FDID: "FD1", IsClosed: true}

	suite.mockDepositRepo.On("FindFixedDepositByID", ctx, "FD1").Return(fd, nil).Once()

	_, err := suite.service.CloseFixedDeposit(ctx, "FD1", dto.CloseFixedDepositRequest{}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrDepositAlreadyClosed)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "CloseFixedDeposit")
}

func (suite *DepositServiceTestSuite) TestRecordRDInstallment_AmountFallsBackToSchedule() {
	ctx := context.Background()
	rd := &domain.RecurringDeposit{
		RDID:              "RD1",
		InstallmentAmount: decimal.RequireFromString("200.00"),
	}

	suite.mockDepositRepo.On("FindRecurringDepositByID", ctx, "RD1").Return(rd, nil).Once()
	suite.mockDepositRepo.On("NextRDInstallmentNo", ctx, "RD1").Return(4, nil).Once()
	suite.mockDepositRepo.On("SaveRDInstallment", ctx, mock.MatchedBy(func(inst domain.RDInstallment) bool {
		return inst.RDID == "RD1" && inst.InstallmentNo == 4 &&
			inst.Amount.Equal(decimal.RequireFromString("200.00"))
	})).Return(nil).Once()

	installment, err := suite.service.RecordRDInstallment(ctx, "RD1", dto.CreateRDInstallmentRequest{}, "admin")

	suite.Require().NoError(err)
	suite.Equal(4, installment.InstallmentNo)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestRecordRDInstallment_RejectedWhenClosed() {
	ctx := context.Background()
	rd := &domain.RecurringDeposit{RDID: "RD1", IsClosed: true}

	suite.mockDepositRepo.On("FindRecurringDepositByID", ctx, "RD1").Return(rd, nil).Once()

	_, err := suite.service.RecordRDInstallment(ctx, "RD1", dto.CreateRDInstallmentRequest{}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrDepositAlreadyClosed)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveRDInstallment")
}

func (suite *DepositServiceTestSuite) TestCloseRecurringDeposit_PrincipalIsScheduleTotal() {
	ctx := context.Background()
	rd := &domain.RecurringDeposit{
		RDID:              "RD1",
		AccountNo:         "10001",
		InstallmentAmount: decimal.RequireFromString("200.00"),
		PeriodMonths:      12,
	}
	req := dto.CloseRecurringDepositRequest{AmountPaid: decimal.RequireFromString("2500.00")}

	suite.mockDepositRepo.On("FindRecurringDepositByID", ctx, "RD1").Return(rd, nil).Once()
	suite.mockDepositRepo.On("CloseRecurringDeposit", ctx, "RD1",
		mock.MatchedBy(func(payouts []domain.CashMovement) bool {
			if len(payouts) != 2 {
				return false
			}
			return payouts[0].Category == domain.CategoryRDClose &&
				payouts[0].Amount.Equal(decimal.RequireFromString("2400.00")) &&
				payouts[1].Category == domain.CategoryRDInterest &&
				payouts[1].Amount.Equal(decimal.RequireFromString("100.00"))
		}),
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			return delta.Equal(decimal.RequireFromString("-2500.00"))
		}),
		"admin", mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	closed, err := suite.service.CloseRecurringDeposit(ctx, "RD1", req, "admin")

	suite.Require().NoError(err)
	suite.True(closed.IsClosed)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCloseFixedDeposit_NotFound() {
	ctx := context.Background()

	suite.mockDepositRepo.On("FindFixedDepositByID", ctx, "FD404").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CloseFixedDeposit(ctx, "FD404", dto.CloseFixedDepositRequest{}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDepositNotFound)
}

func TestDepositServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
