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

type TransactionServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	mockLedgerRepo *MockLedgerRepository
	mockLoanRepo   *MockLoanRepository
	mockMiscRepo   *MockMiscExpenseRepository
	mockNotifier   *MockNotifier
	service        portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockMiscRepo = new(MockMiscExpenseRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewTransactionService(
		suite.mockMemberRepo, suite.mockLedgerRepo, suite.mockLoanRepo, suite.mockMiscRepo,
		idgen.New(), suite.mockNotifier)
}

func (suite *TransactionServiceTestSuite) member() *domain.Member {
	return &domain.Member{
		AccountNo:      "10001",
		Name:           "Asha",
		Mobile:         "9876543210",
		CurrentBalance: decimal.RequireFromString("500.00"),
	}
}

func (suite *TransactionServiceTestSuite) TestRecordCredit_MemberReceived_CreditsBalanceAndPassbook() {
	ctx := context.Background()
	amount := decimal.RequireFromString("250.00")
	req := dto.CreateCreditRequest{
		AccountNo: "10001",
		Category:  domain.CategoryMemberReceived,
		Amount:    amount,
		Date:      "2025-06-01",
		Mode:      "Cash",
	}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLedgerRepo.On("SaveMovement", ctx,
		mock.MatchedBy(func(m domain.CashMovement) bool {
			return m.Direction == domain.DirectionCredit &&
				m.Category == domain.CategoryMemberReceived &&
				m.Amount.Equal(amount) && m.AccountNo == "10001"
		}),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(amount) }),
		mock.MatchedBy(func(mirror *domain.PassbookEntry) bool {
			return mirror != nil &&
				mirror.Direction == domain.DirectionCredit &&
				mirror.Description == domain.CategoryMemberReceived &&
				mirror.Amount.Equal(amount)
		}),
		(*domain.LoanMovement)(nil),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210",
		"Shri Guru Finance: Rs 250.00 CREDITED to A/c 10001 on 2025-06-01 for Member Received.").Return().Once()

	movement, err := suite.service.RecordCredit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal(domain.DirectionCredit, movement.Direction)
	suite.True(movement.Amount.Equal(amount))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordCredit_SBReceived_NoPassbookMirror() {
	ctx := context.Background()
	amount := decimal.RequireFromString("100.00")
	req := dto.CreateCreditRequest{AccountNo: "10001", Category: domain.CategorySBReceived, Amount: amount, Mode: "Cash"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLedgerRepo.On("SaveMovement", ctx,
		mock.AnythingOfType("domain.CashMovement"),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(amount) }),
		(*domain.PassbookEntry)(nil),
		(*domain.LoanMovement)(nil),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	_, err := suite.service.RecordCredit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordCredit_EMIPicksLatestLoanOfCategory() {
	ctx := context.Background()
	amount := decimal.RequireFromString("150.00")
	older := domain.Loan{LoanID: "L1", Category: domain.LoanMonthly, StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Seq: 1}
	newer := domain.Loan{LoanID: "L2", Category: domain.LoanMonthly, StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Seq: 2}
	weekly := domain.Loan{LoanID: "L3", Category: domain.LoanWeekly, StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Seq: 3}
	req := dto.CreateCreditRequest{AccountNo: "10001", Category: "Monthly Loan EMI Received", Amount: amount, Mode: "Cash"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return([]domain.Loan{older, newer, weekly}, nil).Once()
	suite.mockLedgerRepo.On("SaveMovement", ctx,
		mock.AnythingOfType("domain.CashMovement"),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
		(*domain.PassbookEntry)(nil),
		mock.MatchedBy(func(lm *domain.LoanMovement) bool {
			return lm != nil && lm.LoanID == "L2" && lm.Kind == domain.MovementEMI &&
				lm.Amount.Equal(amount) && lm.Remarks == "Monthly Loan EMI Received"
		}),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	_, err := suite.service.RecordCredit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockLoanRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordCredit_FineWithNoLoanKeepsCashMovement() {
	ctx := context.Background()
	amount := decimal.RequireFromString("20.00")
	req := dto.CreateCreditRequest{AccountNo: "10001", Category: "Fine Received", Amount: amount, Mode: "Cash"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLoanRepo.On("ListLoansByAccount", ctx, "10001").Return([]domain.Loan{}, nil).Once()
	suite.mockLedgerRepo.On("SaveMovement", ctx,
		mock.AnythingOfType("domain.CashMovement"),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
		(*domain.PassbookEntry)(nil),
		(*domain.LoanMovement)(nil),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	movement, err := suite.service.RecordCredit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordCredit_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.CreateCreditRequest{AccountNo: "10001", Category: domain.CategoryMemberReceived, Amount: decimal.Zero}

	_, err := suite.service.RecordCredit(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrAmountNotPositive)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *TransactionServiceTestSuite) TestRecordCredit_MemberMissing() {
	ctx := context.Background()
	req := dto.CreateCreditRequest{AccountNo: "99999", Category: domain.CategoryMemberReceived, Amount: decimal.RequireFromString("10.00")}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "99999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordCredit(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMemberNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *TransactionServiceTestSuite) TestRecordDebit_AlwaysReducesBalance() {
	ctx := context.Background()
	amount := decimal.RequireFromString("75.00")
	req := dto.CreateDebitRequest{AccountNo: "10001", Category: "Stationery", Amount: amount, Date: "2025-06-02", Mode: "Cash"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLedgerRepo.On("SaveMovement", ctx,
		mock.MatchedBy(func(m domain.CashMovement) bool {
			return m.Direction == domain.DirectionDebit && m.Amount.Equal(amount)
		}),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(amount.Neg()) }),
		(*domain.PassbookEntry)(nil),
		(*domain.LoanMovement)(nil),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210",
		"Shri Guru Finance: Rs 75.00 DEBITED from A/c 10001 on 2025-06-02 for Stationery.").Return().Once()

	_, err := suite.service.RecordDebit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordDebit_MemberClosedMirrorsToPassbook() {
	ctx := context.Background()
	amount := decimal.RequireFromString("500.00")
	req := dto.CreateDebitRequest{AccountNo: "10001", Category: domain.CategoryMemberClosed, Amount: amount, Mode: "Cash"}

	suite.mockMemberRepo.On("FindMemberByAccountNo", ctx, "10001").Return(suite.member(), nil).Once()
	suite.mockLedgerRepo.On("SaveMovement", ctx,
		mock.AnythingOfType("domain.CashMovement"),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(amount.Neg()) }),
		mock.MatchedBy(func(mirror *domain.PassbookEntry) bool {
			return mirror != nil && mirror.Direction == domain.DirectionDebit &&
				mirror.Description == domain.CategoryMemberClosed
		}),
		(*domain.LoanMovement)(nil),
	).Return(nil).Once()
	suite.mockNotifier.On("NotifySMS", ctx, "9876543210", mock.AnythingOfType("string")).Return().Once()

	_, err := suite.service.RecordDebit(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordMiscExpense_Success() {
	ctx := context.Background()
	req := dto.CreateMiscExpenseRequest{Head: "Electricity", Amount: decimal.RequireFromString("320.50"), Date: "2025-06-03"}

	suite.mockMiscRepo.On("SaveMiscExpense", ctx, mock.MatchedBy(func(e domain.MiscExpense) bool {
		return e.Head == "Electricity" && e.Amount.Equal(req.Amount) && e.CreatedBy == "admin"
	})).Return(nil).Once()

	expense, err := suite.service.RecordMiscExpense(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.mockMiscRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListCredits_PassesDateRange() {
	ctx := context.Background()
	params := dto.DateRangeParams{FromDate: "2025-06-01", ToDate: "2025-06-30"}
	expected := []domain.CashMovement{{TransactionID: "C1"}}

	suite.mockLedgerRepo.On("ListCashMovements", ctx, domain.DirectionCredit,
		mock.MatchedBy(func(from *time.Time) bool { return from != nil && from.Format("2006-01-02") == "2025-06-01" }),
		mock.MatchedBy(func(to *time.Time) bool { return to != nil && to.Format("2006-01-02") == "2025-06-30" }),
	).Return(expected, nil).Once()

	movements, err := suite.service.ListCredits(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(expected, movements)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
