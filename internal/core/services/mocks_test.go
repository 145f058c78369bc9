package services_test

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByAccountNo(ctx context.Context, accountNo string) (*domain.Member, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) MaxAccountNo(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member, opening *domain.CashMovement, mirror *domain.PassbookEntry) error {
	args := m.Called(ctx, member, opening, mirror)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMemberContact(ctx context.Context, accountNo string, mobile string, address string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, accountNo, mobile, address, updatedBy, now)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberForUpdate(ctx context.Context, tx pgx.Tx, accountNo string) (*domain.Member, error) {
	args := m.Called(ctx, tx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateMemberBalanceInTx(ctx context.Context, tx pgx.Tx, accountNo string, newBalance decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, accountNo, newBalance, updatedBy, now)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindCashMovementByID(ctx context.Context, transactionID string) (*domain.CashMovement, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}

func (m *MockLedgerRepository) ListCashMovements(ctx context.Context, direction domain.MovementDirection, from *time.Time, to *time.Time) ([]domain.CashMovement, error) {
	args := m.Called(ctx, direction, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockLedgerRepository) ListRecentCashMovements(ctx context.Context, direction domain.MovementDirection, limit int) ([]domain.CashMovement, error) {
	args := m.Called(ctx, direction, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockLedgerRepository) SumCashMovements(ctx context.Context, direction domain.MovementDirection) (decimal.Decimal, error) {
	args := m.Called(ctx, direction)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ListPassbookEntries(ctx context.Context, accountNo string) ([]domain.PassbookEntry, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PassbookEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveMovement(ctx context.Context, movement domain.CashMovement, balanceDelta decimal.Decimal, mirror *domain.PassbookEntry, loanMovement *domain.LoanMovement) error {
	args := m.Called(ctx, movement, balanceDelta, mirror, loanMovement)
	return args.Error(0)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByAccount(ctx context.Context, accountNo string) ([]domain.Loan, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, from *time.Time, to *time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListRecentLoans(ctx context.Context, limit int) ([]domain.Loan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoanMovements(ctx context.Context, loanID string) ([]domain.LoanMovement, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanMovement), args.Error(1)
}

func (m *MockLoanRepository) SumEMIByLoanIDs(ctx context.Context, loanIDs []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, loanIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockLoanRepository) SaveLoanDisbursement(ctx context.Context, loan domain.Loan, disbursal domain.CashMovement) error {
	args := m.Called(ctx, loan, disbursal)
	return args.Error(0)
}

// --- Mock DepositRepository ---
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) FindFixedDepositByID(ctx context.Context, fdID string) (*domain.FixedDeposit, error) {
	args := m.Called(ctx, fdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedDeposit), args.Error(1)
}

func (m *MockDepositRepository) ListFixedDeposits(ctx context.Context, from *time.Time, to *time.Time) ([]domain.FixedDeposit, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedDeposit), args.Error(1)
}

func (m *MockDepositRepository) FindRecurringDepositByID(ctx context.Context, rdID string) (*domain.RecurringDeposit, error) {
	args := m.Called(ctx, rdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringDeposit), args.Error(1)
}

func (m *MockDepositRepository) ListRecurringDeposits(ctx context.Context, from *time.Time, to *time.Time) ([]domain.RecurringDeposit, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringDeposit), args.Error(1)
}

func (m *MockDepositRepository) ListRDInstallments(ctx context.Context, rdID string) ([]domain.RDInstallment, error) {
	args := m.Called(ctx, rdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RDInstallment), args.Error(1)
}

func (m *MockDepositRepository) NextRDInstallmentNo(ctx context.Context, rdID string) (int, error) {
	args := m.Called(ctx, rdID)
	return args.Int(0), args.Error(1)
}

func (m *MockDepositRepository) CountOpenDepositsByAccount(ctx context.Context, accountNo string) (int, int, error) {
	args := m.Called(ctx, accountNo)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockDepositRepository) SaveFixedDeposit(ctx context.Context, fd domain.FixedDeposit) error {
	args := m.Called(ctx, fd)
	return args.Error(0)
}

func (m *MockDepositRepository) CloseFixedDeposit(ctx context.Context, fdID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error {
	args := m.Called(ctx, fdID, payouts, balanceDelta, closedBy, now)
	return args.Error(0)
}

func (m *MockDepositRepository) SaveRecurringDeposit(ctx context.Context, rd domain.RecurringDeposit) error {
	args := m.Called(ctx, rd)
	return args.Error(0)
}

func (m *MockDepositRepository) SaveRDInstallment(ctx context.Context, installment domain.RDInstallment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockDepositRepository) CloseRecurringDeposit(ctx context.Context, rdID string, payouts []domain.CashMovement, balanceDelta decimal.Decimal, closedBy string, now time.Time) error {
	args := m.Called(ctx, rdID, payouts, balanceDelta, closedBy, now)
	return args.Error(0)
}

// --- Mock MiscExpenseRepository ---
type MockMiscExpenseRepository struct {
	mock.Mock
}

func (m *MockMiscExpenseRepository) ListMiscExpenses(ctx context.Context, from *time.Time, to *time.Time) ([]domain.MiscExpense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MiscExpense), args.Error(1)
}

func (m *MockMiscExpenseRepository) SaveMiscExpense(ctx context.Context, expense domain.MiscExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardTotals), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy, now)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifySMS(ctx context.Context, mobile string, message string) {
	m.Called(ctx, mobile, message)
}

func (m *MockNotifier) Close() {
	m.Called()
}
