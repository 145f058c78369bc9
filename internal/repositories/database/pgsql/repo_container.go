package pgsql

import (
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	memberRepo := newPgxMemberRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, memberRepo)
	loanRepo := newPgxLoanRepository(dbPool)
	depositRepo := newPgxDepositRepository(dbPool, memberRepo)
	miscRepo := newPgxMiscExpenseRepository(dbPool)
	reportRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MemberRepo:  memberRepo,
		LedgerRepo:  ledgerRepo,
		LoanRepo:    loanRepo,
		DepositRepo: depositRepo,
		MiscRepo:    miscRepo,
		ReportRepo:  reportRepo,
		UserRepo:    userRepo,
	}
}
