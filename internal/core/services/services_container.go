package services

import (
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/utils/idgen"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	gen := idgen.New()

	container := &portssvc.ServiceContainer{}
	container.Member = NewMemberService(repos.MemberRepo, repos.LoanRepo, repos.DepositRepo, gen, notifier)
	container.Transaction = NewTransactionService(repos.MemberRepo, repos.LedgerRepo, repos.LoanRepo, repos.MiscRepo, gen, notifier)
	container.Loan = NewLoanService(repos.MemberRepo, repos.LoanRepo, gen, notifier)
	container.Deposit = NewDepositService(repos.MemberRepo, repos.DepositRepo, gen, notifier)
	container.Reporting = NewReportingService(repos.MemberRepo, repos.LedgerRepo, repos.MiscRepo, repos.ReportRepo)
	container.User = NewUserService(repos.UserRepo)
	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.MemberSvcFacade      = (*memberService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.LoanSvcFacade        = (*loanService)(nil)
	_ portssvc.DepositSvcFacade     = (*depositService)(nil)
	_ portssvc.ReportingService     = (*reportingService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
)
