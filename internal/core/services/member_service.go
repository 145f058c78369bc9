package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
	"github.com/gurukosh/guru_finance_app/internal/utils/accounting"
	"github.com/gurukosh/guru_finance_app/internal/utils/idgen"
	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidPAN     = errors.New("PAN must be 5 capital letters, 4 digits, then 1 capital letter")
)

// Account numbers start here when the book is empty.
const accountNoBase = 10001

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// memberService provides member account operations.
type memberService struct {
	memberRepo  portsrepo.MemberRepositoryFacade
	loanRepo    portsrepo.LoanReader
	depositRepo portsrepo.DepositReader
	idgen       *idgen.Generator
	notifier    portssvc.Notifier
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, loanRepo portsrepo.LoanReader, depositRepo portsrepo.DepositReader, gen *idgen.Generator, notifier portssvc.Notifier) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo:  memberRepo,
		loanRepo:    loanRepo,
		depositRepo: depositRepo,
		idgen:       gen,
		notifier:    notifier,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// OpenMember creates a member account. When no account number is supplied the
// next free one is assigned, starting at 10001. An opening balance above zero
// is booked as a synthetic "SB Received" credit and mirrored into the passbook.
func (s *memberService) OpenMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.PAN != "" && !panPattern.MatchString(req.PAN) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidPAN)
	}

	dob, err := dto.ParseDate(req.DOB)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dob: %s", apperrors.ErrValidation, req.DOB)
	}
	openingDate, err := dto.ParseDate(req.OpeningDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening date: %s", apperrors.ErrValidation, req.OpeningDate)
	}
	if openingDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		openingDate = &today
	}

	accountNo := req.AccountNo
	if accountNo == "" {
		accountNo, err = s.nextAccountNo(ctx)
		if err != nil {
			logger.Error("Failed to derive next account number", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to derive account number: %w", err)
		}
	} else {
		existing, err := s.memberRepo.FindMemberByAccountNo(ctx, accountNo)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check account number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, accountNo)
		}
	}

	now := time.Now().UTC()
	openingBalance := money.Round(req.OpeningBalance)
	member := domain.Member{
		AccountNo:      accountNo,
		Name:           req.Name,
		DOB:            dob,
		Mobile:         req.Mobile,
		Aadhar:         req.Aadhar,
		PAN:            req.PAN,
		Address:        req.Address,
		OpeningDate:    *openingDate,
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var opening *domain.CashMovement
	var mirror *domain.PassbookEntry
	if openingBalance.IsPositive() {
		opening = &domain.CashMovement{
			TransactionID: s.idgen.NextID(idgen.PrefixCredit),
			Direction:     domain.DirectionCredit,
			AccountNo:     accountNo,
			Name:          req.Name,
			Category:      domain.CategorySBReceived,
			Amount:        openingBalance,
			Date:          *openingDate,
			Mode:          "Cash",
			Remarks:       fmt.Sprintf("Opening balance for account %s", accountNo),
			AuditFields:   member.AuditFields,
		}
		mirror = &domain.PassbookEntry{
			AccountNo:   accountNo,
			Date:        *openingDate,
			Direction:   domain.DirectionCredit,
			Amount:      openingBalance,
			Description: "SB Received - Opening Balance",
		}
	}

	if err := s.memberRepo.SaveMember(ctx, member, opening, mirror); err != nil {
		logger.Error("Failed to save member", slog.String("error", err.Error()), slog.String("account_no", accountNo))
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	logger.Info("Member account opened", slog.String("account_no", accountNo), slog.String("opening_balance", openingBalance.String()))
	if s.notifier != nil && member.Mobile != "" {
		s.notifier.NotifySMS(ctx, member.Mobile, fmt.Sprintf(
			"Shri Guru Finance: Welcome! Your A/c %s is open with balance Rs %s.", accountNo, openingBalance.StringFixed(money.Scale)))
	}
	return &member, nil
}

// nextAccountNo assigns the account number after the highest one on record.
func (s *memberService) nextAccountNo(ctx context.Context) (string, error) {
	max, err := s.memberRepo.MaxAccountNo(ctx)
	if err != nil {
		return "", err
	}
	next := int64(accountNoBase)
	if max >= accountNoBase {
		next = max + 1
	}
	return strconv.FormatInt(next, 10), nil
}

// GetMemberByAccountNo retrieves a specific member by account number.
func (s *memberService) GetMemberByAccountNo(ctx context.Context, accountNo string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s: %w", ErrMemberNotFound, accountNo, err)
		}
		return nil, fmt.Errorf("failed to find member %s: %w", accountNo, err)
	}
	return member, nil
}

// SearchMembers retrieves members matching a free-text query against account
// number, mobile or name.
func (s *memberService) SearchMembers(ctx context.Context, params dto.SearchMembersParams) ([]domain.Member, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	members, err := s.memberRepo.SearchMembers(ctx, params.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	return members, nil
}

// ListMembers retrieves a paginated list of members.
func (s *memberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	members, err := s.memberRepo.ListMembers(ctx, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateMember updates a member's contact details.
func (s *memberService) UpdateMember(ctx context.Context, accountNo string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.GetMemberByAccountNo(ctx, accountNo)
	if err != nil {
		return nil, err
	}

	mobile := member.Mobile
	address := member.Address
	updated := false
	if req.Mobile != nil {
		mobile = *req.Mobile
		updated = true
	}
	if req.Address != nil {
		address = *req.Address
		updated = true
	}
	if !updated {
		return member, nil
	}

	now := time.Now().UTC()
	if err := s.memberRepo.UpdateMemberContact(ctx, accountNo, mobile, address, requestingUserID, now); err != nil {
		logger.Error("Failed to update member contact", slog.String("error", err.Error()), slog.String("account_no", accountNo))
		return nil, fmt.Errorf("failed to update member %s: %w", accountNo, err)
	}

	member.Mobile = mobile
	member.Address = address
	member.LastUpdatedAt = now
	member.LastUpdatedBy = requestingUserID
	logger.Info("Member contact updated", slog.String("account_no", accountNo))
	return member, nil
}

// GetMemberSummary retrieves a member's aggregate position.
func (s *memberService) GetMemberSummary(ctx context.Context, accountNo string) (*domain.Member, *domain.MemberSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.GetMemberByAccountNo(ctx, accountNo)
	if err != nil {
		return nil, nil, err
	}

	loans, err := s.loanRepo.ListLoansByAccount(ctx, accountNo)
	if err != nil {
		logger.Error("Failed to list loans for member summary", slog.String("error", err.Error()), slog.String("account_no", accountNo))
		return nil, nil, fmt.Errorf("failed to list loans for %s: %w", accountNo, err)
	}

	outstanding := decimal.Zero
	if len(loans) > 0 {
		loanIDs := make([]string, len(loans))
		for i, l := range loans {
			loanIDs[i] = l.LoanID
		}
		emiTotals, err := s.loanRepo.SumEMIByLoanIDs(ctx, loanIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to sum EMI payments for %s: %w", accountNo, err)
		}
		for _, l := range loans {
			outstanding = outstanding.Add(accounting.Outstanding(l.Principal, emiTotals[l.LoanID]))
		}
	}

	fdCount, rdCount, err := s.depositRepo.CountOpenDepositsByAccount(ctx, accountNo)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count deposits for %s: %w", accountNo, err)
	}

	summary := &domain.MemberSummary{
		SBBalance:       member.CurrentBalance,
		LoanCount:       len(loans),
		LoanOutstanding: outstanding,
		OpenFDCount:     fdCount,
		OpenRDCount:     rdCount,
	}
	return member, summary, nil
}
