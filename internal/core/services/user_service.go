package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	portsrepo "github.com/gurukosh/guru_finance_app/internal/core/ports/repositories"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
	"github.com/gurukosh/guru_finance_app/internal/utils"
)

var ErrBadCredentials = errors.New("invalid username or password")

// Seeded operator credentials; the password must be rotated after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// userService manages operator accounts and their bcrypt credentials.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// EnsureDefaultAdmin seeds the default operator account when none exists.
func (s *userService) EnsureDefaultAdmin(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.userRepo.FindUserByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up default admin: %w", err)
	}

	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	logger.Info("Default admin account seeded", slog.String("username", defaultAdminUsername))
	return nil
}

// VerifyPassword checks an operator's credentials.
func (s *userService) VerifyPassword(ctx context.Context, username string, password string) error {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrBadCredentials
		}
		return fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return ErrBadCredentials
	}
	return nil
}

// ChangePassword rotates an operator's password after verifying the old one.
func (s *userService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrBadCredentials
		}
		return fmt.Errorf("failed to look up user %s: %w", req.Username, err)
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return ErrBadCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	now := time.Now().UTC()
	if err := s.userRepo.UpdateUserPassword(ctx, user.UserID, hash, user.UserID, now); err != nil {
		logger.Error("Failed to update password", slog.String("error", err.Error()), slog.String("username", req.Username))
		return fmt.Errorf("failed to update password for %s: %w", req.Username, err)
	}
	logger.Info("Operator password changed", slog.String("username", req.Username))
	return nil
}
