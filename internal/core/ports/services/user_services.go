package services

import (
	"context"

	"github.com/gurukosh/guru_finance_app/internal/dto"
)

// UserSvcFacade defines operations on operator accounts
type UserSvcFacade interface {
	// EnsureDefaultAdmin seeds the default operator account when none exists.
	EnsureDefaultAdmin(ctx context.Context) error

	// VerifyPassword checks an operator's credentials.
	VerifyPassword(ctx context.Context, username string, password string) error

	// ChangePassword rotates an operator's password after verifying the old one.
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}
