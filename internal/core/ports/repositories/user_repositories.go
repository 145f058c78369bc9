package repositories

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
)

// UserReader defines read operations for operator accounts
type UserReader interface {
	// FindUserByUsername retrieves an operator account by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for operator accounts
type UserWriter interface {
	// SaveUser persists a new operator account.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces an operator's password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error
}

// UserRepositoryFacade combines all operator-account repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
