package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// UserRepository defines operations for user data.
type UserRepository interface {
	// CreateUser persists a new user and returns the generated identifier.
	CreateUser(ctx context.Context, user domain.User) (int64, error)

	// FindUserByID retrieves a user by their ID, or nil when absent.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, or nil when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by OAuth provider linkage, or nil when absent.
	FindUserByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.User, error)

	// UpdateUser replaces the user's editable profile fields.
	UpdateUser(ctx context.Context, userID int64, firstName, lastName string) error

	// UpdateRefreshToken stores the hashed refresh token and its expiry.
	UpdateRefreshToken(ctx context.Context, userID int64, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID int64) error
}
