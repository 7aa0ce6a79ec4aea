package services

import (
	"context"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// UserSvcFacade combines user retrieval, registration and auth-related
// persistence into the surface the handlers and token service consume.
type UserSvcFacade interface {
	// Register creates a local-credentials user with a bcrypt password hash.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies email/password credentials and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)

	// FindOrCreateOAuthUser resolves the user for an external identity,
	// creating one on first login.
	FindOrCreateOAuthUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateRefreshTokenDetails persists the hash and expiry of a newly
	// issued refresh token.
	UpdateRefreshTokenDetails(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken invalidates the stored refresh token, if any.
	ClearRefreshToken(ctx context.Context, userID int64) error
}
