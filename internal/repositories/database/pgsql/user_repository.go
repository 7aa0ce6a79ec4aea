package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_planner_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	GenericRepository
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{GenericRepository: NewGenericRepository(pool)}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:                 m.UserID,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		CreatedAt:              m.CreatedAt,
	}
	if m.AuthProvider != nil {
		u.AuthProvider = *m.AuthProvider
	}
	if m.ProviderUserID != nil {
		u.ProviderUserID = *m.ProviderUserID
	}
	if m.RefreshTokenHash != nil {
		u.RefreshTokenHash = *m.RefreshTokenHash
	}
	return u
}

// CreateUser inserts the user. A duplicate email surfaces as a conflict so
// registration can report it without leaking driver detail.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	var authProvider, providerUserID *string
	if user.AuthProvider != "" {
		authProvider = &user.AuthProvider
	}
	if user.ProviderUserID != "" {
		providerUserID = &user.ProviderUserID
	}

	id, err := createRow(ctx, &r.GenericRepository, KindUser,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		authProvider,
		providerUserID,
		time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, apperrors.NewConflictError("a user with this email already exists")
		}
		return 0, err
	}
	return id, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	m, err := findRowByID[models.User](ctx, &r.GenericRepository, KindUser, userID)
	if err != nil || m == nil {
		return nil, err
	}
	u := toDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, op string, args ...any) (*domain.User, error) {
	sqlText, err := r.queries.Get(KindUser, op)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to run users/%s: %w", op, err))
	}

	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to collect user row: %w", err))
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "find_by_email", email)
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "find_by_provider", authProvider, providerUserID)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, userID int64, firstName, lastName string) error {
	return updateRow(ctx, &r.GenericRepository, KindUser, userID, firstName, lastName)
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshTokenHash string, expiryTime time.Time) error {
	sqlText, err := r.queries.Get(KindUser, "update_refresh_token")
	if err != nil {
		return err
	}

	tag, err := r.Pool.Exec(ctx, sqlText, userID, refreshTokenHash, expiryTime)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("failed to update refresh token for user %d: %w", userID, err))
	}
	return checkMutationTag(tag, KindUser)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	sqlText, err := r.queries.Get(KindUser, "clear_refresh_token")
	if err != nil {
		return err
	}

	tag, err := r.Pool.Exec(ctx, sqlText, userID)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("failed to clear refresh token for user %d: %w", userID, err))
	}
	return checkMutationTag(tag, KindUser)
}
