package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/SscSPs/budget_planner_app/internal/utils"
)

const googleAuthProvider = "google"

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalError(err)
	}

	user := domain.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    time.Now().UTC(),
	}
	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to create user")
		return nil, err
	}
	user.UserID = userID
	s.LogInfo(ctx, "User registered", slog.Int64("user_id", userID))
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewAppError(401, "invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User does not exist")
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User does not exist")
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.userRepo.UpdateUser(ctx, userID, req.FirstName, req.LastName); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.Int64("user_id", userID))
		return nil, err
	}
	return s.GetUserByID(ctx, userID)
}

// FindOrCreateOAuthUser resolves the application user for a Google identity.
// Matching order: provider linkage first, then email (which links the
// provider to an existing password account), then a fresh user.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, googleAuthProvider, info.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.FindUserByEmail(ctx, strings.ToLower(info.Email))
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	newUser := domain.User{
		Email:          strings.ToLower(info.Email),
		FirstName:      info.GivenName,
		LastName:       info.FamilyName,
		AuthProvider:   googleAuthProvider,
		ProviderUserID: info.ID,
		CreatedAt:      time.Now().UTC(),
	}
	userID, err := s.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to create user from Google profile")
		return nil, err
	}
	newUser.UserID = userID
	s.LogInfo(ctx, "User created via Google login", slog.Int64("user_id", userID))
	return &newUser, nil
}

func (s *userService) UpdateRefreshTokenDetails(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, expiresAt)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID int64) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
