package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/core/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/SscSPs/budget_planner_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	svc      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.svc = services.NewUserService(s.userRepo)
}

func (s *UserServiceTestSuite) TestRegisterHashesPasswordAndLowercasesEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "Alice@Example.com", Password: "s3cret-pass", FirstName: "Alice", LastName: "Smith"}

	s.userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "alice@example.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(int64(7), nil)

	user, err := s.svc.Register(ctx, req)
	s.Require().NoError(err)
	s.Equal(int64(7), user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateRejectsWrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	s.Require().NoError(err)
	stored := &domain.User{UserID: 7, Email: "alice@example.com", PasswordHash: hash}
	s.userRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(stored, nil)

	_, err = s.svc.Authenticate(ctx, "alice@example.com", "wrong-password")

	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr))
	s.Equal(401, appErr.StatusCode)
}

func (s *UserServiceTestSuite) TestAuthenticateUnknownEmail() {
	ctx := context.Background()
	s.userRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, nil)

	_, err := s.svc.Authenticate(ctx, "nobody@example.com", "whatever")

	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr))
	s.Equal(401, appErr.StatusCode)
}

func (s *UserServiceTestSuite) TestGetUserByIDAbsent() {
	ctx := context.Background()
	s.userRepo.On("FindUserByID", ctx, int64(7)).Return(nil, nil)

	_, err := s.svc.GetUserByID(ctx, 7)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUserPrefersProviderLinkage() {
	ctx := context.Background()
	linked := &domain.User{UserID: 7, Email: "alice@example.com", AuthProvider: "google"}
	s.userRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(linked, nil)

	user, err := s.svc.FindOrCreateOAuthUser(ctx, domain.GoogleUserInfo{ID: "g-123", Email: "alice@example.com"})
	s.Require().NoError(err)
	s.Equal(int64(7), user.UserID)
	s.userRepo.AssertNotCalled(s.T(), "CreateUser")
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUserFallsBackToEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: 7, Email: "alice@example.com"}
	s.userRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(nil, nil)
	s.userRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(existing, nil)

	user, err := s.svc.FindOrCreateOAuthUser(ctx, domain.GoogleUserInfo{ID: "g-123", Email: "Alice@example.com"})
	s.Require().NoError(err)
	s.Equal(int64(7), user.UserID)
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUserCreatesNew() {
	ctx := context.Background()
	s.userRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(nil, nil)
	s.userRepo.On("FindUserByEmail", ctx, "bob@example.com").Return(nil, nil)
	s.userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "bob@example.com" && u.AuthProvider == "google" && u.ProviderUserID == "g-123"
	})).Return(int64(8), nil)

	user, err := s.svc.FindOrCreateOAuthUser(ctx, domain.GoogleUserInfo{ID: "g-123", Email: "bob@example.com", GivenName: "Bob"})
	s.Require().NoError(err)
	s.Equal(int64(8), user.UserID)
}

func (s *UserServiceTestSuite) TestUpdateRefreshTokenDetails() {
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour)
	s.userRepo.On("UpdateRefreshToken", ctx, int64(7), "hash", expiry).Return(nil)

	s.NoError(s.svc.UpdateRefreshTokenDetails(ctx, 7, "hash", expiry))
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
