package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/SscSPs/budget_planner_app/internal/handlers"
	"github.com/SscSPs/budget_planner_app/internal/platform/config"
	"github.com/SscSPs/budget_planner_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

const testJWTSecret = "test-secret"

// newTestRouter builds a gin engine with the full route table over mocked
// services and returns a valid bearer token for the given user.
func newTestRouter(container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:                  testJWTSecret,
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "bpa-backend-test",
		RefreshTokenCookieName:     "refresh_token",
		RefreshTokenCookiePath:     "/api/v1/auth",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		IsProduction:               true, // skip swagger wiring in tests
	}
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

func bearerToken(userID int64) string {
	token, _ := utils.GenerateJWT(userID, testJWTSecret, time.Hour, "bpa-backend-test")
	return "Bearer " + token
}

// --- Mock BudgetSvc ---

type MockBudgetSvc struct {
	mock.Mock
}

func (m *MockBudgetSvc) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID int64) (int64, error) {
	args := m.Called(ctx, req, creatorUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBudgetSvc) ListUserBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetSvc) GetBudgetWithAccounts(ctx context.Context, budgetID, userID int64) (*domain.BudgetWithAccounts, error) {
	args := m.Called(ctx, budgetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetWithAccounts), args.Error(1)
}

func (m *MockBudgetSvc) UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest, userID int64) error {
	args := m.Called(ctx, budgetID, req, userID)
	return args.Error(0)
}

func (m *MockBudgetSvc) DeleteBudget(ctx context.Context, budgetID, userID int64) error {
	args := m.Called(ctx, budgetID, userID)
	return args.Error(0)
}

func (m *MockBudgetSvc) AddUserToBudget(ctx context.Context, addingUserID, targetUserID, budgetID int64) error {
	args := m.Called(ctx, addingUserID, targetUserID, budgetID)
	return args.Error(0)
}

// --- Mock AccountSvc ---

type MockAccountSvc struct {
	mock.Mock
}

func (m *MockAccountSvc) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID int64) (int64, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountSvc) GetAccountByID(ctx context.Context, accountID, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountSvc) ListAccountsByBudget(ctx context.Context, budgetID, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, budgetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountSvc) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest, userID int64) error {
	args := m.Called(ctx, accountID, req, userID)
	return args.Error(0)
}

func (m *MockAccountSvc) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// --- Mock CategorySvc ---

type MockCategorySvc struct {
	mock.Mock
}

func (m *MockCategorySvc) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID int64) (int64, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategorySvc) GetCategoryWithSubcategories(ctx context.Context, categoryID, userID int64) (*domain.CategoryWithSubcategories, error) {
	args := m.Called(ctx, categoryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryWithSubcategories), args.Error(1)
}

func (m *MockCategorySvc) ListCategoriesByBudget(ctx context.Context, budgetID, userID int64) ([]domain.Category, error) {
	args := m.Called(ctx, budgetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategorySvc) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest, userID int64) error {
	args := m.Called(ctx, categoryID, req, userID)
	return args.Error(0)
}

func (m *MockCategorySvc) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	args := m.Called(ctx, categoryID, userID)
	return args.Error(0)
}

// --- Mock SubcategorySvc ---

type MockSubcategorySvc struct {
	mock.Mock
}

func (m *MockSubcategorySvc) CreateSubcategory(ctx context.Context, req dto.CreateSubcategoryRequest, userID int64) (int64, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubcategorySvc) ListSubcategoriesByCategory(ctx context.Context, categoryID, userID int64) ([]domain.Subcategory, error) {
	args := m.Called(ctx, categoryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockSubcategorySvc) UpdateSubcategory(ctx context.Context, subcategoryID int64, req dto.UpdateSubcategoryRequest, userID int64) error {
	args := m.Called(ctx, subcategoryID, req, userID)
	return args.Error(0)
}

func (m *MockSubcategorySvc) DeleteSubcategory(ctx context.Context, subcategoryID, userID int64) error {
	args := m.Called(ctx, subcategoryID, userID)
	return args.Error(0)
}

// --- Mock TransactionSvc ---

type MockTransactionSvc struct {
	mock.Mock
}

func (m *MockTransactionSvc) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID int64) (*dto.TransactionMutationResult, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionSvc) ListTransactionsByAccount(ctx context.Context, accountID, userID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest, userID int64) (*dto.TransactionMutationResult, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionSvc) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

// --- Mock UserSvcFacade ---

type MockUserSvc struct {
	mock.Mock
}

func (m *MockUserSvc) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) FindOrCreateOAuthUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) UpdateRefreshTokenDetails(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserSvc) ClearRefreshToken(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock TokenSvcFacade ---

type MockTokenSvc struct {
	mock.Mock
}

func (m *MockTokenSvc) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenSvc) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenSvc) ValidateAndParseRefreshToken(ctx context.Context, userID int64, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock GoogleOAuthSvcFacade ---

type MockGoogleOAuthSvc struct {
	mock.Mock
}

func (m *MockGoogleOAuthSvc) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthSvc) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuthSvc) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthSvc) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}

func (m *MockGoogleOAuthSvc) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// newMockedContainer wires a full service container out of fresh mocks.
func newMockedContainer() (*portssvc.ServiceContainer, *MockBudgetSvc, *MockAccountSvc, *MockCategorySvc, *MockSubcategorySvc, *MockTransactionSvc, *MockUserSvc) {
	budget := new(MockBudgetSvc)
	account := new(MockAccountSvc)
	category := new(MockCategorySvc)
	subcategory := new(MockSubcategorySvc)
	transaction := new(MockTransactionSvc)
	user := new(MockUserSvc)

	container := &portssvc.ServiceContainer{
		Budget:      budget,
		Account:     account,
		Category:    category,
		Subcategory: subcategory,
		Transaction: transaction,
		User:        user,
		Token:       new(MockTokenSvc),
		GoogleOAuth: new(MockGoogleOAuthSvc),
	}
	return container, budget, account, category, subcategory, transaction, user
}
