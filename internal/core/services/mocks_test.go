package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetWithAccounts(ctx context.Context, budgetID int64) (*domain.BudgetWithAccounts, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetWithAccounts), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByUserID(ctx context.Context, userID int64) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, title, description string, creatorUserID int64) (int64, error) {
	args := m.Called(ctx, title, description, creatorUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budgetID int64, title, description string) error {
	args := m.Called(ctx, budgetID, title, description)
	return args.Error(0)
}

func (m *MockBudgetRepository) RemoveBudgetByID(ctx context.Context, budgetID int64) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

func (m *MockBudgetRepository) AddUserToBudget(ctx context.Context, membership domain.UserBudget) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockBudgetRepository) CheckUserPermissions(ctx context.Context, budgetID, userID int64) (bool, error) {
	args := m.Called(ctx, budgetID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByBudgetID(ctx context.Context, budgetID int64) ([]domain.Account, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CurrentBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) RemoveAccountByID(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) CheckUserPermissions(ctx context.Context, accountID, userID int64) (bool, error) {
	args := m.Called(ctx, accountID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryWithSubcategories(ctx context.Context, categoryID int64) (*domain.CategoryWithSubcategories, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryWithSubcategories), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByBudgetID(ctx context.Context, budgetID int64) ([]domain.Category, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUserID(ctx context.Context, userID int64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) RemoveCategoryByID(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) HasTransactions(ctx context.Context, categoryID int64) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) CheckUserPermissions(ctx context.Context, categoryID, userID int64) (bool, error) {
	args := m.Called(ctx, categoryID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock SubcategoryRepository ---

type MockSubcategoryRepository struct {
	mock.Mock
}

func (m *MockSubcategoryRepository) FindSubcategoryByID(ctx context.Context, subcategoryID int64) (*domain.Subcategory, error) {
	args := m.Called(ctx, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepository) ListSubcategoriesByCategoryID(ctx context.Context, categoryID int64) ([]domain.Subcategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepository) ListSubcategoriesByUserID(ctx context.Context, userID int64) ([]domain.Subcategory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepository) CreateSubcategory(ctx context.Context, subcategory domain.Subcategory) (int64, error) {
	args := m.Called(ctx, subcategory)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubcategoryRepository) UpdateSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	args := m.Called(ctx, subcategory)
	return args.Error(0)
}

func (m *MockSubcategoryRepository) RemoveSubcategoryByID(ctx context.Context, subcategoryID int64) error {
	args := m.Called(ctx, subcategoryID)
	return args.Error(0)
}

func (m *MockSubcategoryRepository) HasTransactions(ctx context.Context, subcategoryID int64) (bool, error) {
	args := m.Called(ctx, subcategoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubcategoryRepository) CheckUserPermissions(ctx context.Context, subcategoryID, userID int64) (bool, error) {
	args := m.Called(ctx, subcategoryID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) RemoveTransactionByID(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) CheckUserPermissions(ctx context.Context, transactionID, userID int64) (bool, error) {
	args := m.Called(ctx, transactionID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userID int64, firstName, lastName string) error {
	args := m.Called(ctx, userID, firstName, lastName)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock PermissionSvc ---

type MockPermissionSvc struct {
	mock.Mock
}

func (m *MockPermissionSvc) HasPermissionToEditBudget(ctx context.Context, userID, budgetID int64) (bool, error) {
	args := m.Called(ctx, userID, budgetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionSvc) HasPermissionToEditAccount(ctx context.Context, userID, accountID int64) (bool, error) {
	args := m.Called(ctx, userID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionSvc) HasPermissionToEditCategory(ctx context.Context, userID, categoryID int64) (bool, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionSvc) HasPermissionToEditSubcategory(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionSvc) HasPermissionToEditTransaction(ctx context.Context, userID, transactionID int64) (bool, error) {
	args := m.Called(ctx, userID, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionSvc) CanEditTransactionParents(ctx context.Context, userID, accountID, subcategoryID int64) (bool, error) {
	args := m.Called(ctx, userID, accountID, subcategoryID)
	return args.Bool(0), args.Error(1)
}
