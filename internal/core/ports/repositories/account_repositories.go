package repositories

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by its ID, or nil when absent.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccountsByBudgetID retrieves all accounts in a budget.
	ListAccountsByBudgetID(ctx context.Context, budgetID int64) ([]domain.Account, error)

	// ListAccountsByUserID retrieves all accounts reachable from the user's budgets.
	ListAccountsByUserID(ctx context.Context, userID int64) ([]domain.Account, error)

	// CurrentBalance derives the account's balance from its start balance and
	// the signed sum of its transactions.
	CurrentBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount persists a new account and returns the generated identifier.
	CreateAccount(ctx context.Context, account domain.Account) (int64, error)

	// UpdateAccount replaces the account's fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// RemoveAccountByID deletes the account.
	RemoveAccountByID(ctx context.Context, accountID int64) error
}

// AccountPermissionChecker answers the account edge of the ownership graph.
type AccountPermissionChecker interface {
	// CheckUserPermissions reports whether the account belongs to one of the
	// user's budgets.
	CheckUserPermissions(ctx context.Context, accountID, userID int64) (bool, error)
}

// AccountRepository combines all account-related repository interfaces
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountPermissionChecker
}
