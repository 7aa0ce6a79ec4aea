package repositories

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget by its ID, or nil when absent.
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)

	// FindBudgetWithAccounts retrieves a budget and its accounts as one aggregate.
	FindBudgetWithAccounts(ctx context.Context, budgetID int64) (*domain.BudgetWithAccounts, error)

	// ListBudgetsByUserID retrieves all budgets a user is a member of.
	ListBudgetsByUserID(ctx context.Context, userID int64) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// CreateBudget persists a new budget with the creator as first member and
	// returns the generated identifier.
	CreateBudget(ctx context.Context, title, description string, creatorUserID int64) (int64, error)

	// UpdateBudget replaces the budget's fields.
	UpdateBudget(ctx context.Context, budgetID int64, title, description string) error

	// RemoveBudgetByID deletes the budget.
	RemoveBudgetByID(ctx context.Context, budgetID int64) error
}

// BudgetMembershipManager defines operations for managing budget memberships
type BudgetMembershipManager interface {
	// AddUserToBudget adds a user to a budget's membership.
	AddUserToBudget(ctx context.Context, membership domain.UserBudget) error

	// CheckUserPermissions reports whether the user is a member of the budget.
	CheckUserPermissions(ctx context.Context, budgetID, userID int64) (bool, error)
}

// BudgetRepository combines all budget-related repository interfaces
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
	BudgetMembershipManager
}
