package services

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// BudgetSvc defines budget operations.
type BudgetSvc interface {
	// CreateBudget creates a budget owned by the creator and returns its ID.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID int64) (int64, error)

	// ListUserBudgets retrieves all budgets the user is a member of.
	ListUserBudgets(ctx context.Context, userID int64) ([]domain.Budget, error)

	// GetBudgetWithAccounts retrieves the budget aggregate for a member.
	GetBudgetWithAccounts(ctx context.Context, budgetID, userID int64) (*domain.BudgetWithAccounts, error)

	// UpdateBudget replaces the budget's fields for a member.
	UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest, userID int64) error

	// DeleteBudget deletes the budget for a member.
	DeleteBudget(ctx context.Context, budgetID, userID int64) error

	// AddUserToBudget adds another user to a budget the adding user is a member of.
	AddUserToBudget(ctx context.Context, addingUserID, targetUserID, budgetID int64) error
}
