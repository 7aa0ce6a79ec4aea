package dto

import (
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// --- Budget DTOs ---

// CreateBudgetRequest defines data for creating a new budget.
type CreateBudgetRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateBudgetRequest defines the replaceable budget fields.
type UpdateBudgetRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// BudgetResponse defines data returned for a budget.
type BudgetResponse struct {
	BudgetID    int64  `json:"budgetID"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ToBudgetResponse converts domain.Budget to DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		Title:       b.Title,
		Description: b.Description,
	}
}

// ListBudgetsResponse wraps a list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToListBudgetsResponse converts a slice of domain.Budget to DTO.
func ToListBudgetsResponse(bs []domain.Budget) ListBudgetsResponse {
	list := make([]BudgetResponse, len(bs))
	for i, b := range bs {
		list[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: list}
}

// BudgetWithAccountsResponse is the aggregate response of a budget with its
// accounts keyed by account ID.
type BudgetWithAccountsResponse struct {
	BudgetResponse
	Accounts map[int64]AccountResponse `json:"accounts"`
}

// ToBudgetWithAccountsResponse converts the aggregate to DTO.
func ToBudgetWithAccountsResponse(b *domain.BudgetWithAccounts) BudgetWithAccountsResponse {
	accounts := make(map[int64]AccountResponse, len(b.Accounts))
	for id, a := range b.Accounts {
		accounts[id] = ToAccountResponse(&a)
	}
	return BudgetWithAccountsResponse{
		BudgetResponse: ToBudgetResponse(&b.Budget),
		Accounts:       accounts,
	}
}

// AddUserToBudgetRequest defines data for adding a user to a budget.
type AddUserToBudgetRequest struct {
	UserID int64 `json:"userID" binding:"required"`
}
