package dto

import (
	"time"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Account DTOs ---

// CreateAccountRequest defines data for creating a new account.
type CreateAccountRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	StartBalance decimal.Decimal `json:"startBalance"`
	BudgetID     int64           `json:"budgetId" binding:"required"`
}

// UpdateAccountRequest defines the replaceable account fields.
type UpdateAccountRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	StartBalance decimal.Decimal `json:"startBalance"`
}

// AccountResponse defines data returned for an account. CurrentBalance is
// present only on balance-aware reads.
type AccountResponse struct {
	AccountID      int64            `json:"accountID"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	StartDate      time.Time        `json:"startDate"`
	StartBalance   decimal.Decimal  `json:"startBalance"`
	BudgetID       int64            `json:"budgetID"`
	CurrentBalance *decimal.Decimal `json:"currentBalance,omitempty"`
}

// ToAccountResponse converts domain.Account to DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		Description:    a.Description,
		StartDate:      a.StartDate,
		StartBalance:   a.StartBalance,
		BudgetID:       a.BudgetID,
		CurrentBalance: a.CurrentBalance,
	}
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to DTO.
func ToListAccountsResponse(as []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(as))
	for i, a := range as {
		list[i] = ToAccountResponse(&a)
	}
	return ListAccountsResponse{Accounts: list}
}
