package services

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// AccountSvc defines account operations.
type AccountSvc interface {
	// CreateAccount creates an account in a budget the user is a member of
	// and returns its ID.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID int64) (int64, error)

	// GetAccountByID retrieves an account with its derived current balance.
	GetAccountByID(ctx context.Context, accountID, userID int64) (*domain.Account, error)

	// ListAccountsByBudget retrieves all accounts in a budget for a member.
	ListAccountsByBudget(ctx context.Context, budgetID, userID int64) ([]domain.Account, error)

	// UpdateAccount replaces the account's fields for a member.
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest, userID int64) error

	// DeleteAccount deletes the account for a member.
	DeleteAccount(ctx context.Context, accountID, userID int64) error
}
