package services

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// TransactionSvc defines transaction operations.
type TransactionSvc interface {
	// CreateTransaction creates a transaction once both parent permission
	// checks pass. The returned result may carry a balance recompute failure
	// alongside the successful mutation.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID int64) (*dto.TransactionMutationResult, error)

	// ListTransactionsByAccount retrieves all transactions of an account for a member.
	ListTransactionsByAccount(ctx context.Context, accountID, userID int64) ([]domain.Transaction, error)

	// UpdateTransaction replaces the transaction's fields, with the same
	// partial-failure contract as CreateTransaction.
	UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest, userID int64) (*dto.TransactionMutationResult, error)

	// DeleteTransaction deletes the transaction for a member.
	DeleteTransaction(ctx context.Context, transactionID, userID int64) error
}
