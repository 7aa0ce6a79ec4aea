package repositories

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// TransactionRepository defines operations for transaction data.
type TransactionRepository interface {
	// FindTransactionByID retrieves a transaction by its ID, or nil when absent.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByAccountID retrieves all transactions of an account.
	ListTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error)

	// ListTransactionsByUserID retrieves all transactions reachable from the user's budgets.
	ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)

	// CreateTransaction persists a new transaction and returns the generated identifier.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// UpdateTransaction replaces the transaction's fields.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// RemoveTransactionByID deletes the transaction.
	RemoveTransactionByID(ctx context.Context, transactionID int64) error

	// CheckUserPermissions reports whether both the transaction's account and
	// subcategory chains resolve to budgets the user is a member of.
	CheckUserPermissions(ctx context.Context, transactionID, userID int64) (bool, error)
}
