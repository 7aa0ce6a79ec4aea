package dto

import (
	"time"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Transaction DTOs ---

// CreateTransactionRequest defines data for creating a new transaction.
type CreateTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date" binding:"required"`
	AccountID     int64           `json:"accountId" binding:"required"`
	SubcategoryID int64           `json:"subcategoryId" binding:"required"`
}

// UpdateTransactionRequest defines the replaceable transaction fields.
type UpdateTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date" binding:"required"`
	AccountID     int64           `json:"accountId" binding:"required"`
	SubcategoryID int64           `json:"subcategoryId" binding:"required"`
}

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	AccountID     int64           `json:"accountID"`
	SubcategoryID int64           `json:"subcategoryID"`
}

// ToTransactionResponse converts domain.Transaction to DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Amount:        t.Amount,
		Description:   t.Description,
		Date:          t.Date,
		AccountID:     t.AccountID,
		SubcategoryID: t.SubcategoryID,
	}
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to DTO.
func ToListTransactionsResponse(ts []domain.Transaction) ListTransactionsResponse {
	list := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: list}
}

// TransactionMutationResult reports the outcome of a transaction create or
// update. The mutation itself has already succeeded; BalanceErr records the
// best-effort balance recompute failing, which never downgrades the primary
// result.
type TransactionMutationResult struct {
	TransactionID  int64
	CurrentBalance *decimal.Decimal
	BalanceErr     error
}
