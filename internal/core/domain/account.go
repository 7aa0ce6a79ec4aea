package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a money account inside a budget.
// CurrentBalance is never stored: it is the start balance plus the signed sum
// of the account's transactions, recomputed on read.
type Account struct {
	AccountID    int64           `json:"accountID"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	StartDate    time.Time       `json:"startDate"`
	StartBalance decimal.Decimal `json:"startBalance"`
	BudgetID     int64           `json:"budgetID"`

	// Derived; populated only by balance-aware reads
	CurrentBalance *decimal.Decimal `json:"currentBalance,omitempty"`
}
