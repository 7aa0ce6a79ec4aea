package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database row shape for the accounts table.
// There is no current balance column; the balance is derived on read.
type Account struct {
	AccountID    int64           `db:"id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	StartDate    time.Time       `db:"start_date"`
	StartBalance decimal.Decimal `db:"start_balance"`
	BudgetID     int64           `db:"budget_id"`
}
