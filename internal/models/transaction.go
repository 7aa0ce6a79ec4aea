package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row shape for the transactions table.
type Transaction struct {
	TransactionID int64           `db:"id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	AccountID     int64           `db:"account_id"`
	SubcategoryID int64           `db:"subcategory_id"`
}
