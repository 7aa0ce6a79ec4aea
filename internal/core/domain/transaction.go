package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a signed money movement on an account, classified by a
// subcategory. Expenses carry negative amounts, income positive ones.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	AccountID     int64           `json:"accountID"`
	SubcategoryID int64           `json:"subcategoryID"`
}
