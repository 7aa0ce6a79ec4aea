package domain

import "time"

// Budget is the top-level container scoping accounts, categories and
// transactions. A budget is shared by its members; membership is what every
// permission check bottoms out on.
type Budget struct {
	BudgetID    int64  `json:"budgetID"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserBudget represents the membership of a User in a Budget.
type UserBudget struct {
	UserID   int64     `json:"userID"`
	BudgetID int64     `json:"budgetID"`
	JoinedAt time.Time `json:"joinedAt"`
}

// BudgetWithAccounts is the aggregate read of a budget and its accounts,
// keyed by account ID.
type BudgetWithAccounts struct {
	Budget
	Accounts map[int64]Account `json:"accounts"`
}
