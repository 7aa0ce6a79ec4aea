package models

import "time"

// Budget is the database row shape for the budgets table.
type Budget struct {
	BudgetID    int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
}

// UserBudget is the database row shape for the user_budgets membership table.
type UserBudget struct {
	UserID   int64     `db:"user_id"`
	BudgetID int64     `db:"budget_id"`
	JoinedAt time.Time `db:"joined_at"`
}
