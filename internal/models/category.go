package models

// Category is the database row shape for the categories table.
type Category struct {
	CategoryID  int64  `db:"id"`
	Description string `db:"description"`
	IsIncome    bool   `db:"is_income"`
	BudgetID    int64  `db:"budget_id"`
}

// Subcategory is the database row shape for the subcategories table.
type Subcategory struct {
	SubcategoryID int64  `db:"id"`
	Description   string `db:"description"`
	CategoryID    int64  `db:"category_id"`
}
