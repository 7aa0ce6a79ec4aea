package domain

// Category groups subcategories inside a budget. IsIncome marks income
// categories apart from expense ones.
type Category struct {
	CategoryID  int64  `json:"categoryID"`
	Description string `json:"description"`
	IsIncome    bool   `json:"isIncome"`
	BudgetID    int64  `json:"budgetID"`
}

// Subcategory belongs to exactly one category and is the level transactions
// attach to.
type Subcategory struct {
	SubcategoryID int64  `json:"subcategoryID"`
	Description   string `json:"description"`
	CategoryID    int64  `json:"categoryID"`
}

// CategoryWithSubcategories is the aggregate read of a category and its
// subcategories, keyed by subcategory ID.
type CategoryWithSubcategories struct {
	Category
	Subcategories map[int64]Subcategory `json:"subcategories"`
}
