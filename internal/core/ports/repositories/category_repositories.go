package repositories

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// CategoryRepository defines operations for category data.
type CategoryRepository interface {
	// FindCategoryByID retrieves a category by its ID, or nil when absent.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// FindCategoryWithSubcategories retrieves a category and its subcategories
	// as one aggregate.
	FindCategoryWithSubcategories(ctx context.Context, categoryID int64) (*domain.CategoryWithSubcategories, error)

	// ListCategoriesByBudgetID retrieves all categories in a budget.
	ListCategoriesByBudgetID(ctx context.Context, budgetID int64) ([]domain.Category, error)

	// ListCategoriesByUserID retrieves all categories reachable from the user's budgets.
	ListCategoriesByUserID(ctx context.Context, userID int64) ([]domain.Category, error)

	// CreateCategory persists a new category and returns the generated identifier.
	CreateCategory(ctx context.Context, category domain.Category) (int64, error)

	// UpdateCategory replaces the category's fields.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// RemoveCategoryByID deletes the category.
	RemoveCategoryByID(ctx context.Context, categoryID int64) error

	// HasTransactions reports whether any transaction resolves under the category.
	HasTransactions(ctx context.Context, categoryID int64) (bool, error)

	// CheckUserPermissions reports whether the category belongs to one of the
	// user's budgets.
	CheckUserPermissions(ctx context.Context, categoryID, userID int64) (bool, error)
}

// SubcategoryRepository defines operations for subcategory data.
type SubcategoryRepository interface {
	// FindSubcategoryByID retrieves a subcategory by its ID, or nil when absent.
	FindSubcategoryByID(ctx context.Context, subcategoryID int64) (*domain.Subcategory, error)

	// ListSubcategoriesByCategoryID retrieves all subcategories of a category.
	ListSubcategoriesByCategoryID(ctx context.Context, categoryID int64) ([]domain.Subcategory, error)

	// ListSubcategoriesByUserID retrieves all subcategories reachable from the user's budgets.
	ListSubcategoriesByUserID(ctx context.Context, userID int64) ([]domain.Subcategory, error)

	// CreateSubcategory persists a new subcategory and returns the generated identifier.
	CreateSubcategory(ctx context.Context, subcategory domain.Subcategory) (int64, error)

	// UpdateSubcategory replaces the subcategory's fields.
	UpdateSubcategory(ctx context.Context, subcategory domain.Subcategory) error

	// RemoveSubcategoryByID deletes the subcategory.
	RemoveSubcategoryByID(ctx context.Context, subcategoryID int64) error

	// HasTransactions reports whether any transaction is attached to the subcategory.
	HasTransactions(ctx context.Context, subcategoryID int64) (bool, error)

	// CheckUserPermissions reports whether the subcategory's category belongs
	// to one of the user's budgets.
	CheckUserPermissions(ctx context.Context, subcategoryID, userID int64) (bool, error)
}
