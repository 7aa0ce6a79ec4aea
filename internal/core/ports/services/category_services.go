package services

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// CategorySvc defines category operations.
type CategorySvc interface {
	// CreateCategory creates a category in a budget the user is a member of
	// and returns its ID.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID int64) (int64, error)

	// GetCategoryWithSubcategories retrieves the category aggregate for a member.
	GetCategoryWithSubcategories(ctx context.Context, categoryID, userID int64) (*domain.CategoryWithSubcategories, error)

	// ListCategoriesByBudget retrieves all categories in a budget for a member.
	ListCategoriesByBudget(ctx context.Context, budgetID, userID int64) ([]domain.Category, error)

	// UpdateCategory replaces the category's fields for a member.
	UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest, userID int64) error

	// DeleteCategory deletes the category for a member. The delete is refused
	// while any transaction still resolves under the category.
	DeleteCategory(ctx context.Context, categoryID, userID int64) error
}

// SubcategorySvc defines subcategory operations.
type SubcategorySvc interface {
	// CreateSubcategory creates a subcategory under a category the user may
	// edit and returns its ID.
	CreateSubcategory(ctx context.Context, req dto.CreateSubcategoryRequest, userID int64) (int64, error)

	// ListSubcategoriesByCategory retrieves all subcategories of a category for a member.
	ListSubcategoriesByCategory(ctx context.Context, categoryID, userID int64) ([]domain.Subcategory, error)

	// UpdateSubcategory replaces the subcategory's fields for a member.
	UpdateSubcategory(ctx context.Context, subcategoryID int64, req dto.UpdateSubcategoryRequest, userID int64) error

	// DeleteSubcategory deletes the subcategory for a member. The delete is
	// refused while any transaction is attached to the subcategory.
	DeleteSubcategory(ctx context.Context, subcategoryID, userID int64) error
}
