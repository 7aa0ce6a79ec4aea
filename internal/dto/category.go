package dto

import (
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// --- Category DTOs ---

// CreateCategoryRequest defines data for creating a new category.
type CreateCategoryRequest struct {
	Description string `json:"description" binding:"required"`
	IsIncome    bool   `json:"isIncome"`
	BudgetID    int64  `json:"budgetId" binding:"required"`
}

// UpdateCategoryRequest defines the replaceable category fields.
type UpdateCategoryRequest struct {
	Description string `json:"description" binding:"required"`
	IsIncome    bool   `json:"isIncome"`
}

// CategoryResponse defines data returned for a category.
type CategoryResponse struct {
	CategoryID  int64  `json:"categoryID"`
	Description string `json:"description"`
	IsIncome    bool   `json:"isIncome"`
	BudgetID    int64  `json:"budgetID"`
}

// ToCategoryResponse converts domain.Category to DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Description: c.Description,
		IsIncome:    c.IsIncome,
		BudgetID:    c.BudgetID,
	}
}

// ListCategoriesResponse wraps a list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts a slice of domain.Category to DTO.
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	list := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: list}
}

// CategoryWithSubcategoriesResponse is the aggregate response of a category
// with its subcategories keyed by subcategory ID.
type CategoryWithSubcategoriesResponse struct {
	CategoryResponse
	Subcategories map[int64]SubcategoryResponse `json:"subcategories"`
}

// ToCategoryWithSubcategoriesResponse converts the aggregate to DTO.
func ToCategoryWithSubcategoriesResponse(c *domain.CategoryWithSubcategories) CategoryWithSubcategoriesResponse {
	subs := make(map[int64]SubcategoryResponse, len(c.Subcategories))
	for id, s := range c.Subcategories {
		subs[id] = ToSubcategoryResponse(&s)
	}
	return CategoryWithSubcategoriesResponse{
		CategoryResponse: ToCategoryResponse(&c.Category),
		Subcategories:    subs,
	}
}
