package dto

import (
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
)

// --- Subcategory DTOs ---

// CreateSubcategoryRequest defines data for creating a new subcategory.
type CreateSubcategoryRequest struct {
	Description string `json:"description" binding:"required"`
	CategoryID  int64  `json:"categoryId" binding:"required"`
}

// UpdateSubcategoryRequest defines the replaceable subcategory fields.
type UpdateSubcategoryRequest struct {
	Description string `json:"description" binding:"required"`
}

// SubcategoryResponse defines data returned for a subcategory.
type SubcategoryResponse struct {
	SubcategoryID int64  `json:"subcategoryID"`
	Description   string `json:"description"`
	CategoryID    int64  `json:"categoryID"`
}

// ToSubcategoryResponse converts domain.Subcategory to DTO.
func ToSubcategoryResponse(s *domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		SubcategoryID: s.SubcategoryID,
		Description:   s.Description,
		CategoryID:    s.CategoryID,
	}
}

// ListSubcategoriesResponse wraps a list of subcategories.
type ListSubcategoriesResponse struct {
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// ToListSubcategoriesResponse converts a slice of domain.Subcategory to DTO.
func ToListSubcategoriesResponse(ss []domain.Subcategory) ListSubcategoriesResponse {
	list := make([]SubcategoryResponse, len(ss))
	for i, s := range ss {
		list[i] = ToSubcategoryResponse(&s)
	}
	return ListSubcategoriesResponse{Subcategories: list}
}
