package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// categoryService implements the CategorySvc interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
	permission   portssvc.PermissionSvc
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, permission portssvc.PermissionSvc) portssvc.CategorySvc {
	return &categoryService{
		categoryRepo: categoryRepo,
		permission:   permission,
	}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID int64) (int64, error) {
	ok, err := s.permission.HasPermissionToEditBudget(ctx, userID, req.BudgetID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed", slog.Int64("budget_id", req.BudgetID))
		return 0, err
	}
	if !ok {
		return 0, apperrors.NewForbiddenError("Access denied")
	}

	category := domain.Category{
		Description: req.Description,
		IsIncome:    req.IsIncome,
		BudgetID:    req.BudgetID,
	}
	categoryID, err := s.categoryRepo.CreateCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.Int64("budget_id", req.BudgetID))
		return 0, err
	}
	s.LogInfo(ctx, "Category created", slog.Int64("category_id", categoryID), slog.Int64("budget_id", req.BudgetID))
	return categoryID, nil
}

func (s *categoryService) GetCategoryWithSubcategories(ctx context.Context, categoryID, userID int64) (*domain.CategoryWithSubcategories, error) {
	if err := s.authorize(ctx, userID, categoryID); err != nil {
		return nil, err
	}
	return s.categoryRepo.FindCategoryWithSubcategories(ctx, categoryID)
}

func (s *categoryService) ListCategoriesByBudget(ctx context.Context, budgetID, userID int64) ([]domain.Category, error) {
	ok, err := s.permission.HasPermissionToEditBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return s.categoryRepo.ListCategoriesByBudgetID(ctx, budgetID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest, userID int64) error {
	if err := s.authorize(ctx, userID, categoryID); err != nil {
		return err
	}

	category := domain.Category{
		CategoryID:  categoryID,
		Description: req.Description,
		IsIncome:    req.IsIncome,
	}
	return s.categoryRepo.UpdateCategory(ctx, category)
}

// DeleteCategory refuses the delete while any transaction still resolves
// under the category through one of its subcategories.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	if err := s.authorize(ctx, userID, categoryID); err != nil {
		return err
	}

	hasTransactions, err := s.categoryRepo.HasTransactions(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category transactions", slog.Int64("category_id", categoryID))
		return err
	}
	if hasTransactions {
		return apperrors.NewForbiddenError("Make sure none of the current transactions are in this category before deleting it")
	}

	return s.categoryRepo.RemoveCategoryByID(ctx, categoryID)
}

func (s *categoryService) authorize(ctx context.Context, userID, categoryID int64) error {
	ok, err := s.permission.HasPermissionToEditCategory(ctx, userID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed",
			slog.Int64("user_id", userID),
			slog.Int64("category_id", categoryID))
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("Access denied")
	}
	return nil
}
