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

// subcategoryService implements the SubcategorySvc interface
type subcategoryService struct {
	BaseService
	subcategoryRepo portsrepo.SubcategoryRepository
	permission      portssvc.PermissionSvc
}

// NewSubcategoryService creates a new subcategory service.
func NewSubcategoryService(subcategoryRepo portsrepo.SubcategoryRepository, permission portssvc.PermissionSvc) portssvc.SubcategorySvc {
	return &subcategoryService{
		subcategoryRepo: subcategoryRepo,
		permission:      permission,
	}
}

var _ portssvc.SubcategorySvc = (*subcategoryService)(nil)

func (s *subcategoryService) CreateSubcategory(ctx context.Context, req dto.CreateSubcategoryRequest, userID int64) (int64, error) {
	ok, err := s.permission.HasPermissionToEditCategory(ctx, userID, req.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed", slog.Int64("category_id", req.CategoryID))
		return 0, err
	}
	if !ok {
		return 0, apperrors.NewForbiddenError("Access denied")
	}

	subcategory := domain.Subcategory{
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	subcategoryID, err := s.subcategoryRepo.CreateSubcategory(ctx, subcategory)
	if err != nil {
		s.LogError(ctx, err, "Failed to create subcategory", slog.Int64("category_id", req.CategoryID))
		return 0, err
	}
	s.LogInfo(ctx, "Subcategory created", slog.Int64("subcategory_id", subcategoryID), slog.Int64("category_id", req.CategoryID))
	return subcategoryID, nil
}

func (s *subcategoryService) ListSubcategoriesByCategory(ctx context.Context, categoryID, userID int64) ([]domain.Subcategory, error) {
	ok, err := s.permission.HasPermissionToEditCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return s.subcategoryRepo.ListSubcategoriesByCategoryID(ctx, categoryID)
}

func (s *subcategoryService) UpdateSubcategory(ctx context.Context, subcategoryID int64, req dto.UpdateSubcategoryRequest, userID int64) error {
	if err := s.authorize(ctx, userID, subcategoryID); err != nil {
		return err
	}

	subcategory := domain.Subcategory{
		SubcategoryID: subcategoryID,
		Description:   req.Description,
	}
	return s.subcategoryRepo.UpdateSubcategory(ctx, subcategory)
}

// DeleteSubcategory refuses the delete while any transaction is still
// attached to the subcategory.
func (s *subcategoryService) DeleteSubcategory(ctx context.Context, subcategoryID, userID int64) error {
	if err := s.authorize(ctx, userID, subcategoryID); err != nil {
		return err
	}

	hasTransactions, err := s.subcategoryRepo.HasTransactions(ctx, subcategoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check subcategory transactions", slog.Int64("subcategory_id", subcategoryID))
		return err
	}
	if hasTransactions {
		return apperrors.NewForbiddenError("Make sure none of the current transactions are in this subcategory before deleting it")
	}

	return s.subcategoryRepo.RemoveSubcategoryByID(ctx, subcategoryID)
}

func (s *subcategoryService) authorize(ctx context.Context, userID, subcategoryID int64) error {
	ok, err := s.permission.HasPermissionToEditSubcategory(ctx, userID, subcategoryID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed",
			slog.Int64("user_id", userID),
			slog.Int64("subcategory_id", subcategoryID))
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("Access denied")
	}
	return nil
}
