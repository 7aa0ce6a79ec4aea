package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// budgetService implements the BudgetSvc interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
	userRepo   portsrepo.UserRepository
	permission portssvc.PermissionSvc
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, userRepo portsrepo.UserRepository, permission portssvc.PermissionSvc) portssvc.BudgetSvc {
	return &budgetService{
		budgetRepo: budgetRepo,
		userRepo:   userRepo,
		permission: permission,
	}
}

var _ portssvc.BudgetSvc = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID int64) (int64, error) {
	budgetID, err := s.budgetRepo.CreateBudget(ctx, req.Title, req.Description, creatorUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to create budget", slog.Int64("user_id", creatorUserID))
		return 0, err
	}
	s.LogInfo(ctx, "Budget created", slog.Int64("budget_id", budgetID), slog.Int64("user_id", creatorUserID))
	return budgetID, nil
}

func (s *budgetService) ListUserBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.Int64("user_id", userID))
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) GetBudgetWithAccounts(ctx context.Context, budgetID, userID int64) (*domain.BudgetWithAccounts, error) {
	if err := s.authorize(ctx, userID, budgetID); err != nil {
		return nil, err
	}
	return s.budgetRepo.FindBudgetWithAccounts(ctx, budgetID)
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest, userID int64) error {
	if err := s.authorize(ctx, userID, budgetID); err != nil {
		return err
	}
	return s.budgetRepo.UpdateBudget(ctx, budgetID, req.Title, req.Description)
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID, userID int64) error {
	if err := s.authorize(ctx, userID, budgetID); err != nil {
		return err
	}
	return s.budgetRepo.RemoveBudgetByID(ctx, budgetID)
}

func (s *budgetService) AddUserToBudget(ctx context.Context, addingUserID, targetUserID, budgetID int64) error {
	if err := s.authorize(ctx, addingUserID, budgetID); err != nil {
		return err
	}

	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up user for budget membership", slog.Int64("target_user_id", targetUserID))
		return err
	}
	if target == nil {
		return apperrors.NewNotFoundError("User does not exist")
	}

	membership := domain.UserBudget{
		UserID:   targetUserID,
		BudgetID: budgetID,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.budgetRepo.AddUserToBudget(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to budget",
			slog.Int64("budget_id", budgetID),
			slog.Int64("target_user_id", targetUserID))
		return err
	}
	s.LogInfo(ctx, "User added to budget", slog.Int64("budget_id", budgetID), slog.Int64("target_user_id", targetUserID))
	return nil
}

// authorize fails with Forbidden unless the user is a member of the budget.
func (s *budgetService) authorize(ctx context.Context, userID, budgetID int64) error {
	ok, err := s.permission.HasPermissionToEditBudget(ctx, userID, budgetID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed",
			slog.Int64("user_id", userID),
			slog.Int64("budget_id", budgetID))
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("Access denied")
	}
	return nil
}
