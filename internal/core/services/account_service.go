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

// accountService implements the AccountSvc interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	permission  portssvc.PermissionSvc
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, permission portssvc.PermissionSvc) portssvc.AccountSvc {
	return &accountService{
		accountRepo: accountRepo,
		permission:  permission,
	}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID int64) (int64, error) {
	ok, err := s.permission.HasPermissionToEditBudget(ctx, userID, req.BudgetID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed", slog.Int64("budget_id", req.BudgetID))
		return 0, err
	}
	if !ok {
		return 0, apperrors.NewForbiddenError("Access denied")
	}

	account := domain.Account{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		StartBalance: req.StartBalance,
		BudgetID:     req.BudgetID,
	}
	accountID, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.Int64("budget_id", req.BudgetID))
		return 0, err
	}
	s.LogInfo(ctx, "Account created", slog.Int64("account_id", accountID), slog.Int64("budget_id", req.BudgetID))
	return accountID, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID, userID int64) (*domain.Account, error) {
	if err := s.authorize(ctx, userID, accountID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.NewNotFoundError("Account does not exist")
	}

	balance, err := s.accountRepo.CurrentBalance(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute current balance", slog.Int64("account_id", accountID))
		return nil, err
	}
	account.CurrentBalance = &balance
	return account, nil
}

func (s *accountService) ListAccountsByBudget(ctx context.Context, budgetID, userID int64) ([]domain.Account, error) {
	ok, err := s.permission.HasPermissionToEditBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return s.accountRepo.ListAccountsByBudgetID(ctx, budgetID)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest, userID int64) error {
	if err := s.authorize(ctx, userID, accountID); err != nil {
		return err
	}

	account := domain.Account{
		AccountID:    accountID,
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		StartBalance: req.StartBalance,
	}
	return s.accountRepo.UpdateAccount(ctx, account)
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	if err := s.authorize(ctx, userID, accountID); err != nil {
		return err
	}
	return s.accountRepo.RemoveAccountByID(ctx, accountID)
}

func (s *accountService) authorize(ctx context.Context, userID, accountID int64) error {
	ok, err := s.permission.HasPermissionToEditAccount(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed",
			slog.Int64("user_id", userID),
			slog.Int64("account_id", accountID))
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("Access denied")
	}
	return nil
}
