package services

import (
	"context"

	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// permissionService resolves edit rights by delegating each entity's
// ownership edge to the owning repository.
type permissionService struct {
	BaseService
	budgetRepo      portsrepo.BudgetMembershipManager
	accountRepo     portsrepo.AccountPermissionChecker
	categoryRepo    portsrepo.CategoryRepository
	subcategoryRepo portsrepo.SubcategoryRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewPermissionService creates the permission service over the entity repositories.
func NewPermissionService(
	budgetRepo portsrepo.BudgetMembershipManager,
	accountRepo portsrepo.AccountPermissionChecker,
	categoryRepo portsrepo.CategoryRepository,
	subcategoryRepo portsrepo.SubcategoryRepository,
	transactionRepo portsrepo.TransactionRepository,
) portssvc.PermissionSvc {
	return &permissionService{
		budgetRepo:      budgetRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.PermissionSvc = (*permissionService)(nil)

func (s *permissionService) HasPermissionToEditBudget(ctx context.Context, userID, budgetID int64) (bool, error) {
	return s.budgetRepo.CheckUserPermissions(ctx, budgetID, userID)
}

func (s *permissionService) HasPermissionToEditAccount(ctx context.Context, userID, accountID int64) (bool, error) {
	return s.accountRepo.CheckUserPermissions(ctx, accountID, userID)
}

func (s *permissionService) HasPermissionToEditCategory(ctx context.Context, userID, categoryID int64) (bool, error) {
	return s.categoryRepo.CheckUserPermissions(ctx, categoryID, userID)
}

func (s *permissionService) HasPermissionToEditSubcategory(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	return s.subcategoryRepo.CheckUserPermissions(ctx, subcategoryID, userID)
}

func (s *permissionService) HasPermissionToEditTransaction(ctx context.Context, userID, transactionID int64) (bool, error) {
	return s.transactionRepo.CheckUserPermissions(ctx, transactionID, userID)
}

// CanEditTransactionParents requires membership over both the account chain
// and the subcategory chain. The two lookups are independent, so they run
// concurrently.
func (s *permissionService) CanEditTransactionParents(ctx context.Context, userID, accountID, subcategoryID int64) (bool, error) {
	var canEditAccount, canEditSubcategory bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := s.accountRepo.CheckUserPermissions(gctx, accountID, userID)
		canEditAccount = ok
		return err
	})
	g.Go(func() error {
		ok, err := s.subcategoryRepo.CheckUserPermissions(gctx, subcategoryID, userID)
		canEditSubcategory = ok
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to resolve transaction parent permissions")
		return false, err
	}

	return canEditAccount && canEditSubcategory, nil
}
