package services

import (
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/platform/config"
	"github.com/SscSPs/budget_planner_app/internal/repositories/database/pgsql"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *pgsql.RepositoryContainer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The permission service goes first: every entity service resolves
	// ownership through it.
	container.Permission = NewPermissionService(
		repos.Budget,
		repos.Account,
		repos.Category,
		repos.Subcategory,
		repos.Transaction,
	)

	container.Budget = NewBudgetService(repos.Budget, repos.User, container.Permission)
	container.Account = NewAccountService(repos.Account, container.Permission)
	container.Category = NewCategoryService(repos.Category, container.Permission)
	container.Subcategory = NewSubcategoryService(repos.Subcategory, container.Permission)
	container.Transaction = NewTransactionService(repos.Transaction, repos.Account, container.Permission)

	container.User = NewUserService(repos.User)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
