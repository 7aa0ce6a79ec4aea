package pgsql

import (
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles all pgsql repositories for wiring in main.
type RepositoryContainer struct {
	Budget      portsrepo.BudgetRepository
	Account     portsrepo.AccountRepository
	Category    portsrepo.CategoryRepository
	Subcategory portsrepo.SubcategoryRepository
	Transaction portsrepo.TransactionRepository
	User        portsrepo.UserRepository
}

// NewRepositoryContainer creates all repositories on the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Budget:      NewBudgetRepository(pool),
		Account:     NewAccountRepository(pool),
		Category:    NewCategoryRepository(pool),
		Subcategory: NewSubcategoryRepository(pool),
		Transaction: NewTransactionRepository(pool),
		User:        NewUserRepository(pool),
	}
}
