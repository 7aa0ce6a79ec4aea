package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_planner_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	GenericRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{GenericRepository: NewGenericRepository(pool)}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Name:         m.Name,
		Description:  m.Description,
		StartDate:    m.StartDate,
		StartBalance: m.StartBalance,
		BudgetID:     m.BudgetID,
	}
}

func toDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = toDomainAccount(m)
	}
	return ds
}

// CreateAccount inserts the account. Field order matches the create query's
// parameters: name, description, start date, start balance, budget id.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (int64, error) {
	return createRow(ctx, &r.GenericRepository, KindAccount,
		account.Name,
		account.Description,
		account.StartDate,
		account.StartBalance,
		account.BudgetID,
	)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	m, err := findRowByID[models.Account](ctx, &r.GenericRepository, KindAccount, accountID)
	if err != nil || m == nil {
		return nil, err
	}
	a := toDomainAccount(*m)
	return &a, nil
}

func (r *PgxAccountRepository) ListAccountsByBudgetID(ctx context.Context, budgetID int64) ([]domain.Account, error) {
	ms, err := findRowsByParent[models.Account](ctx, &r.GenericRepository, KindAccount, budgetID)
	if err != nil {
		return nil, err
	}
	return toDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) ListAccountsByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	ms, err := findRowsByUserID[models.Account](ctx, &r.GenericRepository, KindAccount, userID)
	if err != nil {
		return nil, err
	}
	return toDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return updateRow(ctx, &r.GenericRepository, KindAccount, account.AccountID,
		account.Name,
		account.Description,
		account.StartDate,
		account.StartBalance,
	)
}

func (r *PgxAccountRepository) RemoveAccountByID(ctx context.Context, accountID int64) error {
	return removeRowByID(ctx, &r.GenericRepository, KindAccount, accountID)
}

func (r *PgxAccountRepository) CheckUserPermissions(ctx context.Context, accountID, userID int64) (bool, error) {
	return r.queryExists(ctx, KindAccount, "check_user_permissions", accountID, userID)
}

// CurrentBalance derives the balance as start balance plus the signed sum of
// the account's transactions. An absent account is NotFound.
func (r *PgxAccountRepository) CurrentBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	sqlText, err := r.queries.Get(KindAccount, "current_balance")
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, sqlText, accountID).Scan(&balance); err != nil {
		return decimal.Zero, apperrors.NewInternalError(fmt.Errorf("failed to compute balance for account %d: %w", accountID, err))
	}
	return balance, nil
}
