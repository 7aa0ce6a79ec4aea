package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_planner_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBudgetRepository struct {
	GenericRepository
}

// NewBudgetRepository creates a new repository for budget data.
func NewBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{GenericRepository: NewGenericRepository(pool)}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepository
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		Title:       m.Title,
		Description: m.Description,
	}
}

func toDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = toDomainBudget(m)
	}
	return ds
}

// CreateBudget inserts the budget and the creator's membership in one
// transaction so a budget can never exist without at least one member.
func (r *PgxBudgetRepository) CreateBudget(ctx context.Context, title, description string, creatorUserID int64) (int64, error) {
	createSQL, err := r.queries.Get(KindBudget, opCreate)
	if err != nil {
		return 0, err
	}
	addUserSQL, err := r.queries.Get(KindBudget, "add_user")
	if err != nil {
		return 0, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var budgetID int64
	if err := tx.QueryRow(ctx, createSQL, title, description).Scan(&budgetID); err != nil {
		return 0, apperrors.NewInternalError(fmt.Errorf("failed to insert budget: %w", err))
	}

	if _, err := tx.Exec(ctx, addUserSQL, creatorUserID, budgetID, time.Now().UTC()); err != nil {
		return 0, apperrors.NewInternalError(fmt.Errorf("failed to add creator to budget %d: %w", budgetID, err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return budgetID, nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	m, err := findRowByID[models.Budget](ctx, &r.GenericRepository, KindBudget, budgetID)
	if err != nil || m == nil {
		return nil, err
	}
	b := toDomainBudget(*m)
	return &b, nil
}

func (r *PgxBudgetRepository) ListBudgetsByUserID(ctx context.Context, userID int64) ([]domain.Budget, error) {
	ms, err := findRowsByUserID[models.Budget](ctx, &r.GenericRepository, KindBudget, userID)
	if err != nil {
		return nil, err
	}
	return toDomainBudgetSlice(ms), nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budgetID int64, title, description string) error {
	return updateRow(ctx, &r.GenericRepository, KindBudget, budgetID, title, description)
}

func (r *PgxBudgetRepository) RemoveBudgetByID(ctx context.Context, budgetID int64) error {
	return removeRowByID(ctx, &r.GenericRepository, KindBudget, budgetID)
}

func (r *PgxBudgetRepository) AddUserToBudget(ctx context.Context, membership domain.UserBudget) error {
	sqlText, err := r.queries.Get(KindBudget, "add_user")
	if err != nil {
		return err
	}

	_, err = r.Pool.Exec(ctx, sqlText, membership.UserID, membership.BudgetID, membership.JoinedAt)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("failed to add user %d to budget %d: %w", membership.UserID, membership.BudgetID, err))
	}
	return nil
}

func (r *PgxBudgetRepository) CheckUserPermissions(ctx context.Context, budgetID, userID int64) (bool, error) {
	return r.queryExists(ctx, KindBudget, "check_user_permissions", budgetID, userID)
}

// FindBudgetWithAccounts reads the budget-with-accounts join and reshapes the
// flat rows into the aggregate, accounts keyed by their ID. The budget
// columns repeat per row; the account columns are NULL when the budget has no
// accounts.
func (r *PgxBudgetRepository) FindBudgetWithAccounts(ctx context.Context, budgetID int64) (*domain.BudgetWithAccounts, error) {
	sqlText, err := r.queries.Get(KindBudget, "find_by_id_with_accounts")
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, sqlText, budgetID)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to query budget %d with accounts: %w", budgetID, err))
	}
	defer rows.Close()

	var result *domain.BudgetWithAccounts
	for rows.Next() {
		var (
			bID          int64
			title        string
			description  string
			accountID    *int64
			name         *string
			accountDesc  *string
			startDate    *time.Time
			startBalance decimal.NullDecimal
		)
		if err := rows.Scan(&bID, &title, &description, &accountID, &name, &accountDesc, &startDate, &startBalance); err != nil {
			return nil, apperrors.NewInternalError(fmt.Errorf("failed to scan budget with accounts row: %w", err))
		}

		if result == nil {
			result = &domain.BudgetWithAccounts{
				Budget:   domain.Budget{BudgetID: bID, Title: title, Description: description},
				Accounts: make(map[int64]domain.Account),
			}
		}

		if accountID != nil {
			result.Accounts[*accountID] = domain.Account{
				AccountID:    *accountID,
				Name:         *name,
				Description:  *accountDesc,
				StartDate:    *startDate,
				StartBalance: startBalance.Decimal,
				BudgetID:     bID,
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("error iterating budget with accounts rows: %w", err))
	}

	if result == nil {
		return nil, apperrors.NewNotFoundError("Budget does not exist")
	}
	return result, nil
}
