package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_planner_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	GenericRepository
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{GenericRepository: NewGenericRepository(pool)}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepository
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Description: m.Description,
		IsIncome:    m.IsIncome,
		BudgetID:    m.BudgetID,
	}
}

func toDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = toDomainCategory(m)
	}
	return ds
}

func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (int64, error) {
	return createRow(ctx, &r.GenericRepository, KindCategory,
		category.Description,
		category.IsIncome,
		category.BudgetID,
	)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	m, err := findRowByID[models.Category](ctx, &r.GenericRepository, KindCategory, categoryID)
	if err != nil || m == nil {
		return nil, err
	}
	c := toDomainCategory(*m)
	return &c, nil
}

func (r *PgxCategoryRepository) ListCategoriesByBudgetID(ctx context.Context, budgetID int64) ([]domain.Category, error) {
	ms, err := findRowsByParent[models.Category](ctx, &r.GenericRepository, KindCategory, budgetID)
	if err != nil {
		return nil, err
	}
	return toDomainCategorySlice(ms), nil
}

func (r *PgxCategoryRepository) ListCategoriesByUserID(ctx context.Context, userID int64) ([]domain.Category, error) {
	ms, err := findRowsByUserID[models.Category](ctx, &r.GenericRepository, KindCategory, userID)
	if err != nil {
		return nil, err
	}
	return toDomainCategorySlice(ms), nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return updateRow(ctx, &r.GenericRepository, KindCategory, category.CategoryID,
		category.Description,
		category.IsIncome,
	)
}

func (r *PgxCategoryRepository) RemoveCategoryByID(ctx context.Context, categoryID int64) error {
	return removeRowByID(ctx, &r.GenericRepository, KindCategory, categoryID)
}

func (r *PgxCategoryRepository) HasTransactions(ctx context.Context, categoryID int64) (bool, error) {
	return r.queryExists(ctx, KindCategory, "has_transactions", categoryID)
}

func (r *PgxCategoryRepository) CheckUserPermissions(ctx context.Context, categoryID, userID int64) (bool, error) {
	return r.queryExists(ctx, KindCategory, "check_user_permissions", categoryID, userID)
}

// FindCategoryWithSubcategories reads the category-with-subcategories join
// and reshapes the flat rows into the aggregate, subcategories keyed by ID.
func (r *PgxCategoryRepository) FindCategoryWithSubcategories(ctx context.Context, categoryID int64) (*domain.CategoryWithSubcategories, error) {
	sqlText, err := r.queries.Get(KindCategory, "find_by_id_with_subcategories")
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, sqlText, categoryID)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to query category %d with subcategories: %w", categoryID, err))
	}
	defer rows.Close()

	var result *domain.CategoryWithSubcategories
	for rows.Next() {
		var (
			cID             int64
			description     string
			isIncome        bool
			budgetID        int64
			subcategoryID   *int64
			subcategoryDesc *string
		)
		if err := rows.Scan(&cID, &description, &isIncome, &budgetID, &subcategoryID, &subcategoryDesc); err != nil {
			return nil, apperrors.NewInternalError(fmt.Errorf("failed to scan category with subcategories row: %w", err))
		}

		if result == nil {
			result = &domain.CategoryWithSubcategories{
				Category:      domain.Category{CategoryID: cID, Description: description, IsIncome: isIncome, BudgetID: budgetID},
				Subcategories: make(map[int64]domain.Subcategory),
			}
		}

		if subcategoryID != nil {
			result.Subcategories[*subcategoryID] = domain.Subcategory{
				SubcategoryID: *subcategoryID,
				Description:   *subcategoryDesc,
				CategoryID:    cID,
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("error iterating category with subcategories rows: %w", err))
	}

	if result == nil {
		return nil, apperrors.NewNotFoundError("Category does not exist")
	}
	return result, nil
}
