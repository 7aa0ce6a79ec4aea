package pgsql

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_planner_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubcategoryRepository struct {
	GenericRepository
}

// NewSubcategoryRepository creates a new repository for subcategory data.
func NewSubcategoryRepository(pool *pgxpool.Pool) portsrepo.SubcategoryRepository {
	return &PgxSubcategoryRepository{GenericRepository: NewGenericRepository(pool)}
}

// Ensure PgxSubcategoryRepository implements portsrepo.SubcategoryRepository
var _ portsrepo.SubcategoryRepository = (*PgxSubcategoryRepository)(nil)

func toDomainSubcategory(m models.Subcategory) domain.Subcategory {
	return domain.Subcategory{
		SubcategoryID: m.SubcategoryID,
		Description:   m.Description,
		CategoryID:    m.CategoryID,
	}
}

func toDomainSubcategorySlice(ms []models.Subcategory) []domain.Subcategory {
	ds := make([]domain.Subcategory, len(ms))
	for i, m := range ms {
		ds[i] = toDomainSubcategory(m)
	}
	return ds
}

func (r *PgxSubcategoryRepository) CreateSubcategory(ctx context.Context, subcategory domain.Subcategory) (int64, error) {
	return createRow(ctx, &r.GenericRepository, KindSubcategory,
		subcategory.Description,
		subcategory.CategoryID,
	)
}

func (r *PgxSubcategoryRepository) FindSubcategoryByID(ctx context.Context, subcategoryID int64) (*domain.Subcategory, error) {
	m, err := findRowByID[models.Subcategory](ctx, &r.GenericRepository, KindSubcategory, subcategoryID)
	if err != nil || m == nil {
		return nil, err
	}
	s := toDomainSubcategory(*m)
	return &s, nil
}

func (r *PgxSubcategoryRepository) ListSubcategoriesByCategoryID(ctx context.Context, categoryID int64) ([]domain.Subcategory, error) {
	ms, err := findRowsByParent[models.Subcategory](ctx, &r.GenericRepository, KindSubcategory, categoryID)
	if err != nil {
		return nil, err
	}
	return toDomainSubcategorySlice(ms), nil
}

func (r *PgxSubcategoryRepository) ListSubcategoriesByUserID(ctx context.Context, userID int64) ([]domain.Subcategory, error) {
	ms, err := findRowsByUserID[models.Subcategory](ctx, &r.GenericRepository, KindSubcategory, userID)
	if err != nil {
		return nil, err
	}
	return toDomainSubcategorySlice(ms), nil
}

func (r *PgxSubcategoryRepository) UpdateSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	return updateRow(ctx, &r.GenericRepository, KindSubcategory, subcategory.SubcategoryID,
		subcategory.Description,
	)
}

func (r *PgxSubcategoryRepository) RemoveSubcategoryByID(ctx context.Context, subcategoryID int64) error {
	return removeRowByID(ctx, &r.GenericRepository, KindSubcategory, subcategoryID)
}

func (r *PgxSubcategoryRepository) HasTransactions(ctx context.Context, subcategoryID int64) (bool, error) {
	return r.queryExists(ctx, KindSubcategory, "has_transactions", subcategoryID)
}

func (r *PgxSubcategoryRepository) CheckUserPermissions(ctx context.Context, subcategoryID, userID int64) (bool, error) {
	return r.queryExists(ctx, KindSubcategory, "check_user_permissions", subcategoryID, userID)
}
