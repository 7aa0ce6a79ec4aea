package pgsql

import (
	"context"

	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_planner_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	GenericRepository
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{GenericRepository: NewGenericRepository(pool)}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		AccountID:     m.AccountID,
		SubcategoryID: m.SubcategoryID,
	}
}

func toDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = toDomainTransaction(m)
	}
	return ds
}

func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	return createRow(ctx, &r.GenericRepository, KindTransaction,
		txn.Amount,
		txn.Description,
		txn.Date,
		txn.AccountID,
		txn.SubcategoryID,
	)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	m, err := findRowByID[models.Transaction](ctx, &r.GenericRepository, KindTransaction, transactionID)
	if err != nil || m == nil {
		return nil, err
	}
	t := toDomainTransaction(*m)
	return &t, nil
}

func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	ms, err := findRowsByParent[models.Transaction](ctx, &r.GenericRepository, KindTransaction, accountID)
	if err != nil {
		return nil, err
	}
	return toDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	ms, err := findRowsByUserID[models.Transaction](ctx, &r.GenericRepository, KindTransaction, userID)
	if err != nil {
		return nil, err
	}
	return toDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return updateRow(ctx, &r.GenericRepository, KindTransaction, txn.TransactionID,
		txn.Amount,
		txn.Description,
		txn.Date,
		txn.AccountID,
		txn.SubcategoryID,
	)
}

func (r *PgxTransactionRepository) RemoveTransactionByID(ctx context.Context, transactionID int64) error {
	return removeRowByID(ctx, &r.GenericRepository, KindTransaction, transactionID)
}

// CheckUserPermissions spans the full ownership chain: the transaction's
// account and its subcategory's category must both resolve to budgets the
// user is a member of.
func (r *PgxTransactionRepository) CheckUserPermissions(ctx context.Context, transactionID, userID int64) (bool, error) {
	return r.queryExists(ctx, KindTransaction, "check_user_permissions", transactionID, userID)
}
