package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GenericRepository implements the five CRUD verbs once, parameterized by
// entity kind. Entity repositories embed it and add their typed wrappers and
// entity-specific queries on top.
type GenericRepository struct {
	BaseRepository
	queries *QueryStore
}

// NewGenericRepository creates a GenericRepository on the given pool.
func NewGenericRepository(pool *pgxpool.Pool) GenericRepository {
	return GenericRepository{
		BaseRepository: BaseRepository{Pool: pool},
		queries:        NewQueryStore(),
	}
}

// createRow inserts a row for the kind and returns the generated identifier.
// The value order must match the parameter order of the kind's create query.
func createRow(ctx context.Context, r *GenericRepository, kind Kind, values ...any) (int64, error) {
	sqlText, err := r.queries.Get(kind, opCreate)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.Pool.QueryRow(ctx, sqlText, values...).Scan(&id); err != nil {
		return 0, apperrors.NewInternalError(fmt.Errorf("failed to insert %s: %w", kind.Singular(), err))
	}
	return id, nil
}

// findRowByID returns the matching row scanned onto M, or nil when no row
// exists. Absence is a valid result, not an error.
func findRowByID[M any](ctx context.Context, r *GenericRepository, kind Kind, id int64) (*M, error) {
	sqlText, err := r.queries.Get(kind, opFindByID)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, sqlText, id)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to query %s by id: %w", kind.Singular(), err))
	}

	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to collect %s row: %w", kind.Singular(), err))
	}
	return &m, nil
}

// findRows runs a list query for the kind and collects the rows onto M.
// An empty result is a valid, non-error result.
func findRows[M any](ctx context.Context, r *GenericRepository, kind Kind, op string, args ...any) ([]M, error) {
	sqlText, err := r.queries.Get(kind, op)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to query %s: %w", kind.Plural(), err))
	}

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to collect %s rows: %w", kind.Plural(), err))
	}
	if ms == nil {
		ms = []M{}
	}
	return ms, nil
}

// findRowsByParent returns all rows of the kind under the given parent id.
func findRowsByParent[M any](ctx context.Context, r *GenericRepository, kind Kind, parentID int64) ([]M, error) {
	return findRows[M](ctx, r, kind, opFindAllByParent, parentID)
}

// findRowsByUserID returns all rows of the kind reachable from the user's budgets.
func findRowsByUserID[M any](ctx context.Context, r *GenericRepository, kind Kind, userID int64) ([]M, error) {
	return findRows[M](ctx, r, kind, opFindAllByUserID, userID)
}

// updateRow performs the keyed update for the kind. The id binds as $1, the
// remaining values in query parameter order after it.
func updateRow(ctx context.Context, r *GenericRepository, kind Kind, id int64, values ...any) error {
	sqlText, err := r.queries.Get(kind, opUpdate)
	if err != nil {
		return err
	}

	args := append([]any{id}, values...)
	tag, err := r.Pool.Exec(ctx, sqlText, args...)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("failed to update %s %d: %w", kind.Singular(), id, err))
	}
	return checkMutationTag(tag, kind)
}

// removeRowByID deletes the row for the kind, with the same affected-row
// guard as updateRow.
func removeRowByID(ctx context.Context, r *GenericRepository, kind Kind, id int64) error {
	sqlText, err := r.queries.Get(kind, opRemoveByID)
	if err != nil {
		return err
	}

	tag, err := r.Pool.Exec(ctx, sqlText, id)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("failed to delete %s %d: %w", kind.Singular(), id, err))
	}
	return checkMutationTag(tag, kind)
}

// checkMutationTag asserts that a keyed mutation affected exactly one row.
// Zero rows means the target does not exist; more than one means the query
// itself is wrong and must not be trusted.
func checkMutationTag(tag pgconn.CommandTag, kind Kind) error {
	switch n := tag.RowsAffected(); {
	case n == 0:
		return apperrors.NewNotFoundError(kind.Title() + " does not exist")
	case n > 1:
		return apperrors.NewIntegrityError("Multiple rows updated due to faulty query, fix the " + kind.Plural() + " query")
	}
	return nil
}

// queryExists runs an entity-specific EXISTS query and scans the boolean.
func (r *GenericRepository) queryExists(ctx context.Context, kind Kind, op string, args ...any) (bool, error) {
	sqlText, err := r.queries.Get(kind, op)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, sqlText, args...).Scan(&exists); err != nil {
		return false, apperrors.NewInternalError(fmt.Errorf("failed to run %s/%s: %w", kind.Plural(), op, err))
	}
	return exists, nil
}
