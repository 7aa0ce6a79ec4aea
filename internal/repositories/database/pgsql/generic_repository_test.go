package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMutationTagSingleRow(t *testing.T) {
	tag := pgconn.NewCommandTag("UPDATE 1")
	assert.NoError(t, checkMutationTag(tag, KindBudget))

	tag = pgconn.NewCommandTag("DELETE 1")
	assert.NoError(t, checkMutationTag(tag, KindTransaction))
}

func TestCheckMutationTagZeroRows(t *testing.T) {
	tag := pgconn.NewCommandTag("UPDATE 0")

	err := checkMutationTag(tag, KindBudget)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Budget does not exist", appErr.Message)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCheckMutationTagZeroRowsPerKindMessage(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindAccount, "Account does not exist"},
		{KindCategory, "Category does not exist"},
		{KindSubcategory, "Subcategory does not exist"},
		{KindTransaction, "Transaction does not exist"},
	}
	for _, tc := range cases {
		err := checkMutationTag(pgconn.NewCommandTag("DELETE 0"), tc.kind)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, tc.want, appErr.Message)
	}
}

func TestCheckMutationTagMultipleRows(t *testing.T) {
	tag := pgconn.NewCommandTag("UPDATE 3")

	err := checkMutationTag(tag, KindCategory)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.StatusCode)
	// Caller sees the generic message; the detail stays internal.
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.Contains(t, appErr.Err.Error(), "fix the categories query")
}
