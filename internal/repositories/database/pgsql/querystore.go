package pgsql

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
)

//go:embed queries
var queryFS embed.FS

// Operation names shared by every entity kind. Entity-specific operations
// (permission joins, existence checks) use their own file names.
const (
	opCreate          = "create"
	opFindByID        = "find_by_id"
	opFindAllByParent = "find_all_by_parent"
	opFindAllByUserID = "find_all_by_user_id"
	opUpdate          = "update"
	opRemoveByID      = "remove_by_id"
)

// QueryStore resolves (kind, operation) pairs to SQL statements embedded
// under queries/{plural}/{operation}.sql. Statements only ever bind values
// as positional parameters; caller input is never concatenated into them.
type QueryStore struct {
	mu    sync.RWMutex
	cache map[string]string
}

// NewQueryStore creates an empty query store backed by the embedded files.
func NewQueryStore() *QueryStore {
	return &QueryStore{cache: make(map[string]string)}
}

// Get returns the SQL statement for the given kind and operation.
// A missing statement is an infrastructure failure: the detail is preserved
// for logs but masked from callers.
func (s *QueryStore) Get(kind Kind, op string) (string, error) {
	key := kind.Plural() + "/" + op

	s.mu.RLock()
	sqlText, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return sqlText, nil
	}

	raw, err := queryFS.ReadFile("queries/" + key + ".sql")
	if err != nil {
		return "", apperrors.NewInternalError(fmt.Errorf("query %s not found: %w", key, err))
	}

	sqlText = strings.TrimSpace(string(raw))
	if sqlText == "" {
		return "", apperrors.NewInternalError(fmt.Errorf("query %s is empty", key))
	}

	s.mu.Lock()
	s.cache[key] = sqlText
	s.mu.Unlock()

	return sqlText, nil
}
