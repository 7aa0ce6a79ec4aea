package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNaming(t *testing.T) {
	tests := []struct {
		kind     Kind
		singular string
		plural   string
		title    string
	}{
		{KindBudget, "budget", "budgets", "Budget"},
		{KindAccount, "account", "accounts", "Account"},
		{KindCategory, "category", "categories", "Category"},
		{KindSubcategory, "subcategory", "subcategories", "Subcategory"},
		{KindTransaction, "transaction", "transactions", "Transaction"},
		{KindUser, "user", "users", "User"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.singular, tt.kind.Singular())
		assert.Equal(t, tt.plural, tt.kind.Plural())
		assert.Equal(t, tt.title, tt.kind.Title())
	}
}
