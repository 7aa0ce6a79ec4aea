package pgsql

// Kind enumerates the entity kinds the generic repository can operate on.
// Each kind carries the naming metadata the query store and the error
// messages need, so pluralization lives in exactly one table.
type Kind int

const (
	KindBudget Kind = iota
	KindAccount
	KindCategory
	KindSubcategory
	KindTransaction
	KindUser
)

type kindInfo struct {
	singular string
	plural   string
	title    string
}

var kindTable = [...]kindInfo{
	KindBudget:      {singular: "budget", plural: "budgets", title: "Budget"},
	KindAccount:     {singular: "account", plural: "accounts", title: "Account"},
	KindCategory:    {singular: "category", plural: "categories", title: "Category"},
	KindSubcategory: {singular: "subcategory", plural: "subcategories", title: "Subcategory"},
	KindTransaction: {singular: "transaction", plural: "transactions", title: "Transaction"},
	KindUser:        {singular: "user", plural: "users", title: "User"},
}

// Singular returns the lower-case singular entity name, e.g. "budget".
func (k Kind) Singular() string { return kindTable[k].singular }

// Plural returns the plural entity name used in query paths, e.g. "budgets".
func (k Kind) Plural() string { return kindTable[k].plural }

// Title returns the capitalized entity name used in error messages, e.g. "Budget".
func (k Kind) Title() string { return kindTable[k].title }
