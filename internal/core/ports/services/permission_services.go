package services

import "context"

// PermissionSvc resolves edit permission along the ownership graph. Every
// method is a state-free, per-call decision: a user may edit an entity iff
// the entity's ownership chain bottoms out in a budget the user is a member
// of.
type PermissionSvc interface {
	// HasPermissionToEditBudget reports whether the user is a member of the budget.
	HasPermissionToEditBudget(ctx context.Context, userID, budgetID int64) (bool, error)

	// HasPermissionToEditAccount follows account -> budget.
	HasPermissionToEditAccount(ctx context.Context, userID, accountID int64) (bool, error)

	// HasPermissionToEditCategory follows category -> budget.
	HasPermissionToEditCategory(ctx context.Context, userID, categoryID int64) (bool, error)

	// HasPermissionToEditSubcategory follows subcategory -> category -> budget.
	HasPermissionToEditSubcategory(ctx context.Context, userID, subcategoryID int64) (bool, error)

	// HasPermissionToEditTransaction follows both parent chains of the transaction.
	HasPermissionToEditTransaction(ctx context.Context, userID, transactionID int64) (bool, error)

	// CanEditTransactionParents evaluates the account and subcategory checks
	// for a transaction mutation. Both must hold; the checks are independent
	// and may run concurrently.
	CanEditTransactionParents(ctx context.Context, userID, accountID, subcategoryID int64) (bool, error)
}
