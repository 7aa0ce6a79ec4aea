package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Budget      BudgetSvc
	Account     AccountSvc
	Category    CategorySvc
	Subcategory SubcategorySvc
	Transaction TransactionSvc
	Permission  PermissionSvc
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
