package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AccountService  AccountService
	UserService     UserService
	CategoryService CategoryService
	ExpenseService  ExpenseService
}
