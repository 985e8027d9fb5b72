package handlers

import "expensetracker_backend/internal/services"

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ExpenseHandler  *ExpenseHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, container.AccountService),
		UserHandler:     NewUserHandler(base, container.UserService),
		CategoryHandler: NewCategoryHandler(base, container.CategoryService),
		ExpenseHandler:  NewExpenseHandler(base, container.ExpenseService),
	}
}
