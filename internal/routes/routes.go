package routes

import (
	"expensetracker_backend/internal/auth"
	"expensetracker_backend/internal/handlers"
	"expensetracker_backend/internal/middleware"
	"expensetracker_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the whole HTTP surface under /api/v1. The auth routes
// keep their historical flat paths rather than a nested group.
func SetupRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	jwtManager *auth.JWTManager,
	users repositories.UserRepository,
	expenses repositories.ExpenseRepository,
) {
	authRequired := middleware.AuthMiddleware(jwtManager, users)
	adminOnly := middleware.AdminMiddleware()
	ownExpense := middleware.ExpenseOwnershipMiddleware(expenses)

	api := r.Group("/api/v1")
	{
		api.POST("/register", h.AuthHandler.Register)
		api.POST("/login", h.AuthHandler.Login)
		api.POST("/forgotpassword", h.AuthHandler.ForgotPassword)
		api.GET("/verifyaccount/:id/token/:verificationToken", h.AuthHandler.VerifyAccount)
		api.PUT("/resetpassword/:id/:resetPasswordToken", authRequired, h.AuthHandler.ResetPassword)
		api.PUT("/updateprofile/:id", authRequired, h.AuthHandler.UpdateProfile)

		category := api.Group("/category", authRequired, adminOnly)
		{
			category.GET("", h.CategoryHandler.List)
			category.POST("", h.CategoryHandler.Create)
			category.GET("/:id", h.CategoryHandler.Get)
			category.PUT("/:id", h.CategoryHandler.Update)
			category.DELETE("/:id", h.CategoryHandler.Delete)
		}

		expense := api.Group("/expense", authRequired, adminOnly)
		{
			expense.GET("", h.ExpenseHandler.List)
			expense.POST("", h.ExpenseHandler.Create)
			expense.GET("/:id", h.ExpenseHandler.Get)
			expense.PUT("/:id", ownExpense, h.ExpenseHandler.Update)
			expense.DELETE("/:id", h.ExpenseHandler.Delete)
		}

		api.GET("/users", authRequired, adminOnly, h.UserHandler.List)
		api.GET("/user/:id", authRequired, h.UserHandler.Get)
		api.DELETE("/user/:id", authRequired, adminOnly, h.UserHandler.Delete)
	}
}
