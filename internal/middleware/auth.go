package middleware

import (
	"errors"
	"strings"

	"expensetracker_backend/internal/auth"
	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/repositories"
	"expensetracker_backend/pkg/apperrors"
	"expensetracker_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token, resolves the user and attaches it
// to the gin context with the password hash blanked. Expired tokens get their
// own message so clients can distinguish re-login from a bad token.
func AuthMiddleware(jwtManager *auth.JWTManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			c.Abort()
			return
		}

		claims, err := jwtManager.ParseToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrResourceNotFound)
			} else {
				apperrors.HandleError(c, apperrors.InternalError(err))
			}
			c.Abort()
			return
		}

		user.Password = ""
		c.Set(contextkeys.CurrentUserKey.String(), user)
		c.Next()
	}
}

// AdminMiddleware rejects any caller whose role is not Admin. It runs after
// AuthMiddleware and relies on the user it attached.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			c.Abort()
			return
		}

		if user.Role != models.UserRoleAdmin {
			apperrors.HandleError(c, apperrors.ErrAdminOnly)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ExpenseOwnershipMiddleware rejects the request unless the expense in the
// path exists and belongs to the caller. A missing record is reported the same
// way as someone else's record.
func ExpenseOwnershipMiddleware(expenses repositories.ExpenseRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			c.Abort()
			return
		}

		expense, err := expenses.FindByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrExpenseNotFound) {
				apperrors.HandleError(c, apperrors.ErrForbidden)
			} else {
				apperrors.HandleError(c, apperrors.InternalError(err))
			}
			c.Abort()
			return
		}

		if expense.UserID != user.ID {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(contextkeys.CurrentUserKey.String())
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
