package handlers

import (
	"net/http"

	"expensetracker_backend/internal/services"
	"expensetracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	users services.UserService
}

func NewUserHandler(base *BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		users:       users,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.users.List(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// An empty table is reported as not-found but still flagged successful,
	// which existing clients key off.
	if result.TotalRecords == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": true,
			"message": apperrors.ErrNoUserFound.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "User retrieved successfully",
		"totalRecords": result.TotalRecords,
		"pagination":   result.Pagination,
		"users":        result.Users,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoUserFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": true,
				"message": apperrors.ErrNoUserFound.Message,
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User retrieved successfully",
		"user":    user,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		if apperrors.Is(err, apperrors.ErrNoUserFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": true,
				"message": apperrors.ErrNoUserFound.Message,
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
