package handlers

import (
	"strconv"

	"expensetracker_backend/internal/logger"
	"expensetracker_backend/internal/middleware"
	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/services"
	"expensetracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the helpers every resource handler embeds: body binding,
// pagination parsing, the current-user accessor and the service error boundary.
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON reads the request body into obj. Field-level validation stays in
// the services so the response ordering matches the documented flows; this
// only rejects bodies that are not valid JSON.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("failed to bind request body", "path", c.Request.URL.Path, "error", err.Error())
		apperrors.HandleError(c, apperrors.NewValidationError("Invalid request."))
		return false
	}
	return true
}

// HandleServiceError is the single boundary between service errors and the
// response envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// CurrentUser returns the user attached by the auth middleware. Routes behind
// the middleware always have one; the error answer covers misconfiguration.
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		logger.Error("current user missing from context", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return nil, false
	}
	return user, true
}

// ParsePagination reads page/limit query params with the shared defaults.
// Non-numeric or missing values fall back silently.
func ParsePagination(c *gin.Context) (page, limit int) {
	page = parseQueryInt(c, "page", services.DefaultPage)
	if page <= 0 {
		page = services.DefaultPage
	}
	limit = parseQueryInt(c, "limit", services.DefaultLimit)
	if limit <= 0 {
		limit = services.DefaultLimit
	}
	return page, limit
}

func parseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
