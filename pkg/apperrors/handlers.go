package apperrors

import (
	"expensetracker_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError writes err as the standard response envelope:
//
//	{"success": false, "message": "...", "data": {...}}
//
// data is present only when the error carries details (e.g. a reissued token).
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("server error", "code", appErr.Code, "error", appErr.Error())
	}

	body := gin.H{
		"success": false,
		"message": appErr.Message,
	}
	if appErr.Details != nil {
		body["data"] = appErr.Details
	}

	c.JSON(appErr.HTTPCode, body)
}

// AsAppError unwraps err into *AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
