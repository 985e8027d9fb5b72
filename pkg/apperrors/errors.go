package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the error type every service returns to the handler layer.
// HTTPCode and Details never reach the client directly; the gin handler in
// handlers.go turns them into the response envelope.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the underlying error in the chain for logging and errors.Is.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError surfaces the underlying error text verbatim, matching the
// controller boundary policy: unexpected failures become 500 with the raw
// message and no structured code beyond INTERNAL_ERROR.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, err.Error(), http.StatusInternalServerError)
}

// NewValidationError wraps a domain validation message into a 400.
func NewValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
