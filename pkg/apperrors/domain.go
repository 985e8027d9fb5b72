package apperrors

import (
	"fmt"
	"net/http"
)

// Predefined errors for the account lifecycle and resource controllers.
// Message text is part of the API contract and asserted by clients, so it
// stays exactly as published.

var (
	ErrUserExists     = New(CodeAlreadyExists, "User already exists. Please try again.", http.StatusBadRequest)
	ErrUsernameExists = New(CodeAlreadyExists, "Username already exists. Please try again.", http.StatusBadRequest)
	ErrNoUserFound    = New(CodeNotFound, "No user found", http.StatusNotFound)

	// Login deliberately reports the same message for an unknown email (404)
	// and a wrong password (401) so the two cases are indistinguishable by text.
	ErrEmailNotRegistered = New(CodeNotFound, "Invalid credentials. Please try again.", http.StatusNotFound)
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials. Please try again.", http.StatusUnauthorized)

	ErrAlreadyVerified          = New(CodeInvalidOperation, "User is already verified. No need for further verification.", http.StatusBadRequest)
	ErrInvalidVerificationToken = New(CodeInvalidToken, "Invalid account verification token.", http.StatusBadRequest)
	ErrUserNotFoundVerification = New(CodeNotFound, "No user found", http.StatusBadRequest)

	ErrInvalidResetToken = New(CodeInvalidToken, "Invalid reset password token.", http.StatusBadRequest)
	ErrPasswordSame      = New(CodeInvalidOperation, "New password cannot be the same as the old password.", http.StatusBadRequest)

	ErrAccountNotVerified = New(CodeInvalidOperation, "Account is not verified. Please verify your account.", http.StatusBadRequest)
	ErrNoUpdateMade       = New(CodeInvalidOperation, "No update made to the user.", http.StatusBadRequest)

	ErrNoCategoryFound   = New(CodeNotFound, "No category found", http.StatusNotFound)
	ErrCategoryExists    = New(CodeAlreadyExists, "Category already exists. Please try again.", http.StatusBadRequest)
	ErrCategoryNoChanges = New(CodeInvalidOperation, "No changes made to the category.", http.StatusBadRequest)

	ErrNoExpenseFound   = New(CodeNotFound, "No expense found", http.StatusNotFound)
	ErrResourceNotFound = New(CodeNotFound, "Resource not found.", http.StatusNotFound)

	ErrNoToken      = New(CodeUnauthorized, "No token provided. You are unauthorized to access the resource.", http.StatusUnauthorized)
	ErrTokenInvalid = New(CodeInvalidToken, "Token is invalid. You are unauthorized to access the resource.", http.StatusUnauthorized)
	ErrTokenExpired = New(CodeTokenExpired, "Token has expired. Please login again.", http.StatusUnauthorized)
	ErrAdminOnly    = New(CodeUnauthorized, "You are not authorized to access this resource. Only Admins can access this resource.", http.StatusUnauthorized)
	ErrUnauthorized = New(CodeUnauthorized, "Unauthorized to access the resource.", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "Forbidden request. You are unauthorized to access the resource.", http.StatusForbidden)
)

// NewVerificationTokenExpired returns a fresh instance each time because the
// reissued token payload rides along in Details.
func NewVerificationTokenExpired(details interface{}) *AppError {
	return New(CodeTokenExpired, "Account verification token has expired. New token has been sent to your email.", http.StatusBadRequest).
		WithDetails(details)
}

// NewResetTokenExpired mirrors NewVerificationTokenExpired for the reset flow.
func NewResetTokenExpired(details interface{}) *AppError {
	return New(CodeTokenExpired, "Reset password token has expired. Please request a new one.", http.StatusBadRequest).
		WithDetails(details)
}

// NewInvalidPage reports a page beyond the computed total-page count.
func NewInvalidPage(totalPages int) *AppError {
	return New(CodeValidationFailed, fmt.Sprintf("Invalid page number. Max page number is %d", totalPages), http.StatusBadRequest)
}
