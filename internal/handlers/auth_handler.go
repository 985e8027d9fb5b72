package handlers

import (
	"net/http"

	"expensetracker_backend/internal/services"
	"expensetracker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the account lifecycle: register, login, verification,
// forgot/reset password and profile update.
type AuthHandler struct {
	*BaseHandler
	accounts services.AccountService
}

func NewAuthHandler(base *BaseHandler, accounts services.AccountService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		accounts:    accounts,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.accounts.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully.",
		"user":    profile,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.accounts.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User logged in successfully.",
		"user":    result,
	})
}

func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	user, err := h.accounts.VerifyAccount(c.Param("id"), c.Param("verificationToken"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account verified successfully.",
		"user":    user,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	email, err := h.accounts.ForgotPassword(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Forgot password email sent successfully.",
		"email":   email,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.accounts.ResetPassword(c.Param("id"), c.Param("resetPasswordToken"), req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successfully.",
		"user":    result,
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.accounts.UpdateProfile(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully.",
		"user":    profile,
	})
}
