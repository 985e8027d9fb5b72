package dto

import (
	"time"

	"expensetracker_backend/internal/models"
)

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// UserProfile is the public projection of a user: no password hash, no token
// state.
type UserProfile struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"isVerified"`
}

func NewUserProfile(user *models.User) *UserProfile {
	return &UserProfile{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Username:   user.Username,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
	Token string          `json:"token"`
}

type VerifiedUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	IsVerified bool   `json:"isVerified"`
}

// ReissuedVerificationToken is returned alongside the expired-token failure so
// a client (or a non-interactive test) can observe the fresh token.
type ReissuedVerificationToken struct {
	ID                              string    `json:"id"`
	AccountVerificationToken        string    `json:"accountVerificationToken"`
	AccountVerificationTokenExpires time.Time `json:"accountVerificationTokenExpires"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ReissuedResetToken mirrors ReissuedVerificationToken for the reset flow.
type ReissuedResetToken struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	ResetPasswordToken   string    `json:"resetPasswordToken"`
	ResetPasswordExpires time.Time `json:"resetPasswordExpires"`
}

// PasswordResetResult returns the updated password hash alongside the email.
// Exposing the hash is carried source behavior that existing clients may rely
// on; see DESIGN.md.
type PasswordResetResult struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

type UpdatedProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}
