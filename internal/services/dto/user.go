package dto

import (
	"time"

	"expensetracker_backend/internal/models"
)

// UserResponse is the admin-facing attribute subset: everything public plus
// timestamps, never the password hash or token state.
type UserResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"isVerified"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Username:   user.Username,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

type UserListResult struct {
	Users        []UserResponse
	TotalRecords int64
	Pagination   Pagination
}
