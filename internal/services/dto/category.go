package dto

import (
	"time"

	"expensetracker_backend/internal/models"
)

type CategoryRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type CategoryResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Status    models.CategoryStatus `json:"status"`
	CreatedBy string                `json:"createdBy"`
	UpdatedBy string                `json:"updatedBy,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func NewCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Status:    category.Status,
		CreatedBy: category.CreatedBy,
		UpdatedBy: category.UpdatedBy,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

type CategoryListResult struct {
	Categories   []CategoryResponse
	TotalRecords int64
	Pagination   Pagination
}
