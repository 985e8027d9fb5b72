package dto

import (
	"time"

	"expensetracker_backend/internal/models"
)

// ExpenseRequest covers create and update. Price is untyped because clients
// send it as either a JSON number or a numeric string; validation parses it.
// PaidVia is only honored on create.
type ExpenseRequest struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        interface{} `json:"price"`
	CategoryName string      `json:"categoryName"`
	PaidVia      string      `json:"paidVia"`
}

type ExpenseUserSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ExpenseCategorySummary struct {
	Name   string                `json:"name"`
	Status models.CategoryStatus `json:"status"`
}

type ExpenseResponse struct {
	ID           string                  `json:"id"`
	UserID       string                  `json:"userId"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	Price        float64                 `json:"price"`
	CategoryID   string                  `json:"categoryId"`
	CategoryName string                  `json:"categoryName"`
	PaidVia      models.PaymentMode      `json:"paidVia"`
	CreatedBy    string                  `json:"createdBy"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
	User         *ExpenseUserSummary     `json:"users,omitempty"`
	Category     *ExpenseCategorySummary `json:"category,omitempty"`
}

func NewExpenseResponse(expense *models.Expense) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:           expense.ID,
		UserID:       expense.UserID,
		Name:         expense.Name,
		Description:  expense.Description,
		Price:        expense.Price,
		CategoryID:   expense.CategoryID,
		CategoryName: expense.CategoryName,
		PaidVia:      expense.PaidVia,
		CreatedBy:    expense.CreatedBy,
		CreatedAt:    expense.CreatedAt,
		UpdatedAt:    expense.UpdatedAt,
	}
	if expense.User != nil {
		resp.User = &ExpenseUserSummary{
			FirstName: expense.User.FirstName,
			LastName:  expense.User.LastName,
			Email:     expense.User.Email,
		}
	}
	if expense.Category != nil {
		resp.Category = &ExpenseCategorySummary{
			Name:   expense.Category.Name,
			Status: expense.Category.Status,
		}
	}
	return resp
}

type ExpenseListResult struct {
	Expenses     []ExpenseResponse
	TotalRecords int64
	Pagination   Pagination
}
