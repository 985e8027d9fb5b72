package handlers

import (
	"net/http"

	"expensetracker_backend/internal/services"
	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	*BaseHandler
	expenses services.ExpenseService
}

func NewExpenseHandler(base *BaseHandler, expenses services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		BaseHandler: base,
		expenses:    expenses,
	}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.expenses.List(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.TotalRecords == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": true,
			"message": apperrors.ErrNoExpenseFound.Message,
			"expense": result.Expenses,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Expense retrieved successfully",
		"totalRecords": result.TotalRecords,
		"pagination":   result.Pagination,
		"expense":      result.Expenses,
	})
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.expenses.Get(c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoExpenseFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": true,
				"message": apperrors.ErrNoExpenseFound.Message,
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense found",
		"expense": expense,
	})
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	expense, err := h.expenses.Create(user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Expense created successfully",
		"expense": expense,
	})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req dto.ExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	expense, err := h.expenses.Update(user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

// Delete echoes the removed record in the response.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expense, err := h.expenses.Delete(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data deleted successfully.",
		"expense": expense,
	})
}
