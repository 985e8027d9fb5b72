package handlers

import (
	"net/http"

	"expensetracker_backend/internal/services"
	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categories services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler: base,
		categories:  categories,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.categories.List(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.TotalRecords == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success":  true,
			"message":  apperrors.ErrNoCategoryFound.Message,
			"category": result.Categories,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Category retrieved successfully",
		"totalRecords": result.TotalRecords,
		"pagination":   result.Pagination,
		"category":     result.Categories,
	})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.Get(c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoCategoryFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": true,
				"message": apperrors.ErrNoCategoryFound.Message,
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category retrieved successfully",
		"category": category,
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	category, err := h.categories.Create(user.Email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully",
		"category": category,
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	category, err := h.categories.Update(user.Email, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category updated successfully",
		"category": category,
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Param("id")); err != nil {
		if apperrors.Is(err, apperrors.ErrNoCategoryFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": true,
				"message": apperrors.ErrNoCategoryFound.Message,
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted successfully",
	})
}
