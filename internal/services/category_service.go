package services

import (
	"errors"

	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/repositories"
	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/internal/validation"
	"expensetracker_backend/pkg/apperrors"
)

// CategoryService manages the shared category reference data. Creator and
// updater identity are recorded by email.
type CategoryService interface {
	List(page, limit int) (*dto.CategoryListResult, error)
	Get(id string) (*dto.CategoryResponse, error)
	Create(actorEmail string, req *dto.CategoryRequest) (*dto.CategoryResponse, error)
	Update(actorEmail, id string, req *dto.CategoryRequest) (*dto.CategoryResponse, error)
	Delete(id string) error
}

type CategoryServiceImpl struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categories: categories}
}

func (s *CategoryServiceImpl) List(page, limit int) (*dto.CategoryListResult, error) {
	count, err := s.categories.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages, pageErr := checkPage(count, page, limit)
	if pageErr != nil {
		return nil, pageErr
	}

	categories, err := s.categories.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &dto.CategoryListResult{
		Categories:   make([]dto.CategoryResponse, 0, len(categories)),
		TotalRecords: count,
		Pagination:   newPagination(page, totalPages, limit),
	}
	for i := range categories {
		result.Categories = append(result.Categories, *dto.NewCategoryResponse(&categories[i]))
	}

	return result, nil
}

func (s *CategoryServiceImpl) Get(id string) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNoCategoryFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) Create(actorEmail string, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if msg := validation.RequiredFields(
		validation.Field{Name: "name", Value: req.Name},
	); msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	if _, err := s.categories.FindByName(req.Name); err == nil {
		return nil, apperrors.ErrCategoryExists
	} else if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, apperrors.InternalError(err)
	}

	category := &models.Category{
		Name:      req.Name,
		Status:    models.CategoryStatusActive,
		CreatedBy: actorEmail,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) Update(actorEmail, id string, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNoCategoryFound
		}
		return nil, apperrors.InternalError(err)
	}

	if msg := validation.RequiredFields(
		validation.Field{Name: "name", Value: req.Name},
	); msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	statuses := make([]string, 0, 2)
	for _, st := range models.CategoryStatuses() {
		statuses = append(statuses, string(st))
	}
	if msg := validation.CategoryStatus(req.Status, statuses); msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	if category.Name == req.Name && string(category.Status) == req.Status {
		return nil, apperrors.ErrCategoryNoChanges
	}

	category.Name = req.Name
	category.Status = models.CategoryStatus(req.Status)
	category.UpdatedBy = actorEmail

	if err := s.categories.Update(category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) Delete(id string) error {
	if _, err := s.categories.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNoCategoryFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.categories.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
