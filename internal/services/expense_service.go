package services

import (
	"errors"
	"math"

	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/repositories"
	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/internal/validation"
	"expensetracker_backend/pkg/apperrors"
)

// ExpenseService manages expense records. The category is resolved by name at
// write time and its name is denormalized onto the record; payment mode is
// only settable at creation.
type ExpenseService interface {
	List(page, limit int) (*dto.ExpenseListResult, error)
	Get(id string) (*dto.ExpenseResponse, error)
	Create(actor *models.User, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error)
	Update(actor *models.User, id string, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error)
	Delete(id string) (*dto.ExpenseResponse, error)
}

type ExpenseServiceImpl struct {
	expenses   repositories.ExpenseRepository
	categories repositories.CategoryRepository
}

func NewExpenseService(
	expenses repositories.ExpenseRepository,
	categories repositories.CategoryRepository,
) ExpenseService {
	return &ExpenseServiceImpl{
		expenses:   expenses,
		categories: categories,
	}
}

func (s *ExpenseServiceImpl) List(page, limit int) (*dto.ExpenseListResult, error) {
	count, err := s.expenses.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages, pageErr := checkPage(count, page, limit)
	if pageErr != nil {
		return nil, pageErr
	}

	expenses, err := s.expenses.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &dto.ExpenseListResult{
		Expenses:     make([]dto.ExpenseResponse, 0, len(expenses)),
		TotalRecords: count,
		Pagination:   newPagination(page, totalPages, limit),
	}
	for i := range expenses {
		result.Expenses = append(result.Expenses, *dto.NewExpenseResponse(&expenses[i]))
	}

	return result, nil
}

func (s *ExpenseServiceImpl) Get(id string) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, apperrors.ErrNoExpenseFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewExpenseResponse(expense), nil
}

func (s *ExpenseServiceImpl) Create(actor *models.User, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if msg := validation.RequiredFields(
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "description", Value: req.Description},
		validation.Field{Name: "price", Value: req.Price},
		validation.Field{Name: "categoryName", Value: req.CategoryName},
		validation.Field{Name: "paidVia", Value: req.PaidVia},
	); msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	price, msg := validation.Price(req.Price)
	if msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	modes := make([]string, 0, 4)
	for _, m := range models.PaymentModes() {
		modes = append(modes, string(m))
	}
	if msg := validation.PaymentMode(req.PaidVia, modes); msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	category, err := s.categories.FindByName(req.CategoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNoCategoryFound
		}
		return nil, apperrors.InternalError(err)
	}

	expense := &models.Expense{
		UserID:       actor.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        roundPrice(price),
		CategoryID:   category.ID,
		CategoryName: category.Name,
		PaidVia:      models.PaymentMode(req.PaidVia),
		CreatedBy:    actor.Email,
	}
	if err := s.expenses.Create(expense); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewExpenseResponse(expense), nil
}

func (s *ExpenseServiceImpl) Update(actor *models.User, id string, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, apperrors.ErrNoExpenseFound
		}
		return nil, apperrors.InternalError(err)
	}

	// The ownership middleware already rejects non-owners with 403; this
	// second check is the controller-level gate the route always had (401).
	if expense.UserID != actor.ID {
		return nil, apperrors.ErrUnauthorized
	}

	if msg := validation.RequiredFields(
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "description", Value: req.Description},
		validation.Field{Name: "price", Value: req.Price},
		validation.Field{Name: "categoryName", Value: req.CategoryName},
	); msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	price, msg := validation.Price(req.Price)
	if msg != "" {
		return nil, apperrors.NewValidationError(msg)
	}

	category, err := s.categories.FindByName(req.CategoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNoCategoryFound
		}
		return nil, apperrors.InternalError(err)
	}

	expense.Name = req.Name
	expense.Description = req.Description
	expense.Price = roundPrice(price)
	expense.CategoryID = category.ID
	expense.CategoryName = category.Name

	if err := s.expenses.Update(expense); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewExpenseResponse(expense), nil
}

// Delete returns the removed record so the response can echo it.
func (s *ExpenseServiceImpl) Delete(id string) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.expenses.Delete(id); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewExpenseResponse(expense), nil
}

// roundPrice stores monetary amounts with two decimal places.
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
