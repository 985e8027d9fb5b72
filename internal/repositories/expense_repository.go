package repositories

import (
	"errors"

	"expensetracker_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepository interface {
	FindByID(id string) (*models.Expense, error)
	Create(expense *models.Expense) error
	Update(expense *models.Expense) error
	Delete(id string) error
	// FindAll preloads the owning user and the referenced category so the
	// list response can embed both.
	FindAll(limit, offset int) ([]models.Expense, error)
	CountAll() (int64, error)
}

type ExpenseRepositoryImpl struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &ExpenseRepositoryImpl{db: db}
}

func (r *ExpenseRepositoryImpl) FindByID(id string) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepositoryImpl) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *ExpenseRepositoryImpl) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

func (r *ExpenseRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepositoryImpl) FindAll(limit, offset int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Preload("User").Preload("Category").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Expense{}).Count(&count).Error
	return count, err
}
