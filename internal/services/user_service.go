package services

import (
	"errors"

	"expensetracker_backend/internal/repositories"
	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/pkg/apperrors"
)

// UserService covers the admin-facing user listing and deletion plus the
// session-facing get-by-id. All projections use the public attribute subset.
type UserService interface {
	List(page, limit int) (*dto.UserListResult, error)
	Get(id string) (*dto.UserResponse, error)
	Delete(id string) error
}

type UserServiceImpl struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) List(page, limit int) (*dto.UserListResult, error) {
	count, err := s.users.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages, pageErr := checkPage(count, page, limit)
	if pageErr != nil {
		return nil, pageErr
	}

	users, err := s.users.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &dto.UserListResult{
		Users:        make([]dto.UserResponse, 0, len(users)),
		TotalRecords: count,
		Pagination:   newPagination(page, totalPages, limit),
	}
	for i := range users {
		result.Users = append(result.Users, *dto.NewUserResponse(&users[i]))
	}

	return result, nil
}

func (s *UserServiceImpl) Get(id string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNoUserFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) Delete(id string) error {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNoUserFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.users.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
