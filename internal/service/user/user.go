package user

import (
	"context"
	"fmt"

	"parceltrack/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) CreateUser(ctx context.Context, userModify entities.UserModify) (int64, error) {
	if userModify.Name == nil ||
		userModify.Email == nil ||
		userModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if userModify.Role == nil {
		role := entities.DefaultRoleType
		userModify.Role = &role
	}

	if !isValidName(*userModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*userModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*userModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidRole(userModify.Role.String()) {
		return 0, ErrInvalidRole
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// UpdateUser меняет контактные поля. Роль после регистрации неизменна.
func (s *User) UpdateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Role != nil {
		return nil, ErrRoleChangeForbidden
	}

	if userModify.Name == nil &&
		userModify.Email == nil &&
		userModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if userModify.Name != nil && !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if userModify.Email != nil && !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if userModify.Phone != nil && !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}

	updated, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return found, nil
}

func (s *User) GetUsers(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}
