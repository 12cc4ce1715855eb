package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidRole           = errors.New("invalid role")
	ErrRoleChangeForbidden   = errors.New("role is immutable after registration")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("resource already exists")
)
