package agent

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidVehicle        = errors.New("invalid vehicle type")
	ErrInvalidVehicleNumber  = errors.New("invalid vehicle number")
	ErrInvalidCapacity       = errors.New("invalid capacity")

	ErrAgentNotFound = errors.New("agent not found")
	ErrConflict      = errors.New("resource already exists")
)
