package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidValue          = errors.New("invalid declared value")
	ErrInvalidCategory       = errors.New("invalid parcel category")
	ErrInvalidPaymentMode    = errors.New("invalid payment mode")
	ErrInvalidContactPoint   = errors.New("invalid pickup or delivery details")
	ErrCODAmountMismatch     = errors.New("cod amount must be positive for cod and zero otherwise")
	ErrCustomerRoleMismatch  = errors.New("booking user is not a customer")

	ErrParcelNotFound   = errors.New("parcel not found")
	ErrTrackingConflict = errors.New("tracking id already exists")
)
