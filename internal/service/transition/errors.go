package transition

import "errors"

var (
	ErrUnknownStatus     = errors.New("unknown target status")
	ErrInvalidActor      = errors.New("invalid actor id")
	ErrInvalidTransition = errors.New("transition is not allowed from current status")
	ErrTerminalState     = errors.New("parcel is in a terminal status")
	ErrMissingProof      = errors.New("proof of delivery is required")
	ErrParcelBusy        = errors.New("parcel is busy, retry later")
)
