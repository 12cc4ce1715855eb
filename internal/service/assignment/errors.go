package assignment

import "errors"

var (
	ErrInvalidActor      = errors.New("invalid actor id")
	ErrParcelTerminal    = errors.New("parcel is in a terminal status")
	ErrAgentInactive     = errors.New("agent is inactive")
	ErrAgentAtCapacity   = errors.New("agent is at capacity")
	ErrParcelNotPending  = errors.New("parcel can be unassigned only while pending")
	ErrParcelNotAssigned = errors.New("parcel has no assigned agent")
	ErrParcelBusy        = errors.New("parcel is busy, retry later")
	ErrEmptyBatch        = errors.New("empty parcel batch")
)
