package notification

import "errors"

var (
	ErrUndefinedEvent = errors.New("undefined domain event type")
	ErrNoRecipient    = errors.New("event has no recipient")
)
