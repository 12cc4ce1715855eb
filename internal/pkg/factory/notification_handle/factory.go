package notification_handle

import (
	"fmt"

	"parceltrack/internal/entities"
	"parceltrack/internal/service/notification"
)

type EventHandlerFactory struct {
	notifier notification.EventNotifier
}

func New(notifier notification.EventNotifier) *EventHandlerFactory {
	return &EventHandlerFactory{
		notifier: notifier,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.DomainEventType) (notification.ExecuteFn, error) {
	switch eventType {
	case entities.EventParcelBooked, entities.EventParcelStatusChanged:
		return f.notifier.NotifyCustomer, nil
	case entities.EventParcelAssigned, entities.EventParcelUnassigned:
		return f.notifier.NotifyAgent, nil
	case entities.EventParcelOverdue:
		return f.notifier.NotifyOps, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedEvent, eventType)
	}
}
