package notification

import (
	"time"

	"parceltrack/internal/entities"
)

// parcelEvent — формат сообщения в топике parcel.events.
// Читается симметрично в handlers/kafka-consumer/parcel_event.
type parcelEvent struct {
	Type       string    `json:"type"`
	ParcelID   int64     `json:"parcel_ID"`
	TrackingID string    `json:"tracking_ID"`
	CustomerID int64     `json:"customer_ID"`
	AgentID    *int64    `json:"agent_ID,omitempty"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	ActorID    int64     `json:"actor_ID"`
	OccurredAt time.Time `json:"occurred_at"`
}

func fromDomain(event entities.DomainEvent) parcelEvent {
	return parcelEvent{
		Type:       event.Type.String(),
		ParcelID:   event.ParcelID,
		TrackingID: event.TrackingID,
		CustomerID: event.CustomerID,
		AgentID:    event.AgentID,
		FromStatus: event.FromStatus.String(),
		ToStatus:   event.ToStatus.String(),
		ActorID:    event.ActorID,
		OccurredAt: event.OccurredAt,
	}
}
