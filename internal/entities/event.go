package entities

import "time"

// StatusEvent — неизменяемая запись аудита. Текущий Parcel.Status всегда
// равен ToStatus последнего события посылки.
type StatusEvent struct {
	ID         int64
	ParcelID   int64
	FromStatus ParcelStatusType
	ToStatus   ParcelStatusType
	ActorID    int64
	Notes      string
	ProofRef   *string
	Location   *GeoPoint
	CreatedAt  time.Time
}

type GeoPoint struct {
	Lat     float64
	Lng     float64
	Address string
}

type DomainEventType string

const (
	EventParcelBooked        DomainEventType = "parcel.booked"
	EventParcelStatusChanged DomainEventType = "parcel.status_changed"
	EventParcelAssigned      DomainEventType = "parcel.assigned"
	EventParcelUnassigned    DomainEventType = "parcel.unassigned"
	EventParcelOverdue       DomainEventType = "parcel.overdue"
)

func (t DomainEventType) String() string {
	return string(t)
}

// DomainEvent — полезная нагрузка для диспетчера уведомлений.
// Ядро только публикует события, каналы доставки живут снаружи.
type DomainEvent struct {
	Type       DomainEventType
	ParcelID   int64
	TrackingID string
	CustomerID int64
	AgentID    *int64
	FromStatus ParcelStatusType
	ToStatus   ParcelStatusType
	ActorID    int64
	OccurredAt time.Time
}
