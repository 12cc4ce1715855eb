//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_event_test
package parcel_event

import (
	"context"
	"time"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessParcelEvent(ctx context.Context, event entities.DomainEvent) error
}

// parcelEvent — формат сообщения в топике parcel.events.
// Схему пишет gateway/kafka/notification, читаем симметрично.
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
