//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"parceltrack/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error)
	Query(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	GetOverdueBetween(ctx context.Context, from, to time.Time) ([]entities.Parcel, error)
}

type EventRepository interface {
	ListByParcelID(ctx context.Context, parcelID int64) ([]entities.StatusEvent, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type TrackingFactory interface {
	NewTrackingID() string
}

type DeliveryEstimateFactory interface {
	EstimatedDelivery(urgent bool, baseTime time.Time) time.Time
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent)
}
