//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
package transition

import (
	"context"
	"time"

	"parceltrack/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	UpdateStatus(ctx context.Context, parcelID int64, status entities.ParcelStatusType, pickedUpAt, deliveredAt *time.Time) error
}

type EventRepository interface {
	Append(ctx context.Context, event entities.StatusEvent) (*entities.StatusEvent, error)
}

type ParcelLocker interface {
	TryLock(key int64, wait time.Duration) bool
	Unlock(key int64)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent)
}
