//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"parceltrack/internal/entities"
)

type ParcelRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	SetAgent(ctx context.Context, parcelID int64, agentID *int64) error
}

type AgentRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
	CountActiveParcels(ctx context.Context, agentID int64) (int64, error)
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
