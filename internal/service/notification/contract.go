//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"parceltrack/internal/entities"
)

// Notification — готовое к отправке сообщение. Каналы доставки
// (email/SMS/push) — внешние коллабораторы за интерфейсом Sender.
type Notification struct {
	RecipientName  string
	RecipientEmail string
	RecipientPhone string
	Subject        string
	Body           string
}

type Sender interface {
	Send(ctx context.Context, notification Notification) error
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type AgentService interface {
	GetAgent(ctx context.Context, id int64) (*entities.Agent, error)
}

// EventNotifier — набор реакций на доменные события, раздается фабрикой.
type EventNotifier interface {
	NotifyCustomer(ctx context.Context, event entities.DomainEvent) error
	NotifyAgent(ctx context.Context, event entities.DomainEvent) error
	NotifyOps(ctx context.Context, event entities.DomainEvent) error
}

type (
	ExecuteFn      func(ctx context.Context, event entities.DomainEvent) error
	HandlerFactory interface {
		GetHandler(eventType entities.DomainEventType) (ExecuteFn, error)
	}
)
