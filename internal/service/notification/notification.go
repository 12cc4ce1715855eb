package notification

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/entities"
)

type Service struct {
	userService  UserService
	agentService AgentService
	sender       Sender
	factory      HandlerFactory
}

func New(userService UserService, agentService AgentService, sender Sender, factory HandlerFactory) *Service {
	return &Service{
		userService:  userService,
		agentService: agentService,
		sender:       sender,
		factory:      factory,
	}
}

// ProcessParcelEvent выбирает реакцию по типу события.
// Неизвестные типы пропускаются без ошибки.
func (s *Service) ProcessParcelEvent(ctx context.Context, event entities.DomainEvent) error {
	executeFn, err := s.factory.GetHandler(event.Type)
	if err != nil {
		if errors.Is(err, ErrUndefinedEvent) {
			return nil
		}
		return err
	}

	return executeFn(ctx, event)
}

func (s *Service) NotifyCustomer(ctx context.Context, event entities.DomainEvent) error {
	customer, err := s.userService.GetUser(ctx, event.CustomerID)
	if err != nil {
		return fmt.Errorf("get customer %d: %w", event.CustomerID, err)
	}

	n := Notification{
		RecipientName:  customer.Name,
		RecipientEmail: customer.Email,
		RecipientPhone: customer.Phone,
		Subject:        subjectFor(event),
		Body:           bodyFor(event),
	}

	if err := s.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("send customer notification: %w", err)
	}
	return nil
}

func (s *Service) NotifyAgent(ctx context.Context, event entities.DomainEvent) error {
	if event.AgentID == nil {
		return ErrNoRecipient
	}

	agent, err := s.agentService.GetAgent(ctx, *event.AgentID)
	if err != nil {
		return fmt.Errorf("get agent %d: %w", *event.AgentID, err)
	}

	n := Notification{
		RecipientName:  agent.Name,
		RecipientEmail: agent.Email,
		RecipientPhone: agent.Phone,
		Subject:        subjectFor(event),
		Body:           bodyFor(event),
	}

	if err := s.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("send agent notification: %w", err)
	}
	return nil
}

// NotifyOps — уведомление дежурной смены, адресат фиксированный.
func (s *Service) NotifyOps(ctx context.Context, event entities.DomainEvent) error {
	n := Notification{
		RecipientName: "operations",
		Subject:       subjectFor(event),
		Body:          bodyFor(event),
	}

	if err := s.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("send ops notification: %w", err)
	}
	return nil
}

func subjectFor(event entities.DomainEvent) string {
	switch event.Type {
	case entities.EventParcelBooked:
		return fmt.Sprintf("Parcel %s booked", event.TrackingID)
	case entities.EventParcelStatusChanged:
		return fmt.Sprintf("Parcel %s: %s", event.TrackingID, event.ToStatus)
	case entities.EventParcelAssigned:
		return fmt.Sprintf("Parcel %s assigned to you", event.TrackingID)
	case entities.EventParcelUnassigned:
		return fmt.Sprintf("Parcel %s unassigned", event.TrackingID)
	case entities.EventParcelOverdue:
		return fmt.Sprintf("Parcel %s is overdue", event.TrackingID)
	default:
		return fmt.Sprintf("Parcel %s update", event.TrackingID)
	}
}

func bodyFor(event entities.DomainEvent) string {
	switch event.Type {
	case entities.EventParcelStatusChanged:
		return fmt.Sprintf("Parcel %s moved from %s to %s.", event.TrackingID, event.FromStatus, event.ToStatus)
	case entities.EventParcelOverdue:
		return fmt.Sprintf("Parcel %s missed its estimated delivery while in status %s.", event.TrackingID, event.ToStatus)
	default:
		return fmt.Sprintf("Parcel %s: %s.", event.TrackingID, event.Type)
	}
}
