package parcel

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/entities"
)

type Parcel struct {
	repository      Repository
	eventRepository EventRepository
	userService     UserService
	trackingFactory TrackingFactory
	estimateFactory DeliveryEstimateFactory
	publisher       EventPublisher
}

func New(
	repository Repository,
	eventRepository EventRepository,
	userService UserService,
	trackingFactory TrackingFactory,
	estimateFactory DeliveryEstimateFactory,
	publisher EventPublisher,
) *Parcel {
	return &Parcel{
		repository:      repository,
		eventRepository: eventRepository,
		userService:     userService,
		trackingFactory: trackingFactory,
		estimateFactory: estimateFactory,
		publisher:       publisher,
	}
}

// BookParcel создает посылку в статусе pending. Tracking id назначается один
// раз и снаружи не задается.
func (s *Parcel) BookParcel(ctx context.Context, booking entities.ParcelBooking) (*entities.Parcel, error) {
	if err := validateBooking(booking); err != nil {
		return nil, err
	}

	customer, err := s.userService.GetUser(ctx, booking.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("verify customer: %w", err)
	}
	if customer.Role != entities.RoleCustomer {
		return nil, ErrCustomerRoleMismatch
	}

	now := time.Now().UTC()
	newParcel := entities.Parcel{
		TrackingID:        s.trackingFactory.NewTrackingID(),
		CustomerID:        booking.CustomerID,
		Pickup:            booking.Pickup,
		Delivery:          booking.Delivery,
		Category:          booking.Category,
		WeightKg:          booking.WeightKg,
		DeclaredValue:     booking.DeclaredValue,
		Description:       booking.Description,
		Fragile:           booking.Fragile,
		Urgent:            booking.Urgent,
		PaymentMode:       booking.PaymentMode,
		CODAmount:         booking.CODAmount,
		Status:            entities.ParcelPending,
		EstimatedDelivery: s.estimateFactory.EstimatedDelivery(booking.Urgent, now),
	}

	created, err := s.repository.Create(ctx, newParcel)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	s.publisher.Publish(ctx, entities.DomainEvent{
		Type:       entities.EventParcelBooked,
		ParcelID:   created.ID,
		TrackingID: created.TrackingID,
		CustomerID: created.CustomerID,
		ToStatus:   created.Status,
		ActorID:    created.CustomerID,
		OccurredAt: created.CreatedAt,
	})

	return created, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return found, nil
}

func (s *Parcel) GetParcelByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error) {
	if trackingID == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get parcel by tracking id: %w", err)
	}

	return found, nil
}

// QueryParcels — только чтение, фильтры комбинируются по AND.
func (s *Parcel) QueryParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	parcels, err := s.repository.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query parcels: %w", err)
	}

	return parcels, nil
}

func (s *Parcel) GetHistory(ctx context.Context, parcelID int64) ([]entities.StatusEvent, error) {
	if _, err := s.repository.GetByID(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	events, err := s.eventRepository.ListByParcelID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel history: %w", err)
	}

	return events, nil
}

// ProcessOverdueParcels публикует parcel.overdue для незавершенных посылок,
// чей estimated_delivery прошел после cursor. Состояние посылок не меняет.
func (s *Parcel) ProcessOverdueParcels(ctx context.Context, cursor time.Time) (time.Time, error) {
	now := time.Now().UTC()

	overdue, err := s.repository.GetOverdueBetween(ctx, cursor, now)
	if err != nil {
		return cursor, fmt.Errorf("get overdue parcels: %w", err)
	}

	newCursor := cursor
	for _, p := range overdue {
		s.publisher.Publish(ctx, entities.DomainEvent{
			Type:       entities.EventParcelOverdue,
			ParcelID:   p.ID,
			TrackingID: p.TrackingID,
			CustomerID: p.CustomerID,
			AgentID:    p.AgentID,
			ToStatus:   p.Status,
			OccurredAt: now,
		})

		if p.EstimatedDelivery.After(newCursor) {
			newCursor = p.EstimatedDelivery
		}
	}

	return newCursor, nil
}

func validateBooking(booking entities.ParcelBooking) error {
	if booking.CustomerID == 0 {
		return ErrMissingRequiredFields
	}
	if !isValidContactPoint(booking.Pickup) || !isValidContactPoint(booking.Delivery) {
		return ErrInvalidContactPoint
	}
	if !isValidCategory(booking.Category.String()) {
		return ErrInvalidCategory
	}
	if !isValidWeight(booking.WeightKg) {
		return ErrInvalidWeight
	}
	if booking.DeclaredValue < 0 {
		return ErrInvalidValue
	}
	if !isValidPaymentMode(booking.PaymentMode.String()) {
		return ErrInvalidPaymentMode
	}
	if !isValidCODAmount(booking.PaymentMode, booking.CODAmount) {
		return ErrCODAmountMismatch
	}
	return nil
}
