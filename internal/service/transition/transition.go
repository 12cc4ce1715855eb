package transition

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/entities"
	"parceltrack/pkg/tx"
)

// successors — закрытая таблица переходов. Статус меняется только здесь,
// любой другой путь мутации — баг.
var successors = map[entities.ParcelStatusType][]entities.ParcelStatusType{
	entities.ParcelPending:        {entities.ParcelPickedUp},
	entities.ParcelPickedUp:       {entities.ParcelInTransit, entities.ParcelFailed, entities.ParcelReturned},
	entities.ParcelInTransit:      {entities.ParcelOutForDelivery, entities.ParcelFailed, entities.ParcelReturned},
	entities.ParcelOutForDelivery: {entities.ParcelDelivered, entities.ParcelFailed, entities.ParcelReturned},
	entities.ParcelDelivered:      {},
	entities.ParcelFailed:         {},
	entities.ParcelReturned:       {},
}

const DefaultLockWait = 500 * time.Millisecond

type Request struct {
	ParcelID int64
	ToStatus entities.ParcelStatusType
	ActorID  int64
	Notes    string
	ProofRef *string
	Location *entities.GeoPoint
}

type Engine struct {
	repository      Repository
	eventRepository EventRepository
	locks           ParcelLocker
	txManager       TxManager
	publisher       EventPublisher
	lockWait        time.Duration
}

func New(
	repository Repository,
	eventRepository EventRepository,
	locks ParcelLocker,
	txManager TxManager,
	publisher EventPublisher,
	lockWait time.Duration,
) *Engine {
	return &Engine{
		repository:      repository,
		eventRepository: eventRepository,
		locks:           locks,
		txManager:       txManager,
		publisher:       publisher,
		lockWait:        lockWait,
	}
}

// Transition применяет смену статуса атомарно: обновление parcels.status и
// запись StatusEvent происходят в одной транзакции, либо не происходят вовсе.
func (e *Engine) Transition(ctx context.Context, req Request) (*entities.StatusEvent, error) {
	if _, ok := successors[req.ToStatus]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, req.ToStatus)
	}
	if req.ActorID <= 0 {
		return nil, ErrInvalidActor
	}

	if !e.locks.TryLock(req.ParcelID, e.lockWait) {
		return nil, ErrParcelBusy
	}
	defer e.locks.Unlock(req.ParcelID)

	var (
		appended *entities.StatusEvent
		subject  *entities.Parcel
	)
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := e.repository.GetByID(ctx, req.ParcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		subject = current

		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: %s", ErrTerminalState, current.Status)
		}
		if !isSuccessor(current.Status, req.ToStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, req.ToStatus)
		}
		if req.ToStatus == entities.ParcelDelivered && !hasProof(req.ProofRef) {
			return ErrMissingProof
		}

		now := time.Now().UTC()
		pickedUpAt := current.PickedUpAt
		deliveredAt := current.DeliveredAt
		switch req.ToStatus {
		case entities.ParcelPickedUp:
			pickedUpAt = &now
		case entities.ParcelDelivered:
			deliveredAt = &now
		}

		err = e.repository.UpdateStatus(ctx, current.ID, req.ToStatus, pickedUpAt, deliveredAt)
		if err != nil {
			return fmt.Errorf("update parcel status: %w", err)
		}

		appended, err = e.eventRepository.Append(ctx, entities.StatusEvent{
			ParcelID:   current.ID,
			FromStatus: current.Status,
			ToStatus:   req.ToStatus,
			ActorID:    req.ActorID,
			Notes:      req.Notes,
			ProofRef:   req.ProofRef,
			Location:   req.Location,
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("append status event: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: %v", ErrParcelBusy, err)
		}
		return nil, err
	}

	e.publisher.Publish(ctx, entities.DomainEvent{
		Type:       entities.EventParcelStatusChanged,
		ParcelID:   appended.ParcelID,
		TrackingID: subject.TrackingID,
		CustomerID: subject.CustomerID,
		AgentID:    subject.AgentID,
		FromStatus: appended.FromStatus,
		ToStatus:   appended.ToStatus,
		ActorID:    appended.ActorID,
		OccurredAt: appended.CreatedAt,
	})

	return appended, nil
}

func isSuccessor(from, to entities.ParcelStatusType) bool {
	for _, next := range successors[from] {
		if next == to {
			return true
		}
	}
	return false
}

func hasProof(proofRef *string) bool {
	return proofRef != nil && strings.TrimSpace(*proofRef) != ""
}
