package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/entities"
	"parceltrack/pkg/tx"
)

const DefaultLockWait = 500 * time.Millisecond

// Result — исход назначения одной посылки.
type Result struct {
	ParcelID        int64
	AgentID         int64
	PreviousAgentID *int64
	TrackingID      string
}

// BatchOutcome — поэлементный результат assignMany: частичный успех
// допустим, вызывающий обязан смотреть Err каждой посылки.
type BatchOutcome struct {
	ParcelID int64
	Result   *Result
	Err      error
}

type Assignment struct {
	parcelRepository ParcelRepository
	agentRepository  AgentRepository
	locks            ParcelLocker
	txManager        TxManager
	publisher        EventPublisher
	lockWait         time.Duration
}

func New(
	parcelRepository ParcelRepository,
	agentRepository AgentRepository,
	locks ParcelLocker,
	txManager TxManager,
	publisher EventPublisher,
	lockWait time.Duration,
) *Assignment {
	return &Assignment{
		parcelRepository: parcelRepository,
		agentRepository:  agentRepository,
		locks:            locks,
		txManager:        txManager,
		publisher:        publisher,
		lockWait:         lockWait,
	}
}

// Assign привязывает агента к посылке. Повторное назначение того же агента —
// no-op. Переназначение — одна атомарная смена parcels.agent_id, посылка не
// может оказаться в активных наборах двух агентов одновременно.
func (s *Assignment) Assign(ctx context.Context, parcelID, agentID, actorID int64) (*Result, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActor
	}

	if !s.locks.TryLock(parcelID, s.lockWait) {
		return nil, ErrParcelBusy
	}
	defer s.locks.Unlock(parcelID)

	var (
		result  *Result
		noop    bool
		subject *entities.Parcel
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.parcelRepository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		subject = parcel

		if parcel.Status.IsTerminal() {
			return fmt.Errorf("%w: %s", ErrParcelTerminal, parcel.Status)
		}

		if parcel.AgentID != nil && *parcel.AgentID == agentID {
			noop = true
			result = &Result{
				ParcelID:        parcel.ID,
				AgentID:         agentID,
				PreviousAgentID: parcel.AgentID,
				TrackingID:      parcel.TrackingID,
			}
			return nil
		}

		agent, err := s.agentRepository.GetByID(ctx, agentID)
		if err != nil {
			return fmt.Errorf("get agent: %w", err)
		}
		if !agent.IsActive {
			return ErrAgentInactive
		}

		activeCount, err := s.agentRepository.CountActiveParcels(ctx, agentID)
		if err != nil {
			return fmt.Errorf("count active parcels: %w", err)
		}
		if activeCount >= int64(agent.Capacity) {
			return fmt.Errorf("%w: %d of %d", ErrAgentAtCapacity, activeCount, agent.Capacity)
		}

		err = s.parcelRepository.SetAgent(ctx, parcel.ID, &agentID)
		if err != nil {
			return fmt.Errorf("set parcel agent: %w", err)
		}

		result = &Result{
			ParcelID:        parcel.ID,
			AgentID:         agentID,
			PreviousAgentID: parcel.AgentID,
			TrackingID:      parcel.TrackingID,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: %v", ErrParcelBusy, err)
		}
		return nil, err
	}

	if !noop {
		s.publisher.Publish(ctx, entities.DomainEvent{
			Type:       entities.EventParcelAssigned,
			ParcelID:   result.ParcelID,
			TrackingID: result.TrackingID,
			CustomerID: subject.CustomerID,
			AgentID:    &result.AgentID,
			ToStatus:   subject.Status,
			ActorID:    actorID,
			OccurredAt: time.Now().UTC(),
		})
	}

	return result, nil
}

// AssignMany применяет Assign к каждой посылке независимо, без общей
// транзакции на батч.
func (s *Assignment) AssignMany(ctx context.Context, parcelIDs []int64, agentID, actorID int64) ([]BatchOutcome, error) {
	if len(parcelIDs) == 0 {
		return nil, ErrEmptyBatch
	}

	outcomes := make([]BatchOutcome, 0, len(parcelIDs))
	for _, parcelID := range parcelIDs {
		result, err := s.Assign(ctx, parcelID, agentID, actorID)
		outcomes = append(outcomes, BatchOutcome{
			ParcelID: parcelID,
			Result:   result,
			Err:      err,
		})
	}

	return outcomes, nil
}

// Unassign снимает агента с посылки. Разрешено только до забора (pending).
func (s *Assignment) Unassign(ctx context.Context, parcelID, actorID int64) error {
	if actorID <= 0 {
		return ErrInvalidActor
	}

	if !s.locks.TryLock(parcelID, s.lockWait) {
		return ErrParcelBusy
	}
	defer s.locks.Unlock(parcelID)

	var subject *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.parcelRepository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		subject = parcel

		if parcel.Status != entities.ParcelPending {
			return fmt.Errorf("%w: %s", ErrParcelNotPending, parcel.Status)
		}
		if parcel.AgentID == nil {
			return ErrParcelNotAssigned
		}

		err = s.parcelRepository.SetAgent(ctx, parcel.ID, nil)
		if err != nil {
			return fmt.Errorf("set parcel agent: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return fmt.Errorf("%w: %v", ErrParcelBusy, err)
		}
		return err
	}

	s.publisher.Publish(ctx, entities.DomainEvent{
		Type:       entities.EventParcelUnassigned,
		ParcelID:   subject.ID,
		TrackingID: subject.TrackingID,
		CustomerID: subject.CustomerID,
		AgentID:    subject.AgentID,
		ToStatus:   subject.Status,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
