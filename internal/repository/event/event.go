package event

import (
	"context"
	"fmt"

	"parceltrack/internal/entities"
)

const statusEventColumns = `id, parcel_id, from_status, to_status, actor_id, notes,
	proof_ref, location_lat, location_lng, location_address, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append пишет событие аудита. Вызывается только внутри транзакции
// вместе с обновлением статуса посылки.
func (r *Repository) Append(ctx context.Context, event entities.StatusEvent) (*entities.StatusEvent, error) {
	eventModel := FromDomain(&event)

	query := `
		INSERT INTO status_events (
			parcel_id, from_status, to_status, actor_id, notes,
			proof_ref, location_lat, location_lng, location_address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + statusEventColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		eventModel.ParcelID,
		eventModel.FromStatus,
		eventModel.ToStatus,
		eventModel.ActorID,
		eventModel.Notes,
		eventModel.ProofRef,
		eventModel.LocationLat,
		eventModel.LocationLng,
		eventModel.LocationAddress,
	)

	created := StatusEventDB{}
	err := row.Scan(
		&created.ID,
		&created.ParcelID,
		&created.FromStatus,
		&created.ToStatus,
		&created.ActorID,
		&created.Notes,
		&created.ProofRef,
		&created.LocationLat,
		&created.LocationLng,
		&created.LocationAddress,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("append status event: %w", err)
	}

	return ToDomain(&created), nil
}

// ListByParcelID возвращает события в порядке их записи.
func (r *Repository) ListByParcelID(ctx context.Context, parcelID int64) ([]entities.StatusEvent, error) {
	query := `
		SELECT ` + statusEventColumns + `
		FROM status_events
		WHERE parcel_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.StatusEvent, 0)
	for rows.Next() {
		model := StatusEventDB{}
		err = rows.Scan(
			&model.ID,
			&model.ParcelID,
			&model.FromStatus,
			&model.ToStatus,
			&model.ActorID,
			&model.Notes,
			&model.ProofRef,
			&model.LocationLat,
			&model.LocationLng,
			&model.LocationAddress,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan status event: %w", err)
		}
		events = append(events, *ToDomain(&model))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status events: %w", err)
	}

	return events, nil
}
