package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var terminalStatuses = []string{"delivered", "failed", "returned"}

const parcelColumns = `id, tracking_id, customer_id, agent_id,
	pickup_name, pickup_phone, pickup_address, pickup_city, pickup_pincode,
	delivery_name, delivery_phone, delivery_address, delivery_city, delivery_pincode,
	category, weight_kg, declared_value, description, fragile, urgent,
	payment_mode, cod_amount, status,
	created_at, updated_at, picked_up_at, delivered_at, estimated_delivery`

var parcelColumnList = []string{
	"id", "tracking_id", "customer_id", "agent_id",
	"pickup_name", "pickup_phone", "pickup_address", "pickup_city", "pickup_pincode",
	"delivery_name", "delivery_phone", "delivery_address", "delivery_city", "delivery_pincode",
	"category", "weight_kg", "declared_value", "description", "fragile", "urgent",
	"payment_mode", "cod_amount", "status",
	"created_at", "updated_at", "picked_up_at", "delivered_at", "estimated_delivery",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error) {
	parcelModel := FromDomain(&parcelEntity)

	query := `
		INSERT INTO parcels (
			tracking_id, customer_id, agent_id,
			pickup_name, pickup_phone, pickup_address, pickup_city, pickup_pincode,
			delivery_name, delivery_phone, delivery_address, delivery_city, delivery_pincode,
			category, weight_kg, declared_value, description, fragile, urgent,
			payment_mode, cod_amount, status, estimated_delivery
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + parcelColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		parcelModel.TrackingID,
		parcelModel.CustomerID,
		parcelModel.AgentID,
		parcelModel.PickupName,
		parcelModel.PickupPhone,
		parcelModel.PickupAddress,
		parcelModel.PickupCity,
		parcelModel.PickupPincode,
		parcelModel.DeliveryName,
		parcelModel.DeliveryPhone,
		parcelModel.DeliveryAddress,
		parcelModel.DeliveryCity,
		parcelModel.DeliveryPincode,
		parcelModel.Category,
		parcelModel.WeightKg,
		parcelModel.DeclaredValue,
		parcelModel.Description,
		parcelModel.Fragile,
		parcelModel.Urgent,
		parcelModel.PaymentMode,
		parcelModel.CODAmount,
		parcelModel.Status,
		parcelModel.EstimatedDelivery,
	)

	created, err := scanParcelRow(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrTrackingConflict
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`

	found, err := scanParcelRow(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(found), nil
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE tracking_id = $1`

	found, err := scanParcelRow(r.querier.QueryRow(ctx, query, trackingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbytracking error: %w", err)
	}

	return ToDomain(found), nil
}

// Query строит динамический WHERE по фильтру, условия комбинируются по AND.
// Чтение идет вне транзакций и не блокирует писателей.
func (r *Repository) Query(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumnList...).
		From("parcels").
		OrderBy("created_at DESC", "id DESC")

	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"tracking_id": pattern},
			sq.ILike{"delivery_name": pattern},
			sq.ILike{"delivery_address": pattern},
			sq.ILike{"delivery_city": pattern},
		})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Unassigned {
		builder = builder.Where(sq.Eq{"agent_id": nil})
	} else if filter.AgentID != nil {
		builder = builder.Where(sq.Eq{"agent_id": *filter.AgentID})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Urgent != nil {
		builder = builder.Where(sq.Eq{"urgent": *filter.Urgent})
	}
	if filter.PaymentMode != nil {
		builder = builder.Where(sq.Eq{"payment_mode": filter.PaymentMode.String()})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository query error: %w", err)
	}

	return r.queryList(ctx, query, args...)
}

// SetAgent — атомарная смена назначения: одна строка, одно поле.
func (r *Repository) SetAgent(ctx context.Context, parcelID int64, agentID *int64) error {
	query := `
		UPDATE parcels
		SET agent_id = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, parcelID, agentID)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository setagent error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, parcelID int64, status entities.ParcelStatusType, pickedUpAt, deliveredAt *time.Time) error {
	query := `
		UPDATE parcels
		SET status = $2, picked_up_at = $3, delivered_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, parcelID, status.String(), pickedUpAt, deliveredAt)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

func (r *Repository) GetOverdueBetween(ctx context.Context, from, to time.Time) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumnList...).
		From("parcels").
		Where(sq.NotEq{"status": terminalStatuses}).
		Where(sq.Gt{"estimated_delivery": from}).
		Where(sq.LtOrEq{"estimated_delivery": to}).
		OrderBy("estimated_delivery")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository overdue error: %w", err)
	}

	return r.queryList(ctx, query, args...)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		parcelModel, err := scanParcelRow(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, *parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func scanParcelRow(row pgx.Row) (*ParcelDB, error) {
	var p ParcelDB
	err := row.Scan(
		&p.ID,
		&p.TrackingID,
		&p.CustomerID,
		&p.AgentID,
		&p.PickupName,
		&p.PickupPhone,
		&p.PickupAddress,
		&p.PickupCity,
		&p.PickupPincode,
		&p.DeliveryName,
		&p.DeliveryPhone,
		&p.DeliveryAddress,
		&p.DeliveryCity,
		&p.DeliveryPincode,
		&p.Category,
		&p.WeightKg,
		&p.DeclaredValue,
		&p.Description,
		&p.Fragile,
		&p.Urgent,
		&p.PaymentMode,
		&p.CODAmount,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.PickedUpAt,
		&p.DeliveredAt,
		&p.EstimatedDelivery,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
