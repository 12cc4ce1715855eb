package agent

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/agent"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// terminalStatuses дублирует entities.ParcelStatusType.IsTerminal для SQL.
var terminalStatuses = []string{"delivered", "failed", "returned"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, agentModifyEntity entities.AgentModify) (int64, error) {
	agentModifyModel := FromDomainModify(&agentModifyEntity)
	query := `INSERT INTO agents (name, email, phone, vehicle_type, vehicle_number, is_active, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		agentModifyModel.Name,
		agentModifyModel.Email,
		agentModifyModel.Phone,
		agentModifyModel.VehicleType,
		agentModifyModel.VehicleNumber,
		agentModifyModel.IsActive,
		agentModifyModel.Capacity,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, agent.ErrConflict
		}
		return 0, fmt.Errorf("unexpected agent repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error) {
	agentModifyModel := FromDomainModify(&agentModifyEntity)

	builder := qb.Update("agents")

	if agentModifyModel.Name != nil {
		builder = builder.Set("name", agentModifyModel.Name)
	}
	if agentModifyModel.Email != nil {
		builder = builder.Set("email", agentModifyModel.Email)
	}
	if agentModifyModel.Phone != nil {
		builder = builder.Set("phone", agentModifyModel.Phone)
	}
	if agentModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", agentModifyModel.VehicleType)
	}
	if agentModifyModel.VehicleNumber != nil {
		builder = builder.Set("vehicle_number", agentModifyModel.VehicleNumber)
	}
	if agentModifyModel.IsActive != nil {
		builder = builder.Set("is_active", agentModifyModel.IsActive)
	}
	if agentModifyModel.Capacity != nil {
		builder = builder.Set("capacity", agentModifyModel.Capacity)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": agentModifyModel.ID}).
		Suffix("RETURNING id, name, email, phone, vehicle_type, vehicle_number, is_active, capacity, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	var agentModel AgentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Email,
			&agentModel.Phone,
			&agentModel.VehicleType,
			&agentModel.VehicleNumber,
			&agentModel.IsActive,
			&agentModel.Capacity,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, agent.ErrConflict
		}

		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	return ToDomain(&agentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Agent, error) {
	query := `SELECT id, name, email, phone, vehicle_type, vehicle_number, is_active, capacity, created_at, updated_at
		FROM agents
		WHERE id = $1`

	var agentModel AgentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Email,
			&agentModel.Phone,
			&agentModel.VehicleType,
			&agentModel.VehicleNumber,
			&agentModel.IsActive,
			&agentModel.Capacity,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		return nil, fmt.Errorf("unexpected agent repository getbyid error: %w", err)
	}

	agentEntity := ToDomain(&agentModel)

	activeParcelIDs, err := r.getActiveParcelIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	agentEntity.ActiveParcelIDs = activeParcelIDs

	return agentEntity, nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.AgentFilter) ([]entities.Agent, error) {
	builder := qb.
		Select("id", "name", "email", "phone", "vehicle_type", "vehicle_number", "is_active", "capacity", "created_at", "updated_at").
		From("agents").
		OrderBy("id")

	if filter.IsActive != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.IsActive})
	}
	if filter.VehicleType != nil {
		builder = builder.Where(sq.Eq{"vehicle_type": filter.VehicleType.String()})
	}
	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"vehicle_number": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		var agentModel AgentDB
		err := rows.Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Email,
			&agentModel.Phone,
			&agentModel.VehicleType,
			&agentModel.VehicleNumber,
			&agentModel.IsActive,
			&agentModel.Capacity,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
		}
		agentModels = append(agentModels, agentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}

	return ToDomainList(agentModels), nil
}

// CountActiveParcels считает незавершенные посылки агента.
// Источник правды о занятости — parcels.agent_id.
func (r *Repository) CountActiveParcels(ctx context.Context, agentID int64) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("parcels").
		Where(sq.Eq{"agent_id": agentID}).
		Where(sq.NotEq{"status": terminalStatuses})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected agent repository count error: %w", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected agent repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) getActiveParcelIDs(ctx context.Context, agentID int64) ([]int64, error) {
	builder := qb.
		Select("id").
		From("parcels").
		Where(sq.Eq{"agent_id": agentID}).
		Where(sq.NotEq{"status": terminalStatuses}).
		OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository active parcels error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository active parcels error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected agent repository active parcels error: %w", err)
		}
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository active parcels error: %w", err)
	}

	return ids, nil
}
