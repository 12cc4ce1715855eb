package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (role, name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Role,
		userModifyModel.Name,
		userModifyModel.Email,
		userModifyModel.Phone,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, user.ErrConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.Update("users")

	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Email != nil {
		builder = builder.Set("email", userModifyModel.Email)
	}
	if userModifyModel.Phone != nil {
		builder = builder.Set("phone", userModifyModel.Phone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING id, role, name, email, phone, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Role,
			&userModel.Name,
			&userModel.Email,
			&userModel.Phone,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}

		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, role, name, email, phone, created_at, updated_at
		FROM users
		WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userModel.ID,
			&userModel.Role,
			&userModel.Name,
			&userModel.Email,
			&userModel.Phone,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	builder := qb.
		Select("id", "role", "name", "email", "phone", "created_at", "updated_at").
		From("users").
		OrderBy("id")

	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": filter.Role.String()})
	}
	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Role,
			&userModel.Name,
			&userModel.Email,
			&userModel.Phone,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(userModels), nil
}
