//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"parceltrack/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetAll(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
}
