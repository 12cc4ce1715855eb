//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_history_get_test
package parcel_history_get

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetHistory(ctx context.Context, parcelID int64) ([]entities.StatusEvent, error)
}
