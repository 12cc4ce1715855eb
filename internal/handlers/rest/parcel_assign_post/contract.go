//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_assign_post_test
package parcel_assign_post

import (
	"context"

	"parceltrack/internal/service/assignment"
	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Assign(ctx context.Context, parcelID, agentID, actorID int64) (*assignment.Result, error)
}
