//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agents_get_test
package agents_get

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
	GetAgents(ctx context.Context, filter entities.AgentFilter) ([]entities.Agent, error)
}
