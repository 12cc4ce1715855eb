//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_put_test
package agent_put

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
	UpdateAgent(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error)
}
