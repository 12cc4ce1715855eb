//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_test
package agent

import (
	"context"

	"parceltrack/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, agentModifyEntity entities.AgentModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
	GetAll(ctx context.Context, filter entities.AgentFilter) ([]entities.Agent, error)
	Update(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error)
}
