package agent

import (
	"context"
	"fmt"

	"parceltrack/internal/entities"
)

type Agent struct {
	repository Repository
}

func New(repository Repository) *Agent {
	return &Agent{
		repository: repository,
	}
}

func (s *Agent) CreateAgent(ctx context.Context, agentModify entities.AgentModify) (int64, error) {
	if agentModify.Name == nil ||
		agentModify.Email == nil ||
		agentModify.Phone == nil ||
		agentModify.VehicleType == nil ||
		agentModify.VehicleNumber == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*agentModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*agentModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*agentModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidVehicle(agentModify.VehicleType.String()) {
		return 0, ErrInvalidVehicle
	}
	if !isValidVehicleNumber(*agentModify.VehicleNumber) {
		return 0, ErrInvalidVehicleNumber
	}

	// placeholder-политика: лимит не задан явно — берем дефолт
	if agentModify.Capacity == nil {
		capacity := entities.DefaultAgentCapacity
		agentModify.Capacity = &capacity
	}
	if !isValidCapacity(*agentModify.Capacity) {
		return 0, ErrInvalidCapacity
	}

	if agentModify.IsActive == nil {
		active := true
		agentModify.IsActive = &active
	}

	id, err := s.repository.Create(ctx, agentModify)
	if err != nil {
		return 0, fmt.Errorf("create agent: %w", err)
	}

	return id, nil
}

// UpdateAgent обновляет только переданные поля. Деактивация (IsActive=false)
// не трогает уже назначенные посылки — она лишь запрещает новые назначения.
func (s *Agent) UpdateAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error) {
	if agentModify.Name == nil &&
		agentModify.Email == nil &&
		agentModify.Phone == nil &&
		agentModify.VehicleType == nil &&
		agentModify.VehicleNumber == nil &&
		agentModify.IsActive == nil &&
		agentModify.Capacity == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if agentModify.Name != nil && !isValidName(*agentModify.Name) {
		return nil, ErrInvalidName
	}
	if agentModify.Email != nil && !isValidEmail(*agentModify.Email) {
		return nil, ErrInvalidEmail
	}
	if agentModify.Phone != nil && !isValidPhone(*agentModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if agentModify.VehicleType != nil && !isValidVehicle(agentModify.VehicleType.String()) {
		return nil, ErrInvalidVehicle
	}
	if agentModify.VehicleNumber != nil && !isValidVehicleNumber(*agentModify.VehicleNumber) {
		return nil, ErrInvalidVehicleNumber
	}
	if agentModify.Capacity != nil && !isValidCapacity(*agentModify.Capacity) {
		return nil, ErrInvalidCapacity
	}

	updated, err := s.repository.Update(ctx, agentModify)
	if err != nil {
		return nil, fmt.Errorf("update agent: %w", err)
	}
	return updated, nil
}

func (s *Agent) GetAgent(ctx context.Context, id int64) (*entities.Agent, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}

	return found, nil
}

func (s *Agent) GetAgents(ctx context.Context, filter entities.AgentFilter) ([]entities.Agent, error) {
	agents, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get agents: %w", err)
	}

	return agents, nil
}
