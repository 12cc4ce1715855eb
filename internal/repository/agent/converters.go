package agent

import (
	"parceltrack/internal/entities"
)

func ToDomain(a *AgentDB) *entities.Agent {
	if a == nil {
		return nil
	}

	return &entities.Agent{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		VehicleType:   entities.VehicleType(a.VehicleType),
		VehicleNumber: a.VehicleNumber,
		IsActive:      a.IsActive,
		Capacity:      a.Capacity,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func FromDomainModify(agentModify *entities.AgentModify) *AgentModifyDB {
	if agentModify == nil {
		return nil
	}
	agentDB := &AgentModifyDB{}

	if agentModify.ID != nil {
		agentDB.ID = agentModify.ID
	}
	if agentModify.Name != nil {
		agentDB.Name = agentModify.Name
	}
	if agentModify.Email != nil {
		agentDB.Email = agentModify.Email
	}
	if agentModify.Phone != nil {
		agentDB.Phone = agentModify.Phone
	}
	if agentModify.VehicleType != nil {
		vehicleType := agentModify.VehicleType.String()
		agentDB.VehicleType = &vehicleType
	}
	if agentModify.VehicleNumber != nil {
		agentDB.VehicleNumber = agentModify.VehicleNumber
	}
	if agentModify.IsActive != nil {
		agentDB.IsActive = agentModify.IsActive
	}
	if agentModify.Capacity != nil {
		agentDB.Capacity = agentModify.Capacity
	}

	return agentDB
}

func ToDomainList(agentsDB []AgentDB) []entities.Agent {
	if len(agentsDB) == 0 {
		return []entities.Agent{}
	}

	result := make([]entities.Agent, len(agentsDB))
	for i, agentDB := range agentsDB {
		result[i] = *ToDomain(&agentDB)
	}
	return result
}
