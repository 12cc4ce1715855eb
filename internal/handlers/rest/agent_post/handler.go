package agent_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/agent"
	"parceltrack/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var agentCreateDTO dto.AgentCreate
	err := json.NewDecoder(r.Body).Decode(&agentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleType := entities.VehicleType(agentCreateDTO.VehicleType)
	agentModifyEntity := entities.AgentModify{
		Name:          &agentCreateDTO.Name,
		Email:         &agentCreateDTO.Email,
		Phone:         &agentCreateDTO.Phone,
		VehicleType:   &vehicleType,
		VehicleNumber: &agentCreateDTO.VehicleNumber,
		Capacity:      agentCreateDTO.Capacity,
	}

	id, err := h.service.CreateAgent(r.Context(), agentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrMissingRequiredFields),
			errors.Is(err, agent.ErrInvalidName),
			errors.Is(err, agent.ErrInvalidEmail),
			errors.Is(err, agent.ErrInvalidPhone),
			errors.Is(err, agent.ErrInvalidVehicle),
			errors.Is(err, agent.ErrInvalidVehicleNumber),
			errors.Is(err, agent.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, agent.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AgentCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
