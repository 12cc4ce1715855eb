package agent_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/handlers/rest/agent_get"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var agentUpdateDTO dto.AgentUpdate
	err = json.NewDecoder(r.Body).Decode(&agentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentModifyEntity := entities.AgentModify{
		ID:            &id,
		Name:          agentUpdateDTO.Name,
		Email:         agentUpdateDTO.Email,
		Phone:         agentUpdateDTO.Phone,
		VehicleNumber: agentUpdateDTO.VehicleNumber,
		IsActive:      agentUpdateDTO.IsActive,
		Capacity:      agentUpdateDTO.Capacity,
	}
	if agentUpdateDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*agentUpdateDTO.VehicleType)
		agentModifyEntity.VehicleType = &vehicleType
	}

	updated, err := h.service.UpdateAgent(r.Context(), agentModifyEntity)
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
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(agent_get.AgentToDTO(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
