package agents_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/handlers/rest/agent_get"
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
	query := r.URL.Query()
	filter := entities.AgentFilter{
		Text: query.Get("text"),
	}
	if raw := query.Get("is_active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.IsActive = &isActive
	}
	if raw := query.Get("vehicle_type"); raw != "" {
		vehicleType := entities.VehicleType(raw)
		filter.VehicleType = &vehicleType
	}

	agentEntities, err := h.service.GetAgents(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	agentDTOs := make([]dto.Agent, len(agentEntities))
	for i := range agentEntities {
		agentDTOs[i] = agent_get.AgentToDTO(&agentEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(agentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
