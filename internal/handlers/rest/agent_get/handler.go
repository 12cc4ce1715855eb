package agent_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentEntity, err := h.service.GetAgent(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(AgentToDTO(agentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// AgentToDTO переиспользуется хендлерами списка и обновления.
func AgentToDTO(a *entities.Agent) dto.Agent {
	return dto.Agent{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		VehicleType:     a.VehicleType.String(),
		VehicleNumber:   a.VehicleNumber,
		IsActive:        a.IsActive,
		Capacity:        a.Capacity,
		ActiveParcelIDs: a.ActiveParcelIDs,
	}
}
