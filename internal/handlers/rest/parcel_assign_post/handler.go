package parcel_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/agent"
	"parceltrack/internal/service/assignment"
	"parceltrack/internal/service/parcel"
	"parceltrack/pkg/logger"
)

const retryAfterSeconds = "1"

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
	var assignDTO dto.ParcelAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Assign(r.Context(), assignDTO.ParcelID, assignDTO.AgentID, assignDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrParcelTerminal),
			errors.Is(err, assignment.ErrAgentInactive),
			errors.Is(err, assignment.ErrAgentAtCapacity):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrParcelBusy):
			w.Header().Set("Retry-After", retryAfterSeconds)
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ParcelAssignResponse{
		ParcelID:        result.ParcelID,
		AgentID:         result.AgentID,
		PreviousAgentID: result.PreviousAgentID,
		TrackingID:      result.TrackingID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
