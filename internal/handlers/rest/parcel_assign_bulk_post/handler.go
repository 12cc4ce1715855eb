package parcel_assign_bulk_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/assignment"
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

// ServeHTTP всегда отвечает 200 на принятый батч: частичный успех
// разворачивается в поэлементные исходы.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var bulkDTO dto.ParcelBulkAssignRequest
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcomes, err := h.service.AssignMany(r.Context(), bulkDTO.ParcelIDs, bulkDTO.AgentID, bulkDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrEmptyBatch),
			errors.Is(err, assignment.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	outcomeDTOs := make([]dto.ParcelAssignOutcome, len(outcomes))
	for i, outcome := range outcomes {
		outcomeDTOs[i] = dto.ParcelAssignOutcome{
			ParcelID: outcome.ParcelID,
			Assigned: outcome.Err == nil,
		}
		if outcome.Err != nil {
			outcomeDTOs[i].Error = outcome.Err.Error()
			continue
		}
		outcomeDTOs[i].AgentID = &outcome.Result.AgentID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(outcomeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
