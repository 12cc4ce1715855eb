package parcel_unassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/assignment"
	"parceltrack/internal/service/parcel"
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
	var unassignDTO dto.ParcelUnassignRequest
	err := json.NewDecoder(r.Body).Decode(&unassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Unassign(r.Context(), unassignDTO.ParcelID, unassignDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrParcelNotPending),
			errors.Is(err, assignment.ErrParcelNotAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrParcelBusy):
			w.Header().Set("Retry-After", retryAfterSeconds)
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
