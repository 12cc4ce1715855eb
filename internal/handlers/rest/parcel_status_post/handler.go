package parcel_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/parcel"
	"parceltrack/internal/service/transition"
	"parceltrack/pkg/logger"
)

// retryAfterSeconds подсказывает клиенту паузу перед повтором при 503.
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
	var updateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := transition.Request{
		ParcelID: updateDTO.ParcelID,
		ToStatus: entities.ParcelStatusType(updateDTO.Status),
		ActorID:  updateDTO.ActorID,
		Notes:    updateDTO.Notes,
		ProofRef: updateDTO.ProofRef,
	}
	if updateDTO.Location != nil {
		req.Location = &entities.GeoPoint{
			Lat:     updateDTO.Location.Lat,
			Lng:     updateDTO.Location.Lng,
			Address: updateDTO.Location.Address,
		}
	}

	event, err := h.service.Transition(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, transition.ErrUnknownStatus),
			errors.Is(err, transition.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, transition.ErrInvalidTransition),
			errors.Is(err, transition.ErrTerminalState):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, transition.ErrMissingProof):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, transition.ErrParcelBusy):
			w.Header().Set("Retry-After", retryAfterSeconds)
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StatusEvent{
		ID:         event.ID,
		ParcelID:   event.ParcelID,
		FromStatus: event.FromStatus.String(),
		ToStatus:   event.ToStatus.String(),
		ActorID:    event.ActorID,
		Notes:      event.Notes,
		ProofRef:   event.ProofRef,
		CreatedAt:  event.CreatedAt,
	}
	if event.Location != nil {
		response.Location = &dto.GeoPoint{
			Lat:     event.Location.Lat,
			Lng:     event.Location.Lng,
			Address: event.Location.Address,
		}
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
