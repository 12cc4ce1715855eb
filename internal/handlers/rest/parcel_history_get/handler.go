package parcel_history_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/parcel"
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

	events, err := h.service.GetHistory(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	eventDTOs := make([]dto.StatusEvent, len(events))
	for i := range events {
		eventDTOs[i] = StatusEventToDTO(&events[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(eventDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// StatusEventToDTO переиспользуется хендлером публичного трекинга.
func StatusEventToDTO(event *entities.StatusEvent) dto.StatusEvent {
	eventDTO := dto.StatusEvent{
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
		eventDTO.Location = &dto.GeoPoint{
			Lat:     event.Location.Lat,
			Lng:     event.Location.Lng,
			Address: event.Location.Address,
		}
	}
	return eventDTO
}
