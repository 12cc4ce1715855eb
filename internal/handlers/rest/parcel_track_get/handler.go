package parcel_track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/handlers/rest/parcel_get"
	"parceltrack/internal/handlers/rest/parcel_history_get"
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
	trackingID := mux.Vars(r)["trackingId"]

	parcelEntity, err := h.service.GetParcelByTrackingID(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	events, err := h.service.GetHistory(r.Context(), parcelEntity.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TrackingResponse{
		Parcel: parcel_get.ParcelToDTO(parcelEntity),
		Events: make([]dto.StatusEvent, len(events)),
	}
	for i := range events {
		response.Events[i] = parcel_history_get.StatusEventToDTO(&events[i])
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
