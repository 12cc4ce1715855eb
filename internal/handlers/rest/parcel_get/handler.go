package parcel_get

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

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(ParcelToDTO(parcelEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// ParcelToDTO переиспользуется хендлерами трекинга и списков.
func ParcelToDTO(p *entities.Parcel) dto.Parcel {
	return dto.Parcel{
		ID:         p.ID,
		TrackingID: p.TrackingID,
		CustomerID: p.CustomerID,
		AgentID:    p.AgentID,
		Pickup: dto.ContactPoint{
			Name:    p.Pickup.Name,
			Phone:   p.Pickup.Phone,
			Address: p.Pickup.Address,
			City:    p.Pickup.City,
			Pincode: p.Pickup.Pincode,
		},
		Delivery: dto.ContactPoint{
			Name:    p.Delivery.Name,
			Phone:   p.Delivery.Phone,
			Address: p.Delivery.Address,
			City:    p.Delivery.City,
			Pincode: p.Delivery.Pincode,
		},
		Category:          p.Category.String(),
		WeightKg:          p.WeightKg,
		DeclaredValue:     p.DeclaredValue,
		Description:       p.Description,
		Fragile:           p.Fragile,
		Urgent:            p.Urgent,
		PaymentMode:       p.PaymentMode.String(),
		CODAmount:         p.CODAmount,
		Status:            p.Status.String(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		PickedUpAt:        p.PickedUpAt,
		DeliveredAt:       p.DeliveredAt,
		EstimatedDelivery: p.EstimatedDelivery,
	}
}
