package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/service/parcel"
	"parceltrack/internal/service/user"
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
	var bookingDTO dto.ParcelBookingRequest
	err := json.NewDecoder(r.Body).Decode(&bookingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	booking := entities.ParcelBooking{
		CustomerID: bookingDTO.CustomerID,
		Pickup: entities.ContactPoint{
			Name:    bookingDTO.Pickup.Name,
			Phone:   bookingDTO.Pickup.Phone,
			Address: bookingDTO.Pickup.Address,
			City:    bookingDTO.Pickup.City,
			Pincode: bookingDTO.Pickup.Pincode,
		},
		Delivery: entities.ContactPoint{
			Name:    bookingDTO.Delivery.Name,
			Phone:   bookingDTO.Delivery.Phone,
			Address: bookingDTO.Delivery.Address,
			City:    bookingDTO.Delivery.City,
			Pincode: bookingDTO.Delivery.Pincode,
		},
		Category:      entities.ParcelCategoryType(bookingDTO.Category),
		WeightKg:      bookingDTO.WeightKg,
		DeclaredValue: bookingDTO.DeclaredValue,
		Description:   bookingDTO.Description,
		Fragile:       bookingDTO.Fragile,
		Urgent:        bookingDTO.Urgent,
		PaymentMode:   entities.PaymentModeType(bookingDTO.PaymentMode),
		CODAmount:     bookingDTO.CODAmount,
	}

	created, err := h.service.BookParcel(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidContactPoint),
			errors.Is(err, parcel.ErrInvalidCategory),
			errors.Is(err, parcel.ErrInvalidWeight),
			errors.Is(err, parcel.ErrInvalidValue),
			errors.Is(err, parcel.ErrInvalidPaymentMode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrCODAmountMismatch),
			errors.Is(err, parcel.ErrCustomerRoleMismatch):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrTrackingConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ParcelBookingResponse{
		ID:                created.ID,
		TrackingID:        created.TrackingID,
		Status:            created.Status.String(),
		EstimatedDelivery: created.EstimatedDelivery,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
