package parcels_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
	"parceltrack/internal/handlers/rest/parcel_get"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntities, err := h.service.QueryParcels(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	parcelDTOs := make([]dto.Parcel, len(parcelEntities))
	for i := range parcelEntities {
		parcelDTOs[i] = parcel_get.ParcelToDTO(&parcelEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// parseFilter собирает фильтр из query-параметров, все условия - AND.
func parseFilter(r *http.Request) (entities.ParcelFilter, error) {
	query := r.URL.Query()
	filter := entities.ParcelFilter{
		Text: query.Get("text"),
	}

	if raw := query.Get("status"); raw != "" {
		status := entities.ParcelStatusType(raw)
		filter.Status = &status
	}
	if raw := query.Get("agent_ID"); raw != "" {
		agentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.AgentID = &agentID
	}
	if raw := query.Get("unassigned"); raw != "" {
		unassigned, err := strconv.ParseBool(raw)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.Unassigned = unassigned
	}
	if raw := query.Get("customer_ID"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.CustomerID = &customerID
	}
	if raw := query.Get("urgent"); raw != "" {
		urgent, err := strconv.ParseBool(raw)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.Urgent = &urgent
	}
	if raw := query.Get("payment_mode"); raw != "" {
		mode := entities.PaymentModeType(raw)
		filter.PaymentMode = &mode
	}
	if raw := query.Get("created_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.CreatedFrom = &from
	}
	if raw := query.Get("created_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.CreatedTo = &to
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.ParcelFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
