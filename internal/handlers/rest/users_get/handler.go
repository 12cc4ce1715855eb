package users_get

import (
	"encoding/json"
	"net/http"

	"parceltrack/internal/entities"
	"parceltrack/internal/generated/dto"
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
	query := r.URL.Query()
	filter := entities.UserFilter{
		Text: query.Get("text"),
	}
	if raw := query.Get("role"); raw != "" {
		role := entities.RoleType(raw)
		filter.Role = &role
	}

	userEntities, err := h.service.GetUsers(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	userDTOs := make([]dto.User, len(userEntities))
	for i, userEntity := range userEntities {
		userDTOs[i] = dto.User{
			ID:    userEntity.ID,
			Role:  userEntity.Role.String(),
			Name:  userEntity.Name,
			Email: userEntity.Email,
			Phone: userEntity.Phone,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
