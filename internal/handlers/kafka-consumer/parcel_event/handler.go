package parcel_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/notification"
	"parceltrack/internal/service/user"
	"parceltrack/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("parcel.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("parcel.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event parcelEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("type", event.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.events processing")

	domainEvent := entities.DomainEvent{
		Type:       entities.DomainEventType(event.Type),
		ParcelID:   event.ParcelID,
		TrackingID: event.TrackingID,
		CustomerID: event.CustomerID,
		AgentID:    event.AgentID,
		FromStatus: entities.ParcelStatusType(event.FromStatus),
		ToStatus:   entities.ParcelStatusType(event.ToStatus),
		ActorID:    event.ActorID,
		OccurredAt: event.OccurredAt,
	}

	err = h.notificationService.ProcessParcelEvent(ctx, domainEvent)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, user.ErrUserNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler recipient user not found")

		case errors.Is(err, notification.ErrNoRecipient):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler event has no recipient")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("parcel.events: processed")

	sess.MarkMessage(message, "")
	return false
}
