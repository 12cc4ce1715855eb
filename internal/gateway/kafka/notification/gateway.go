package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"parceltrack/internal/entities"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Gateway публикует доменные события в Kafka. Подписывается на
// внутрипроцессную шину, ключ сообщения — ID посылки, чтобы события
// одной посылки легли в одну партицию по порядку.
type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) Publish(_ context.Context, event entities.DomainEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("marshal parcel event: %w", err)
	}

	key := strconv.FormatInt(event.ParcelID, 10)

	start := time.Now()
	err = g.producer.SendMessage(g.topic, key, payload)
	EventPublishDuration.WithLabelValues(g.topic, event.Type.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		EventsPublishedTotal.WithLabelValues(g.topic, event.Type.String(), outcomeError).Inc()
		return fmt.Errorf("publish parcel event %s: %w", event.Type, err)
	}

	EventsPublishedTotal.WithLabelValues(g.topic, event.Type.String(), outcomeOK).Inc()
	return nil
}
