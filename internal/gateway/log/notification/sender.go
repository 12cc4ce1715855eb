package notification

import (
	"context"

	servicenotification "parceltrack/internal/service/notification"
	"parceltrack/pkg/logger"
)

// Sender — лог-бекенд отправки уведомлений. Реальные каналы
// (email/SMS/push) подключаются отдельными реализациями Sender.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{
		log: log.With(),
	}
}

func (s *Sender) Send(_ context.Context, n servicenotification.Notification) error {
	s.log.With(
		logger.NewField("recipient", n.RecipientName),
		logger.NewField("email", n.RecipientEmail),
		logger.NewField("phone", n.RecipientPhone),
		logger.NewField("subject", n.Subject),
	).Info(n.Body)

	return nil
}
