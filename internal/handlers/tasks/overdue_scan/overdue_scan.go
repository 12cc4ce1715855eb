package overdue_scan

import (
	"context"
	"time"
)

type Service interface {
	ProcessOverdueParcels(ctx context.Context, cursor time.Time) (time.Time, error)
}

type OverdueScan struct {
	service  Service
	interval time.Duration
	cursor   time.Time
}

func NewOverdueScan(service Service, interval time.Duration, lookback time.Duration) *OverdueScan {
	// Стартовый курсор уходит в прошлое на lookback, чтобы после рестарта
	// воркера не потерять просрочки, случившиеся пока он лежал.
	return &OverdueScan{
		service:  service,
		interval: interval,
		cursor:   time.Now().UTC().Add(-lookback),
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (o *OverdueScan) TTL() time.Duration {
	return o.interval
}

// Do выполняет логику задачи.
func (o *OverdueScan) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	newCursor, err := o.service.ProcessOverdueParcels(ctxWithTimeout, o.cursor)
	if err != nil {
		return err
	}

	if !newCursor.IsZero() && newCursor.After(o.cursor) {
		o.cursor = newCursor
	}

	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (o *OverdueScan) Info() string {
	return "overdue parcels scan"
}
