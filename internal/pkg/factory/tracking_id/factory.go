package tracking_id

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "TRK"

type TrackingIDFactory struct{}

func New() *TrackingIDFactory {
	return &TrackingIDFactory{}
}

// NewTrackingID возвращает внешний идентификатор вида TRK-9F3A0C12B7D4.
// Уникальность дополнительно страхует unique-индекс в БД.
func (f *TrackingIDFactory) NewTrackingID() string {
	id := uuid.New()
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return prefix + "-" + compact[:12]
}
