package delivery_estimate

import "time"

// сроки — placeholder-политика, см. DESIGN.md
const (
	urgentWindow  = 24 * time.Hour
	regularWindow = 72 * time.Hour
)

type DeliveryEstimateFactory struct{}

func New() *DeliveryEstimateFactory {
	return &DeliveryEstimateFactory{}
}

func (f *DeliveryEstimateFactory) EstimatedDelivery(urgent bool, baseTime time.Time) time.Time {
	if urgent {
		return baseTime.Add(urgentWindow)
	}
	return baseTime.Add(regularWindow)
}
