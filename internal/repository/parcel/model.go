package parcel

import "time"

type ParcelDB struct {
	ID         int64
	TrackingID string
	CustomerID int64
	AgentID    *int64

	PickupName    string
	PickupPhone   string
	PickupAddress string
	PickupCity    string
	PickupPincode string

	DeliveryName    string
	DeliveryPhone   string
	DeliveryAddress string
	DeliveryCity    string
	DeliveryPincode string

	Category      string
	WeightKg      float64
	DeclaredValue int64
	Description   string
	Fragile       bool
	Urgent        bool

	PaymentMode string
	CODAmount   int64

	Status string

	CreatedAt         time.Time
	UpdatedAt         time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	EstimatedDelivery time.Time
}
