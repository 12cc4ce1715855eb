package entities

import "time"

type Parcel struct {
	ID         int64
	TrackingID string
	CustomerID int64
	AgentID    *int64

	Pickup   ContactPoint
	Delivery ContactPoint

	Category      ParcelCategoryType
	WeightKg      float64
	DeclaredValue int64
	Description   string
	Fragile       bool
	Urgent        bool

	PaymentMode PaymentModeType
	CODAmount   int64

	Status ParcelStatusType

	CreatedAt         time.Time
	UpdatedAt         time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	EstimatedDelivery time.Time
}

type ContactPoint struct {
	Name    string
	Phone   string
	Address string
	City    string
	Pincode string
}

type ParcelStatusType string

const (
	ParcelPending        ParcelStatusType = "pending"
	ParcelPickedUp       ParcelStatusType = "picked_up"
	ParcelInTransit      ParcelStatusType = "in_transit"
	ParcelOutForDelivery ParcelStatusType = "out_for_delivery"
	ParcelDelivered      ParcelStatusType = "delivered"
	ParcelFailed         ParcelStatusType = "failed"
	ParcelReturned       ParcelStatusType = "returned"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, что из статуса больше нет переходов.
func (s ParcelStatusType) IsTerminal() bool {
	switch s {
	case ParcelDelivered, ParcelFailed, ParcelReturned:
		return true
	default:
		return false
	}
}

type PaymentModeType string

const (
	PaymentPrepaid PaymentModeType = "prepaid"
	PaymentCOD     PaymentModeType = "cod"
)

func (m PaymentModeType) String() string {
	return string(m)
}

type ParcelCategoryType string

const (
	CategoryDocuments   ParcelCategoryType = "documents"
	CategoryElectronics ParcelCategoryType = "electronics"
	CategoryClothing    ParcelCategoryType = "clothing"
	CategoryFood        ParcelCategoryType = "food"
	CategoryOther       ParcelCategoryType = "other"
)

func (c ParcelCategoryType) String() string {
	return string(c)
}

// ParcelBooking — входные данные бронирования, до генерации tracking id.
type ParcelBooking struct {
	CustomerID    int64
	Pickup        ContactPoint
	Delivery      ContactPoint
	Category      ParcelCategoryType
	WeightKg      float64
	DeclaredValue int64
	Description   string
	Fragile       bool
	Urgent        bool
	PaymentMode   PaymentModeType
	CODAmount     int64
}

// ParcelFilter — критерии списочных запросов порталов, комбинируются по AND.
type ParcelFilter struct {
	Text        string
	Status      *ParcelStatusType
	AgentID     *int64
	Unassigned  bool
	CustomerID  *int64
	Urgent      *bool
	PaymentMode *PaymentModeType
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       uint64
	Offset      uint64
}
