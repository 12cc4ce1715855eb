package entities

import "time"

type Agent struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	VehicleType   VehicleType
	VehicleNumber string
	IsActive      bool
	Capacity      int

	// ActiveParcelIDs — обратная ссылка, вычисляется по parcels.agent_id,
	// агент не владеет посылками.
	ActiveParcelIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type VehicleType string

const (
	Bicycle    VehicleType = "bicycle"
	Motorcycle VehicleType = "motorcycle"
	Van        VehicleType = "van"
)

const DefaultVehicleType = Motorcycle

func (t VehicleType) String() string {
	return string(t)
}

// DefaultAgentCapacity — placeholder-политика, лимиты не подтверждены продуктом.
const DefaultAgentCapacity = 5

type AgentModify struct {
	ID            *int64
	Name          *string
	Email         *string
	Phone         *string
	VehicleType   *VehicleType
	VehicleNumber *string
	IsActive      *bool
	Capacity      *int
}

type AgentFilter struct {
	IsActive    *bool
	VehicleType *VehicleType
	Text        string
}
