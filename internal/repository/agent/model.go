package agent

import "time"

type AgentDB struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	VehicleType   string
	VehicleNumber string
	IsActive      bool
	Capacity      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AgentModifyDB struct {
	ID            *int64
	Name          *string
	Email         *string
	Phone         *string
	VehicleType   *string
	VehicleNumber *string
	IsActive      *bool
	Capacity      *int
}
