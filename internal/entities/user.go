package entities

import "time"

type User struct {
	ID        int64
	Role      RoleType
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoleType string

const (
	RoleCustomer RoleType = "customer"
	RoleAgent    RoleType = "agent"
	RoleAdmin    RoleType = "admin"
)

const DefaultRoleType = RoleCustomer

func (r RoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID    *int64
	Role  *RoleType
	Name  *string
	Email *string
	Phone *string
}

type UserFilter struct {
	Role *RoleType
	Text string
}
