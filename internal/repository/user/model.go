package user

import "time"

type UserDB struct {
	ID        int64
	Role      string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModifyDB struct {
	ID    *int64
	Role  *string
	Name  *string
	Email *string
	Phone *string
}
