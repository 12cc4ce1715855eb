package event

import "time"

type StatusEventDB struct {
	ID              int64
	ParcelID        int64
	FromStatus      string
	ToStatus        string
	ActorID         int64
	Notes           string
	ProofRef        *string
	LocationLat     *float64
	LocationLng     *float64
	LocationAddress *string
	CreatedAt       time.Time
}
