package domain

import "time"

// Vehicle is owned by the listing collaborator; the rental engine only reads
// the owner, the daily rate and the availability flag.
type Vehicle struct {
	ID          int32     `json:"id"`
	OwnerID     int32     `json:"owner_id"`
	Name        string    `json:"name"`
	PricePerDay int64     `json:"price_per_day"`
	IsAvailable bool      `json:"is_available"`
	CreatedOn   time.Time `json:"created_on"`
}
