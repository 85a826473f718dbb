package domain

import "time"

// DateRange is the half-open interval [Start, End).
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Valid reports whether the range is non-empty.
func (r DateRange) Valid() bool {
	return r.Start.Before(r.End)
}

// Overlaps uses half-open semantics: a range ending exactly when another
// starts does not overlap it.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

type Rental struct {
	ID              int32        `json:"id"`
	VehicleID       int32        `json:"vehicle_id"`
	RenterID        int32        `json:"renter_id"`
	PickupLocation  string       `json:"pickup_location"`
	DropOffLocation string       `json:"drop_off_location"`
	Period          DateRange    `json:"rental_period"`
	TotalCost       int64        `json:"total_cost"`
	Status          RentalStatus `json:"status"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`
}

// Blocks reports whether r holds a date range that overlaps period.
func (r *Rental) Blocks(period DateRange) bool {
	return r.Status.Blocking() && r.Period.Overlaps(period)
}

// SweepResult reports the outcome of an expiry sweep.
type SweepResult struct {
	Processed int `json:"processed"`
	Success   int `json:"success"`
}
