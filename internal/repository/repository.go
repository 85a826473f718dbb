package repository

import (
	"context"
	"time"

	"rentwheels-backend/internal/domain"
)

// Repositories return *domain.Error with KindNotFound for missing rows and
// KindConflict for lost compare-and-set races or overlapping bookings.

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	// UpdateProviderStatus sets the status only if it is still `from`.
	UpdateProviderStatus(ctx context.Context, id int32, from, to domain.ProviderStatus) (*domain.User, error)
	ListByProviderStatus(ctx context.Context, status domain.ProviderStatus) ([]domain.User, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListIDsByOwner(ctx context.Context, ownerID int32) ([]int32, error)
	UpdateAvailability(ctx context.Context, id int32, available bool) error
}

type RentalRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// FindOverlapping returns a non-cancelled rental of the vehicle whose
	// period overlaps the given one, or nil.
	FindOverlapping(ctx context.Context, vehicleID int32, period domain.DateRange) (*domain.Rental, error)
	ListByRenter(ctx context.Context, renterID int32) ([]domain.Rental, error)
	ListByVehicleIDs(ctx context.Context, vehicleIDs []int32) ([]domain.Rental, error)
	ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
	// CreateIfNoOverlap re-checks for overlap and inserts atomically.
	CreateIfNoOverlap(ctx context.Context, rental *domain.Rental) error
	// UpdateStatus sets the status only if it is still `from`.
	UpdateStatus(ctx context.Context, id int32, from, to domain.RentalStatus) (*domain.Rental, error)
}
