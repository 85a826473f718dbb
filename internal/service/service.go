package service

import (
	"context"
	"time"

	"rentwheels-backend/internal/domain"
)

// CreateRentalInput is a booking request as received from the boundary.
type CreateRentalInput struct {
	VehicleID       int32     `validate:"required,gt=0"`
	StartDate       time.Time `validate:"required"`
	EndDate         time.Time `validate:"required,gtfield=StartDate"`
	PickupLocation  string    `validate:"required,max=255"`
	DropOffLocation string    `validate:"required,max=255"`
}

type RentalService interface {
	CreateRental(ctx context.Context, renterID int32, in CreateRentalInput) (*domain.Rental, error)
	ChangeRentalStatus(ctx context.Context, rentalID int32, actor domain.Actor, requested domain.RentalStatus) (*domain.Rental, error)
	AcceptRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error)
	RejectRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error)
	CancelRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error)
	CompleteRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error)
	GetRental(ctx context.Context, actor domain.Actor, rentalID int32) (*domain.Rental, error)
	ListMyRentals(ctx context.Context, renterID int32) ([]domain.Rental, error)
	ListProviderRentals(ctx context.Context, providerID int32) ([]domain.Rental, error)
	FindOverlappingRental(ctx context.Context, vehicleID int32, start, end time.Time) (*domain.Rental, error)
	CompleteExpiredRentals(ctx context.Context) (domain.SweepResult, error)
}

type AdminService interface {
	ChangeProviderStatus(ctx context.Context, providerID int32, requested domain.ProviderStatus) (*domain.User, error)
	ListPendingProviders(ctx context.Context) ([]domain.User, error)
}

type VehicleService interface {
	IsVehicleOwner(ctx context.Context, vehicleID, userID int32) (bool, error)
	SetVehicleAvailability(ctx context.Context, actor domain.Actor, vehicleID int32, available bool) error
}

type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, vehicleName string, period domain.DateRange) error
	SendRentalStatusNotification(ctx context.Context, renterEmail, vehicleName string, status domain.RentalStatus) error
	SendProviderStatusNotification(ctx context.Context, email, name string, status domain.ProviderStatus) error
}

// Clock supplies the current time to the expiry sweep.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock {
	return systemClock{}
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
