package service

import (
	"context"
	"fmt"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

// FindOverlappingRental returns a non-cancelled rental of the vehicle whose
// period overlaps [start, end), or nil when the vehicle is free. Touching
// ranges do not overlap.
func (s *rentalService) FindOverlappingRental(ctx context.Context, vehicleID int32, start, end time.Time) (*domain.Rental, error) {
	period := domain.DateRange{Start: start, End: end}
	if !period.Valid() {
		return nil, domain.NewValidationError("end date must be after start date")
	}
	existing, err := s.rentalRepo.FindOverlapping(ctx, vehicleID, period)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Blocks(period) {
		return nil, nil
	}
	return existing, nil
}

func bookingConflictError(existing *domain.Rental) error {
	return domain.NewConflictError(fmt.Sprintf("vehicle is already booked from %s to %s",
		existing.Period.Start.Format(time.DateOnly), existing.Period.End.Format(time.DateOnly)))
}

// isVehicleOwner looks the vehicle up and compares its owner. A missing
// vehicle is NotFound, not false.
func isVehicleOwner(ctx context.Context, vehicles repository.VehicleRepository, vehicleID, userID int32) (bool, error) {
	v, err := vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	return v.OwnerID == userID, nil
}
