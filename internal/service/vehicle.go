package service

import (
	"context"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) IsVehicleOwner(ctx context.Context, vehicleID, userID int32) (bool, error) {
	return isVehicleOwner(ctx, s.vehicleRepo, vehicleID, userID)
}

func (s *vehicleService) SetVehicleAvailability(ctx context.Context, actor domain.Actor, vehicleID int32, available bool) error {
	if !actor.IsAdmin() {
		owner, err := s.IsVehicleOwner(ctx, vehicleID, actor.ID)
		if err != nil {
			return err
		}
		if !owner {
			return domain.NewForbiddenError("not the owner of this vehicle")
		}
	}
	if err := s.vehicleRepo.UpdateAvailability(ctx, vehicleID, available); err != nil {
		return err
	}
	logger.Info("Vehicle availability updated", "vehicleID", vehicleID, "available", available, "actorID", actor.ID)
	return nil
}
