package service

import (
	"context"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/events"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
	"rentwheels-backend/internal/utils"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	publisher   events.Publisher
	clock       Clock
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	publisher events.Publisher,
	clock Clock,
) RentalService {
	if clock == nil {
		clock = SystemClock()
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		publisher:   publisher,
		clock:       clock,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, renterID int32, in CreateRentalInput) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.CreateRental", "renterID", renterID, "vehicleID", in.VehicleID)

	if err := validateStruct(in); err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err, "renterID", renterID)
		return nil, err
	}
	period := domain.DateRange{Start: in.StartDate.UTC(), End: in.EndDate.UTC()}

	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err, "vehicleID", in.VehicleID)
		return nil, err
	}

	if err := domain.CanCreateRental(vehicle.OwnerID == renterID).Err(); err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err, "vehicleID", in.VehicleID)
		return nil, err
	}

	if !vehicle.IsAvailable {
		err := domain.NewUnavailableError("vehicle unavailable")
		logger.ExitMethodWithError("rentalService.CreateRental", err, "vehicleID", in.VehicleID)
		return nil, err
	}

	existing, err := s.FindOverlappingRental(ctx, vehicle.ID, period.Start, period.End)
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err, "vehicleID", in.VehicleID)
		return nil, err
	}
	if existing != nil {
		err := bookingConflictError(existing)
		logger.ExitMethodWithError("rentalService.CreateRental", err, "vehicleID", in.VehicleID, "conflictingRentalID", existing.ID)
		return nil, err
	}

	totalCost, err := utils.CalculateTotalCost(period.Start, period.End, vehicle.PricePerDay)
	if err != nil {
		verr := domain.NewValidationError(err.Error())
		logger.ExitMethodWithError("rentalService.CreateRental", verr, "vehicleID", in.VehicleID)
		return nil, verr
	}

	rental := &domain.Rental{
		VehicleID:       vehicle.ID,
		RenterID:        renterID,
		PickupLocation:  in.PickupLocation,
		DropOffLocation: in.DropOffLocation,
		Period:          period,
		TotalCost:       totalCost,
		Status:          domain.RentalStatusPending,
	}
	if err := s.rentalRepo.CreateIfNoOverlap(ctx, rental); err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err, "vehicleID", in.VehicleID)
		return nil, err
	}

	if err := s.publisher.RentalCreated(ctx, rental); err != nil {
		logger.Warn("Failed to publish rental event", "rentalID", rental.ID, "error", err)
	}
	s.notifyOwner(ctx, rental, vehicle)

	logger.ExitMethod("rentalService.CreateRental", "rentalID", rental.ID, "totalCost", rental.TotalCost)
	return rental, nil
}

func (s *rentalService) notifyOwner(ctx context.Context, rental *domain.Rental, vehicle *domain.Vehicle) {
	owner, err := s.userRepo.GetByID(ctx, vehicle.OwnerID)
	if err != nil {
		logger.Warn("Failed to load vehicle owner for notification", "ownerID", vehicle.OwnerID, "error", err)
		return
	}
	renter, err := s.userRepo.GetByID(ctx, rental.RenterID)
	if err != nil {
		logger.Warn("Failed to load renter for notification", "renterID", rental.RenterID, "error", err)
		return
	}
	if err := s.emailSvc.SendRentalRequestNotification(ctx, owner.Email, renter.Name, vehicle.Name, rental.Period); err != nil {
		logger.Warn("Failed to send rental request email", "rentalID", rental.ID, "error", err)
	}
}

func (s *rentalService) ChangeRentalStatus(ctx context.Context, rentalID int32, actor domain.Actor, requested domain.RentalStatus) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.ChangeRentalStatus", "rentalID", rentalID, "actorID", actor.ID, "requested", requested)

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		logger.ExitMethodWithError("rentalService.ChangeRentalStatus", err, "rentalID", rentalID)
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		logger.ExitMethodWithError("rentalService.ChangeRentalStatus", err, "rentalID", rentalID)
		return nil, err
	}

	guard := domain.CanChangeRentalStatusAs(domain.RentalStatusChange{
		Actor:          actor,
		Rental:         rental,
		VehicleOwnerID: vehicle.OwnerID,
		Requested:      requested,
	})
	if err := guard.Err(); err != nil {
		logger.ExitMethodWithError("rentalService.ChangeRentalStatus", err, "rentalID", rentalID, "actorID", actor.ID)
		return nil, err
	}

	if !domain.CanChangeRentalStatus(rental.Status, requested) {
		err := domain.NewInvalidTransitionError("rental", rental.Status, requested)
		logger.ExitMethodWithError("rentalService.ChangeRentalStatus", err, "rentalID", rentalID)
		return nil, err
	}

	from := rental.Status
	updated, err := s.rentalRepo.UpdateStatus(ctx, rental.ID, from, requested)
	if err != nil {
		if domain.IsKind(err, domain.KindConflict) {
			err = domain.NewConflictError("rental status changed concurrently")
		}
		logger.ExitMethodWithError("rentalService.ChangeRentalStatus", err, "rentalID", rentalID)
		return nil, err
	}

	if err := s.publisher.RentalStatusChanged(ctx, updated, from, actor.ID); err != nil {
		logger.Warn("Failed to publish rental event", "rentalID", updated.ID, "error", err)
	}
	s.notifyRenter(ctx, updated, vehicle)

	logger.ExitMethod("rentalService.ChangeRentalStatus", "rentalID", rentalID, "from", from, "to", updated.Status)
	return updated, nil
}

func (s *rentalService) notifyRenter(ctx context.Context, rental *domain.Rental, vehicle *domain.Vehicle) {
	renter, err := s.userRepo.GetByID(ctx, rental.RenterID)
	if err != nil {
		logger.Warn("Failed to load renter for notification", "renterID", rental.RenterID, "error", err)
		return
	}
	if err := s.emailSvc.SendRentalStatusNotification(ctx, renter.Email, vehicle.Name, rental.Status); err != nil {
		logger.Warn("Failed to send rental status email", "rentalID", rental.ID, "error", err)
	}
}

func (s *rentalService) AcceptRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return s.ChangeRentalStatus(ctx, rentalID, actor, domain.RentalStatusActive)
}

func (s *rentalService) RejectRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return s.ChangeRentalStatus(ctx, rentalID, actor, domain.RentalStatusCancelled)
}

func (s *rentalService) CancelRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return s.ChangeRentalStatus(ctx, rentalID, actor, domain.RentalStatusCancelled)
}

func (s *rentalService) CompleteRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return s.ChangeRentalStatus(ctx, rentalID, actor, domain.RentalStatusCompleted)
}

func (s *rentalService) GetRental(ctx context.Context, actor domain.Actor, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	var ownerID int32
	if !actor.IsAdmin() && rental.RenterID != actor.ID {
		vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
		if err != nil {
			return nil, err
		}
		ownerID = vehicle.OwnerID
	}
	if err := domain.CanViewRental(actor, rental, ownerID).Err(); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ListMyRentals(ctx context.Context, renterID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByRenter(ctx, renterID)
}

func (s *rentalService) ListProviderRentals(ctx context.Context, providerID int32) ([]domain.Rental, error) {
	ids, err := s.vehicleRepo.ListIDsByOwner(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Rental{}, nil
	}
	return s.rentalRepo.ListByVehicleIDs(ctx, ids)
}

// CompleteExpiredRentals moves every active rental whose end date has passed
// to completed. Each rental is updated independently: a failure is logged and
// counted, and the rest of the batch still runs. Only a failure to load the
// batch is returned.
func (s *rentalService) CompleteExpiredRentals(ctx context.Context) (domain.SweepResult, error) {
	now := s.clock.Now()
	logger.EnterMethod("rentalService.CompleteExpiredRentals", "cutoff", now)

	expired, err := s.rentalRepo.ListActiveEndedBefore(ctx, now)
	if err != nil {
		logger.ExitMethodWithError("rentalService.CompleteExpiredRentals", err)
		return domain.SweepResult{}, err
	}

	result := domain.SweepResult{Processed: len(expired)}
	for i := range expired {
		rental := &expired[i]
		if !domain.CanChangeRentalStatus(rental.Status, domain.RentalStatusCompleted) {
			logger.Warn("Skipping rental that cannot be completed", "rentalID", rental.ID, "status", rental.Status)
			continue
		}
		updated, err := s.rentalRepo.UpdateStatus(ctx, rental.ID, rental.Status, domain.RentalStatusCompleted)
		if err != nil {
			logger.Error("Failed to complete expired rental", "rentalID", rental.ID, "error", err)
			continue
		}
		result.Success++
		if err := s.publisher.RentalStatusChanged(ctx, updated, rental.Status, 0); err != nil {
			logger.Warn("Failed to publish rental event", "rentalID", updated.ID, "error", err)
		}
		vehicle, err := s.vehicleRepo.GetByID(ctx, updated.VehicleID)
		if err != nil {
			logger.Warn("Failed to load vehicle for notification", "rentalID", updated.ID, "error", err)
			continue
		}
		s.notifyRenter(ctx, updated, vehicle)
	}

	logger.ExitMethod("rentalService.CompleteExpiredRentals", "processed", result.Processed, "success", result.Success)
	return result, nil
}
