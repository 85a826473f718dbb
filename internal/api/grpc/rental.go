package grpc

import (
	"context"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/service"

	"google.golang.org/protobuf/types/known/structpb"
)

type RentalHandler struct {
	rentalSvc  service.RentalService
	vehicleSvc service.VehicleService
}

func NewRentalHandler(rentalSvc service.RentalService, vehicleSvc service.VehicleService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, vehicleSvc: vehicleSvc}
}

func rentalResponse(rt *domain.Rental) (*structpb.Struct, error) {
	return newResponse(map[string]any{"rental": MapDomainRentalToProto(rt)})
}

func (h *RentalHandler) CreateRental(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const method = "CreateRental"
	actor, err := GetActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in, err := createRentalInput(req)
	if err != nil {
		return nil, toStatus(method, err)
	}

	rt, err := h.rentalSvc.CreateRental(ctx, actor.ID, in)
	if err != nil {
		return nil, toStatus(method, err)
	}
	return rentalResponse(rt)
}

func createRentalInput(req *structpb.Struct) (service.CreateRentalInput, error) {
	var in service.CreateRentalInput
	var err error
	if in.VehicleID, err = int32Field(req, "vehicle_id"); err != nil {
		return in, err
	}
	if in.StartDate, err = timeField(req, "start_date"); err != nil {
		return in, err
	}
	if in.EndDate, err = timeField(req, "end_date"); err != nil {
		return in, err
	}
	if in.PickupLocation, err = stringField(req, "pickup_location"); err != nil {
		return in, err
	}
	if in.DropOffLocation, err = stringField(req, "drop_off_location"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *RentalHandler) ChangeRentalStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const method = "ChangeRentalStatus"
	actor, err := GetActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rentalID, err := int32Field(req, "rental_id")
	if err != nil {
		return nil, toStatus(method, err)
	}
	raw, err := stringField(req, "status")
	if err != nil {
		return nil, toStatus(method, err)
	}
	requested, err := domain.ParseRentalStatus(raw)
	if err != nil {
		return nil, toStatus(method, err)
	}

	rt, err := h.rentalSvc.ChangeRentalStatus(ctx, rentalID, actor, requested)
	if err != nil {
		return nil, toStatus(method, err)
	}
	return rentalResponse(rt)
}

type rentalAction func(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error)

func (h *RentalHandler) runAction(ctx context.Context, method string, req *structpb.Struct, action rentalAction) (*structpb.Struct, error) {
	actor, err := GetActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rentalID, err := int32Field(req, "rental_id")
	if err != nil {
		return nil, toStatus(method, err)
	}
	rt, err := action(ctx, rentalID, actor)
	if err != nil {
		return nil, toStatus(method, err)
	}
	return rentalResponse(rt)
}

func (h *RentalHandler) AcceptRental(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.runAction(ctx, "AcceptRental", req, h.rentalSvc.AcceptRental)
}

func (h *RentalHandler) RejectRental(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.runAction(ctx, "RejectRental", req, h.rentalSvc.RejectRental)
}

func (h *RentalHandler) CancelRental(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.runAction(ctx, "CancelRental", req, h.rentalSvc.CancelRental)
}

func (h *RentalHandler) CompleteRental(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.runAction(ctx, "CompleteRental", req, h.rentalSvc.CompleteRental)
}

func (h *RentalHandler) GetRental(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.runAction(ctx, "GetRental", req, func(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
		return h.rentalSvc.GetRental(ctx, actor, rentalID)
	})
}

func (h *RentalHandler) ListMyRentals(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := h.rentalSvc.ListMyRentals(ctx, userID)
	if err != nil {
		return nil, toStatus("ListMyRentals", err)
	}
	return newResponse(map[string]any{"rentals": MapDomainRentalsToProto(rentals)})
}

func (h *RentalHandler) ListProviderRentals(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := h.rentalSvc.ListProviderRentals(ctx, userID)
	if err != nil {
		return nil, toStatus("ListProviderRentals", err)
	}
	return newResponse(map[string]any{"rentals": MapDomainRentalsToProto(rentals)})
}

func (h *RentalHandler) SetVehicleAvailability(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const method = "SetVehicleAvailability"
	actor, err := GetActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	vehicleID, err := int32Field(req, "vehicle_id")
	if err != nil {
		return nil, toStatus(method, err)
	}
	available, err := boolField(req, "available")
	if err != nil {
		return nil, toStatus(method, err)
	}

	if err := h.vehicleSvc.SetVehicleAvailability(ctx, actor, vehicleID, available); err != nil {
		return nil, toStatus(method, err)
	}
	return newResponse(map[string]any{"success": true})
}
