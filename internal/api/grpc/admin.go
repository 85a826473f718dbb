package grpc

import (
	"context"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/service"

	"google.golang.org/protobuf/types/known/structpb"
)

// AdminHandler serves admin-only methods; the interceptor rejects any other
// role before these run.
type AdminHandler struct {
	adminSvc  service.AdminService
	rentalSvc service.RentalService
}

func NewAdminHandler(adminSvc service.AdminService, rentalSvc service.RentalService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, rentalSvc: rentalSvc}
}

func (h *AdminHandler) ChangeProviderStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const method = "ChangeProviderStatus"
	adminID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	providerID, err := int32Field(req, "provider_id")
	if err != nil {
		return nil, toStatus(method, err)
	}
	raw, err := stringField(req, "status")
	if err != nil {
		return nil, toStatus(method, err)
	}
	requested, err := domain.ParseProviderStatus(raw)
	if err != nil {
		return nil, toStatus(method, err)
	}

	user, err := h.adminSvc.ChangeProviderStatus(ctx, providerID, requested)
	if err != nil {
		return nil, toStatus(method, err)
	}
	logger.Info("Provider status changed", "adminID", adminID, "providerID", providerID, "status", requested)
	return newResponse(map[string]any{"user": MapDomainUserToProto(user)})
}

func (h *AdminHandler) ListPendingProviders(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	users, err := h.adminSvc.ListPendingProviders(ctx)
	if err != nil {
		return nil, toStatus("ListPendingProviders", err)
	}
	return newResponse(map[string]any{"providers": MapDomainUsersToProto(users)})
}

func (h *AdminHandler) CompleteExpiredRentals(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	res, err := h.rentalSvc.CompleteExpiredRentals(ctx)
	if err != nil {
		return nil, toStatus("CompleteExpiredRentals", err)
	}
	return newResponse(map[string]any{"processed": res.Processed, "success": res.Success})
}
