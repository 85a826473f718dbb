package service

import (
	"context"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/events"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

type adminService struct {
	userRepo  repository.UserRepository
	emailSvc  EmailService
	publisher events.Publisher
}

func NewAdminService(
	userRepo repository.UserRepository,
	emailSvc EmailService,
	publisher events.Publisher,
) AdminService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &adminService{
		userRepo:  userRepo,
		emailSvc:  emailSvc,
		publisher: publisher,
	}
}

// ChangeProviderStatus approves or rejects a provider. Only admins reach this
// method; the boundary enforces that.
func (s *adminService) ChangeProviderStatus(ctx context.Context, providerID int32, requested domain.ProviderStatus) (*domain.User, error) {
	logger.EnterMethod("adminService.ChangeProviderStatus", "providerID", providerID, "requested", requested)

	user, err := s.userRepo.GetByID(ctx, providerID)
	if err != nil {
		logger.ExitMethodWithError("adminService.ChangeProviderStatus", err, "providerID", providerID)
		return nil, err
	}
	if !user.IsProvider() {
		err := domain.NewNotFoundError("provider", providerID)
		logger.ExitMethodWithError("adminService.ChangeProviderStatus", err, "providerID", providerID)
		return nil, err
	}

	if !domain.CanChangeProviderStatus(user.ProviderStatus, requested) {
		err := domain.NewInvalidTransitionError("provider", user.ProviderStatus, requested)
		logger.ExitMethodWithError("adminService.ChangeProviderStatus", err, "providerID", providerID)
		return nil, err
	}

	from := user.ProviderStatus
	updated, err := s.userRepo.UpdateProviderStatus(ctx, providerID, from, requested)
	if err != nil {
		logger.ExitMethodWithError("adminService.ChangeProviderStatus", err, "providerID", providerID)
		return nil, err
	}

	if err := s.publisher.ProviderStatusChanged(ctx, providerID, from, requested); err != nil {
		logger.Warn("Failed to publish provider event", "providerID", providerID, "error", err)
	}
	if err := s.emailSvc.SendProviderStatusNotification(ctx, updated.Email, updated.Name, updated.ProviderStatus); err != nil {
		logger.Warn("Failed to send provider status email", "providerID", providerID, "error", err)
	}

	logger.ExitMethod("adminService.ChangeProviderStatus", "providerID", providerID, "status", updated.ProviderStatus)
	return updated, nil
}

func (s *adminService) ListPendingProviders(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByProviderStatus(ctx, domain.ProviderStatusPending)
}
