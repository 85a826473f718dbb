package grpc_test

import (
	"context"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) rental(args mock.Arguments) (*domain.Rental, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) CreateRental(ctx context.Context, renterID int32, in service.CreateRentalInput) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, renterID, in))
}
func (m *MockRentalService) ChangeRentalStatus(ctx context.Context, rentalID int32, actor domain.Actor, requested domain.RentalStatus) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, rentalID, actor, requested))
}
func (m *MockRentalService) AcceptRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, rentalID, actor))
}
func (m *MockRentalService) RejectRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, rentalID, actor))
}
func (m *MockRentalService) CancelRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, rentalID, actor))
}
func (m *MockRentalService) CompleteRental(ctx context.Context, rentalID int32, actor domain.Actor) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, rentalID, actor))
}
func (m *MockRentalService) GetRental(ctx context.Context, actor domain.Actor, rentalID int32) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, actor, rentalID))
}
func (m *MockRentalService) ListMyRentals(ctx context.Context, renterID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListProviderRentals(ctx context.Context, providerID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) FindOverlappingRental(ctx context.Context, vehicleID int32, start, end time.Time) (*domain.Rental, error) {
	return m.rental(m.Called(ctx, vehicleID, start, end))
}
func (m *MockRentalService) CompleteExpiredRentals(ctx context.Context) (domain.SweepResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SweepResult), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ChangeProviderStatus(ctx context.Context, providerID int32, requested domain.ProviderStatus) (*domain.User, error) {
	args := m.Called(ctx, providerID, requested)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAdminService) ListPendingProviders(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) IsVehicleOwner(ctx context.Context, vehicleID, userID int32) (bool, error) {
	args := m.Called(ctx, vehicleID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockVehicleService) SetVehicleAvailability(ctx context.Context, actor domain.Actor, vehicleID int32, available bool) error {
	args := m.Called(ctx, actor, vehicleID, available)
	return args.Error(0)
}
