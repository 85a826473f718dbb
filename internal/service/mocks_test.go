package service_test

import (
	"context"
	"time"

	"rentwheels-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProviderStatus(ctx context.Context, id int32, from, to domain.ProviderStatus) (*domain.User, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByProviderStatus(ctx context.Context, status domain.ProviderStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListIDsByOwner(ctx context.Context, ownerID int32) ([]int32, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockVehicleRepo) UpdateAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindOverlapping(ctx context.Context, vehicleID int32, period domain.DateRange) (*domain.Rental, error) {
	args := m.Called(ctx, vehicleID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByRenter(ctx context.Context, renterID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByVehicleIDs(ctx context.Context, vehicleIDs []int32) ([]domain.Rental, error) {
	args := m.Called(ctx, vehicleIDs)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CreateIfNoOverlap(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.RentalStatus) (*domain.Rental, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, vehicleName string, period domain.DateRange) error {
	args := m.Called(ctx, ownerEmail, renterName, vehicleName, period)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalStatusNotification(ctx context.Context, renterEmail, vehicleName string, status domain.RentalStatus) error {
	args := m.Called(ctx, renterEmail, vehicleName, status)
	return args.Error(0)
}
func (m *MockEmailService) SendProviderStatusNotification(ctx context.Context, email, name string, status domain.ProviderStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) RentalCreated(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockPublisher) RentalStatusChanged(ctx context.Context, r *domain.Rental, from domain.RentalStatus, actorID int32) error {
	args := m.Called(ctx, r, from, actorID)
	return args.Error(0)
}
func (m *MockPublisher) ProviderStatusChanged(ctx context.Context, providerID int32, from, to domain.ProviderStatus) error {
	args := m.Called(ctx, providerID, from, to)
	return args.Error(0)
}
func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
