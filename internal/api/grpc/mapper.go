package grpc

import (
	"fmt"
	"math"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/utils"

	"google.golang.org/protobuf/types/known/structpb"
)

func MapDomainRentalToProto(r *domain.Rental) map[string]any {
	if r == nil {
		return nil
	}
	return map[string]any{
		"id":                r.ID,
		"vehicle_id":        r.VehicleID,
		"renter_id":         r.RenterID,
		"pickup_location":   r.PickupLocation,
		"drop_off_location": r.DropOffLocation,
		"start_date":        r.Period.Start.Format(time.RFC3339),
		"end_date":          r.Period.End.Format(time.RFC3339),
		"total_cost":        r.TotalCost,
		"status":            string(r.Status),
		"created_on":        r.CreatedOn.Format(time.RFC3339),
		"updated_on":        r.UpdatedOn.Format(time.RFC3339),
	}
}

func MapDomainRentalsToProto(rentals []domain.Rental) []any {
	out := make([]any, 0, len(rentals))
	for i := range rentals {
		out = append(out, MapDomainRentalToProto(&rentals[i]))
	}
	return out
}

func MapDomainUserToProto(u *domain.User) map[string]any {
	if u == nil {
		return nil
	}
	m := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       string(u.Role),
		"created_on": u.CreatedOn.Format(utils.DateLayout),
	}
	if u.IsProvider() {
		m["provider_status"] = string(u.ProviderStatus)
	}
	return m
}

func MapDomainUsersToProto(users []domain.User) []any {
	out := make([]any, 0, len(users))
	for i := range users {
		out = append(out, MapDomainUserToProto(&users[i]))
	}
	return out
}

func newResponse(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return s, nil
}

// Request field readers. Missing or mistyped fields are validation errors.

func int32Field(req *structpb.Struct, name string) (int32, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, domain.NewValidationError(name + " is required")
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, domain.NewValidationError(name + " must be a number")
	}
	f := n.NumberValue
	if f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, domain.NewValidationError(name + " must be a positive integer")
	}
	return int32(f), nil
}

func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", domain.NewValidationError(name + " must be a string")
	}
	return s.StringValue, nil
}

func boolField(req *structpb.Struct, name string) (bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return false, domain.NewValidationError(name + " is required")
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, domain.NewValidationError(name + " must be a boolean")
	}
	return b.BoolValue, nil
}

func timeField(req *structpb.Struct, name string) (time.Time, error) {
	s, err := stringField(req, name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := utils.ParseBookingTime(s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(fmt.Sprintf("%s: %v", name, err))
	}
	return t, nil
}
