package domain

import "fmt"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

type ProviderStatus string

const (
	ProviderStatusPending  ProviderStatus = "pending"
	ProviderStatusApproved ProviderStatus = "approved"
	ProviderStatusRejected ProviderStatus = "rejected"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
	RoleUser     Role = "user"
)

// rentalTransitions is the only definition of the rental state machine.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:   {RentalStatusActive, RentalStatusCancelled},
	RentalStatusActive:    {RentalStatusCompleted, RentalStatusCancelled},
	RentalStatusCompleted: {},
	RentalStatusCancelled: {},
}

// providerTransitions is the only definition of the provider approval state machine.
var providerTransitions = map[ProviderStatus][]ProviderStatus{
	ProviderStatusPending:  {ProviderStatusApproved, ProviderStatusRejected},
	ProviderStatusApproved: {},
	ProviderStatusRejected: {},
}

// CanChangeRentalStatus reports whether next is reachable from current in one step.
// Unknown current values fail closed.
func CanChangeRentalStatus(current, next RentalStatus) bool {
	return contains(rentalTransitions[current], next)
}

// CanChangeProviderStatus reports whether next is reachable from current in one step.
// Unknown current values fail closed.
func CanChangeProviderStatus(current, next ProviderStatus) bool {
	return contains(providerTransitions[current], next)
}

func contains[T comparable](allowed []T, target T) bool {
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

func (s RentalStatus) IsValid() bool {
	_, ok := rentalTransitions[s]
	return ok
}

// IsTerminal returns true for statuses with no outgoing transitions.
func (s RentalStatus) IsTerminal() bool {
	return len(rentalTransitions[s]) == 0
}

// Blocking reports whether a rental in this status holds its date range.
func (s RentalStatus) Blocking() bool {
	return s != RentalStatusCancelled
}

func (s RentalStatus) String() string {
	return string(s)
}

func (s ProviderStatus) IsValid() bool {
	_, ok := providerTransitions[s]
	return ok
}

func (s ProviderStatus) IsTerminal() bool {
	return len(providerTransitions[s]) == 0
}

func (s ProviderStatus) String() string {
	return string(s)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProvider, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRentalStatus converts boundary input to a RentalStatus.
func ParseRentalStatus(s string) (RentalStatus, error) {
	status := RentalStatus(s)
	if !status.IsValid() {
		return "", NewValidationError(fmt.Sprintf("invalid rental status: %q", s))
	}
	return status, nil
}

// ParseProviderStatus converts boundary input to a ProviderStatus.
func ParseProviderStatus(s string) (ProviderStatus, error) {
	status := ProviderStatus(s)
	if !status.IsValid() {
		return "", NewValidationError(fmt.Sprintf("invalid provider status: %q", s))
	}
	return status, nil
}

// ParseRole converts boundary input to a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", NewValidationError(fmt.Sprintf("invalid role: %q", s))
	}
	return role, nil
}
