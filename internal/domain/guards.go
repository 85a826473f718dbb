package domain

// Guards are pure: they answer whether an actor may request an action and
// never look at the transition tables. Callers must check both.

const ReasonSelfRental = "cannot rent own vehicle"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Err converts a denied result into a Forbidden error.
func (r GuardResult) Err() error {
	if r.Allowed {
		return nil
	}
	return NewForbiddenError(r.Reason)
}

func allow() GuardResult {
	return GuardResult{Allowed: true}
}

func deny(reason string) GuardResult {
	return GuardResult{Allowed: false, Reason: reason}
}

// CanCreateRental denies renting a vehicle the renter owns.
func CanCreateRental(isOwner bool) GuardResult {
	if isOwner {
		return deny(ReasonSelfRental)
	}
	return allow()
}

// CanCancelRental decides whether role may cancel a rental in status current.
func CanCancelRental(role Role, current RentalStatus) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleProvider:
		return current == RentalStatusPending || current == RentalStatusActive
	case RoleUser:
		return current == RentalStatusPending
	default:
		return false
	}
}

// RentalStatusChange is the context for CanChangeRentalStatusAs.
type RentalStatusChange struct {
	Actor          Actor
	Rental         *Rental
	VehicleOwnerID int32
	Requested      RentalStatus
}

// CanChangeRentalStatusAs applies the role and ownership rules for a rental
// status change request.
//   - admin: always allowed
//   - provider: approved, owns the vehicle; may activate, complete, or cancel
//     when CanCancelRental permits
//   - user: must be the renter; may only cancel when CanCancelRental permits
//
// A provider who rented someone else's vehicle is judged as a renter for
// that rental, approved or not.
func CanChangeRentalStatusAs(c RentalStatusChange) GuardResult {
	switch c.Actor.Role {
	case RoleAdmin:
		return allow()

	case RoleProvider:
		if c.Rental.RenterID == c.Actor.ID && c.VehicleOwnerID != c.Actor.ID {
			return renterChange(c)
		}
		if c.VehicleOwnerID != c.Actor.ID {
			return deny("provider does not own this vehicle")
		}
		if c.Actor.ProviderStatus != ProviderStatusApproved {
			return deny("provider is not approved")
		}
		switch c.Requested {
		case RentalStatusActive, RentalStatusCompleted:
			return allow()
		case RentalStatusCancelled:
			if CanCancelRental(RoleProvider, c.Rental.Status) {
				return allow()
			}
			return deny("provider cannot cancel a rental in status " + c.Rental.Status.String())
		}
		return deny("provider cannot set status " + c.Requested.String())

	case RoleUser:
		if c.Rental.RenterID != c.Actor.ID {
			return deny("not your rental")
		}
		return renterChange(c)
	}
	return deny("role is not permitted to change rentals")
}

func renterChange(c RentalStatusChange) GuardResult {
	if c.Requested != RentalStatusCancelled {
		return deny("renters may only cancel rentals")
	}
	if !CanCancelRental(RoleUser, c.Rental.Status) {
		return deny("renters may only cancel pending rentals")
	}
	return allow()
}

// CanViewRental allows the renter, the vehicle owner and admins.
func CanViewRental(actor Actor, rental *Rental, vehicleOwnerID int32) GuardResult {
	if actor.IsAdmin() || rental.RenterID == actor.ID || vehicleOwnerID == actor.ID {
		return allow()
	}
	return deny("not permitted to view this rental")
}
