// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
	SecurityAdmin                       // Access token with the admin role required
)

// EndpointSecurityConfig maps methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Health - Public
	"/grpc.health.v1.Health/Check": SecurityPublic,
	"/grpc.health.v1.Health/Watch": SecurityPublic,

	// RentalService - Access Protected
	"/rentwheels.v1.RentalService/CreateRental":           SecurityAccess,
	"/rentwheels.v1.RentalService/ChangeRentalStatus":     SecurityAccess,
	"/rentwheels.v1.RentalService/AcceptRental":           SecurityAccess,
	"/rentwheels.v1.RentalService/RejectRental":           SecurityAccess,
	"/rentwheels.v1.RentalService/CancelRental":           SecurityAccess,
	"/rentwheels.v1.RentalService/CompleteRental":         SecurityAccess,
	"/rentwheels.v1.RentalService/GetRental":              SecurityAccess,
	"/rentwheels.v1.RentalService/ListMyRentals":          SecurityAccess,
	"/rentwheels.v1.RentalService/ListProviderRentals":    SecurityAccess,
	"/rentwheels.v1.RentalService/SetVehicleAvailability": SecurityAccess,

	// AdminService - Admin only
	"/rentwheels.v1.AdminService/ChangeProviderStatus":   SecurityAdmin,
	"/rentwheels.v1.AdminService/ListPendingProviders":   SecurityAdmin,
	"/rentwheels.v1.AdminService/CompleteExpiredRentals": SecurityAdmin,
}

// GetSecurityLevel returns the security level for a given method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}
