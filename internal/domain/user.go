package domain

import "time"

type User struct {
	ID             int32          `json:"id"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	Role           Role           `json:"role"`
	ProviderStatus ProviderStatus `json:"provider_status,omitempty"` // Only meaningful for RoleProvider
	CreatedOn      time.Time      `json:"created_on"`
	UpdatedOn      time.Time      `json:"updated_on"`
}

func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID             int32
	Role           Role
	ProviderStatus ProviderStatus
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
