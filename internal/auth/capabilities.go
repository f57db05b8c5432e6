package auth

import "github.com/jay4webdev/Bill-Tracker/internal/models"

// Capabilities is what a session may do. It is derived once per request
// from the user's role and consulted wherever an operation is gated.
type Capabilities struct {
	CanRead       bool `json:"canRead"`
	CanWrite      bool `json:"canWrite"`
	CanAdminister bool `json:"canAdminister"`
}

// CapabilitiesFor maps a role to its capabilities. Unknown roles get none.
func CapabilitiesFor(role models.Role) Capabilities {
	switch role {
	case models.RoleAdmin:
		return Capabilities{CanRead: true, CanWrite: true, CanAdminister: true}
	case models.RoleEditor:
		return Capabilities{CanRead: true, CanWrite: true}
	case models.RoleViewer:
		return Capabilities{CanRead: true}
	}
	return Capabilities{}
}
