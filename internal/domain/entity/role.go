package entity

// Role IDs carried in access token claims. Users and roles are managed by
// the identity service that issues the tokens.
const (
	RoleIDAdmin     = 1
	RoleIDProvider  = 2
	RoleIDFrontDesk = 3
)

// RoleNames constants
const (
	RoleAdmin     = "admin"
	RoleProvider  = "provider"
	RoleFrontDesk = "front_desk"
)

// RoleName maps a role ID to its name; unknown IDs yield ""
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDProvider:
		return RoleProvider
	case RoleIDFrontDesk:
		return RoleFrontDesk
	}
	return ""
}
