package model

// Role is the authorization class a connection is tagged with.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleSupportAssistant Role = "support_assistant"
)

// ParseRole maps a stored role to a known Role. Empty or unknown values
// fall back to the least privileged role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleSupportAssistant
	}
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSupportAssistant
}

func (r Role) String() string { return string(r) }
