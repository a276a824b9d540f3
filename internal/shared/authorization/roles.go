package authorization

import "strings"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAnalyst UserRole = "analyst"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAnalyst
}

// ParseUserRole returns the role named by s and whether it was recognized.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	return role, role.IsValid()
}

// NormalizeUserRole maps anything unrecognized to analyst, the least privileged role.
func NormalizeUserRole(s string) UserRole {
	if role, ok := ParseUserRole(s); ok {
		return role
	}
	return RoleAnalyst
}
