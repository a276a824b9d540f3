package authorization

import "strings"

// Actor is the verified caller of an operation, as carried by its session token.
type Actor struct {
	ID   int64
	Name string
	Role UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// SameName compares display names the way ticket ownership has always been matched.
func (a Actor) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(a.Name), strings.TrimSpace(name))
}
