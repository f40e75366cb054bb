package user

import "fmt"

// Role is fixed at user creation.
type Role string

const (
	RoleClient  Role = "CLIENT"
	RoleAdmin   Role = "ADMIN"
	RoleSupport Role = "SUPPORT"
)

var validRoles = map[Role]bool{
	RoleClient:  true,
	RoleAdmin:   true,
	RoleSupport: true,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsClient() bool {
	return r == RoleClient
}

// IsStaff reports whether the role may work complaints: ADMIN or SUPPORT.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSupport
}
