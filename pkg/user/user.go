// Package user provides the user model with a fluent builder, convenience
// factories for the standard roles, and an in-memory repository.
package user

import (
	"fmt"

	"github.com/forgelabs/tsforge/internal/errors"
)

// Role is a closed enumeration of user roles
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// String returns the role name
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	default:
		return false
	}
}

// ParseRole converts a role name into a Role
func ParseRole(name string) (Role, error) {
	role := Role(name)
	if !role.Valid() {
		return "", errors.NewValidationError("INVALID_ROLE",
			"role must be one of user, admin, moderator").WithContext("role", name)
	}
	return role, nil
}

// User is a plain user record
type User struct {
	ID   int
	Name string
	Role Role
}

// String serializes the user as User(id=2, name=Murphy, role=user)
func (u User) String() string {
	return fmt.Sprintf("User(id=%d, name=%s, role=%s)", u.ID, u.Name, u.Role)
}
