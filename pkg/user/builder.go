package user

import (
	"github.com/forgelabs/tsforge/internal/errors"
)

// ErrNotInitialized is returned by Build when a mutator or Build itself was
// called before New.
var ErrNotInitialized = errors.NewValidationError("BUILDER_NOT_INITIALIZED",
	"builder must be initialized with New before setting fields")

// Builder accumulates user fields one mutation at a time.
//
// Usage:
//
//	u, err := user.NewBuilder().
//	    New().
//	    WithID(2).
//	    WithName("Murphy").
//	    WithRole(user.RoleUser).
//	    Build()
//
// Every mutator requires a prior call to New; misuse is reported by Build
// rather than by panicking mid-chain.
type Builder struct {
	user *User
	err  error
}

// NewBuilder creates an empty, uninitialized builder
func NewBuilder() *Builder {
	return &Builder{}
}

// New allocates the user under construction. It must be called before any
// mutator.
func (b *Builder) New() *Builder {
	b.user = &User{Role: RoleUser}
	b.err = nil
	return b
}

// WithID sets the user identifier
func (b *Builder) WithID(id int) *Builder {
	if !b.ready() {
		return b
	}
	b.user.ID = id
	return b
}

// WithName sets the user name
func (b *Builder) WithName(name string) *Builder {
	if !b.ready() {
		return b
	}
	b.user.Name = name
	return b
}

// WithRole sets the user role
func (b *Builder) WithRole(role Role) *Builder {
	if !b.ready() {
		return b
	}
	if !role.Valid() {
		b.err = errors.NewValidationError("INVALID_ROLE",
			"role must be one of user, admin, moderator").WithContext("role", role.String())
		return b
	}
	b.user.Role = role
	return b
}

// Build returns the finished user, or the first error recorded by the chain
func (b *Builder) Build() (User, error) {
	if b.err != nil {
		return User{}, b.err
	}
	if b.user == nil {
		return User{}, ErrNotInitialized
	}
	return *b.user, nil
}

// ready records the not-initialized error when New was never called
func (b *Builder) ready() bool {
	if b.user == nil {
		if b.err == nil {
			b.err = ErrNotInitialized
		}
		return false
	}
	return b.err == nil
}
