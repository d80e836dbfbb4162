package user

// Factory functions drive the builder through the fixed sequence of steps
// for each of the standard roles.

// New creates a user with the standard role
func New(id int, name string) (User, error) {
	return NewBuilder().
		New().
		WithID(id).
		WithName(name).
		WithRole(RoleUser).
		Build()
}

// NewAdmin creates a user with the admin role
func NewAdmin(id int, name string) (User, error) {
	return NewBuilder().
		New().
		WithID(id).
		WithName(name).
		WithRole(RoleAdmin).
		Build()
}

// NewModerator creates a user with the moderator role
func NewModerator(id int, name string) (User, error) {
	return NewBuilder().
		New().
		WithID(id).
		WithName(name).
		WithRole(RoleModerator).
		Build()
}
