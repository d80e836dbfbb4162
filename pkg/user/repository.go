package user

import (
	"context"
	"sync"

	"github.com/forgelabs/tsforge/internal/errors"
	"github.com/forgelabs/tsforge/internal/logging"
)

// Repository stores users by identifier
type Repository interface {
	Save(ctx context.Context, u User) error
	Get(ctx context.Context, id int) (User, bool)
	Delete(ctx context.Context, id int) error
	Count() int
}

// MemoryRepository is an in-memory Repository guarded by a read-write mutex
type MemoryRepository struct {
	users  map[int]User
	mutex  sync.RWMutex
	logger logging.Logger
}

// NewMemoryRepository creates an empty in-memory repository. A nil logger
// selects the no-op logger.
func NewMemoryRepository(logger logging.Logger) *MemoryRepository {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &MemoryRepository{
		users:  make(map[int]User),
		logger: logger.WithComponent("user-repository"),
	}
}

// Save adds or replaces a user
func (r *MemoryRepository) Save(ctx context.Context, u User) error {
	if !u.Role.Valid() {
		return errors.NewValidationError("INVALID_ROLE",
			"cannot store user with unknown role").WithContext("role", u.Role.String())
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.users[u.ID] = u
	r.logger.Debug(ctx, "user saved", "id", u.ID, "role", u.Role.String())

	return nil
}

// Get retrieves a user by identifier
func (r *MemoryRepository) Get(ctx context.Context, id int) (User, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	u, exists := r.users[id]
	return u, exists
}

// Delete removes a user by identifier
func (r *MemoryRepository) Delete(ctx context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[id]; !exists {
		return errors.NewValidationError("USER_NOT_FOUND",
			"no user with that identifier").WithContext("id", id)
	}

	delete(r.users, id)
	r.logger.Info(ctx, "user deleted", "id", id)

	return nil
}

// Count returns the number of stored users
func (r *MemoryRepository) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.users)
}
