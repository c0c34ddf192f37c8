package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

// GetByIDForUpdate behaves like GetByID; transactions already serialize on
// the store lock.
func (r *userRepository) GetByIDForUpdate(ctx context.Context, id string) (user.User, error) {
	return r.GetByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, found := range r.store.users {
		if found.Email == email {
			return found, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) ExistsByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, found := range r.store.users {
		if found.Email == email || found.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if newUser.ID == "" {
		newUser.ID = newID()
	}
	now := time.Now()
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	r.store.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *userRepository) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.users[req.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Department != nil {
		found.Department = req.Department
	}
	if req.JobTitle != nil {
		found.JobTitle = req.JobTitle
	}
	if req.Phone != nil {
		found.Phone = req.Phone
	}
	if req.Address != nil {
		found.Address = req.Address
	}
	if req.JoiningDate != nil {
		if parsed, err := time.Parse("2006-01-02", *req.JoiningDate); err == nil {
			found.JoiningDate = &parsed
		}
	}
	if req.Salary != nil {
		found.Salary = *req.Salary
	}
	found.UpdatedAt = time.Now()

	r.store.users[found.ID] = found
	return found, nil
}

func (r *userRepository) UpdateLeaveBalance(ctx context.Context, id string, remaining int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	found.PaidLeaveRemaining = remaining
	found.UpdatedAt = time.Now()
	r.store.users[id] = found
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]user.User, 0, len(r.store.users))
	for _, found := range r.store.users {
		users = append(users, found)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].EmployeeID < users[j].EmployeeID
	})
	return users, nil
}
