package employee

import (
	"context"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeeTestEnv struct {
	userRepo user.UserRepository
	service  user.UserService
}

func newEmployeeTestEnv() employeeTestEnv {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	return employeeTestEnv{
		userRepo: userRepo,
		service:  NewEmployeeService(userRepo),
	}
}

func (e employeeTestEnv) createUser(t *testing.T, employeeID string, role user.Role) user.User {
	t.Helper()
	created, err := e.userRepo.Create(context.Background(), user.User{
		EmployeeID: employeeID,
		Name:       "Test " + employeeID,
		Email:      employeeID + "@dayflow.com",
		Role:       role,
	})
	require.NoError(t, err)
	return created
}

func stringPtr(v string) *string { return &v }

func TestEmployeeCanUpdateOwnProfile(t *testing.T) {
	env := newEmployeeTestEnv()
	u := env.createUser(t, "EMP030", user.RoleEmployee)

	updated, err := env.service.UpdateProfile(context.Background(), u.ID, user.RoleEmployee, user.UpdateUserRequest{
		ID:    u.ID,
		Phone: stringPtr("+62-811-000-111"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+62-811-000-111", *updated.Phone)
}

func TestEmployeeCannotUpdateOthers(t *testing.T) {
	env := newEmployeeTestEnv()
	u := env.createUser(t, "EMP030", user.RoleEmployee)
	other := env.createUser(t, "EMP031", user.RoleEmployee)

	_, err := env.service.UpdateProfile(context.Background(), u.ID, user.RoleEmployee, user.UpdateUserRequest{
		ID:   other.ID,
		Name: stringPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestHRCanUpdateAnyone(t *testing.T) {
	env := newEmployeeTestEnv()
	admin := env.createUser(t, "EMP001", user.RoleHR)
	staff := env.createUser(t, "EMP030", user.RoleEmployee)

	updated, err := env.service.UpdateProfile(context.Background(), admin.ID, user.RoleHR, user.UpdateUserRequest{
		ID:         staff.ID,
		Department: stringPtr("Engineering"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Department)
	assert.Equal(t, "Engineering", *updated.Department)
}

func TestUpdateValidatesInput(t *testing.T) {
	env := newEmployeeTestEnv()
	u := env.createUser(t, "EMP030", user.RoleEmployee)

	_, err := env.service.UpdateProfile(context.Background(), u.ID, user.RoleEmployee, user.UpdateUserRequest{
		ID:   u.ID,
		Name: stringPtr("   "),
	})
	assert.Error(t, err)
}

func TestGetUnknownUser(t *testing.T) {
	env := newEmployeeTestEnv()

	_, err := env.service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListReturnsAllUsers(t *testing.T) {
	env := newEmployeeTestEnv()
	env.createUser(t, "EMP001", user.RoleHR)
	env.createUser(t, "EMP030", user.RoleEmployee)

	users, err := env.service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
