package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	List(ctx context.Context) ([]User, error)

	// GetByIDForUpdate locks the user row for the remainder of the
	// surrounding transaction. Used by the leave approval path so concurrent
	// balance deductions for the same user serialize.
	GetByIDForUpdate(ctx context.Context, id string) (User, error)

	// UpdateLeaveBalance sets paid_leave_remaining to the given value.
	UpdateLeaveBalance(ctx context.Context, id string, remaining int) error
}
