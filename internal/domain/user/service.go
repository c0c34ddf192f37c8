package user

import "context"

// UserService defines business logic for employee directory operations.
type UserService interface {
	// List retrieves all users (HR)
	List(ctx context.Context) ([]UserResponse, error)

	// Get retrieves one user
	Get(ctx context.Context, id string) (UserResponse, error)

	// UpdateProfile applies a partial profile update. HR may update anyone;
	// an employee may only update their own record. Role and leave balance
	// are not editable through this path.
	UpdateProfile(ctx context.Context, actorID string, actorRole Role, req UpdateUserRequest) (UserResponse, error)
}
