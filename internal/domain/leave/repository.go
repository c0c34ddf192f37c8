package leave

import "context"

type LeaveRequestRepository interface {
	// Create inserts a new request in Pending state
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus writes the decision on a request
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error

	// ListByUser retrieves all requests made by one user, newest first
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// List retrieves all requests (HR view), newest first
	List(ctx context.Context) ([]LeaveRequest, error)
}
