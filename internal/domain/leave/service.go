package leave

import "context"

// LeaveService defines business logic for the leave ledger. Balance checks
// happen only at decision time: a request may be created even if the user's
// balance could not cover it, since the balance can change before the
// decision is recorded.
type LeaveService interface {
	// CreateRequest inserts a Pending request for the user
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveResponse, error)

	// Approve approves a Pending request. For Paid leave the user's
	// remaining balance is reduced by the inclusive day span in the same
	// transaction, or the whole operation fails.
	Approve(ctx context.Context, req DecideLeaveRequestRequest) (LeaveResponse, error)

	// Reject rejects a Pending request. Never touches the balance.
	Reject(ctx context.Context, req DecideLeaveRequestRequest) (LeaveResponse, error)

	// GetMyRequests retrieves the requests made by one user
	GetMyRequests(ctx context.Context, userID string) ([]LeaveResponse, error)

	// ListRequests retrieves all requests (HR)
	ListRequests(ctx context.Context) ([]LeaveResponse, error)
}
