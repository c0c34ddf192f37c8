package payroll

import "context"

// PayrollService defines business logic for salary structures and payroll
// history.
type PayrollService interface {
	// GetStructure retrieves the salary structure of one user
	GetStructure(ctx context.Context, userID string) (StructureResponse, error)

	// ListStructures retrieves the structures of all EMPLOYEE-role users
	// with user details (HR view)
	ListStructures(ctx context.Context) ([]StructureResponse, error)

	// UpdateStructure merges the partial fields, recomputes the net salary
	// and refreshes last_updated. Structures of HR users cannot be edited.
	UpdateStructure(ctx context.Context, req UpdateStructureRequest) (StructureResponse, error)

	// GetHistory retrieves the payroll history of one user
	GetHistory(ctx context.Context, userID string) ([]PayrollResponse, error)
}
