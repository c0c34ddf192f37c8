package payroll

import "context"

type SalaryStructureRepository interface {
	// Create inserts the structure for a user (one per user)
	Create(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)

	// GetByUserID retrieves the structure of one user
	GetByUserID(ctx context.Context, userID string) (SalaryStructure, error)

	// Update overwrites the components, net salary and last_updated
	Update(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)

	// ListWithUsers retrieves all structures joined with user name,
	// employee ID and role
	ListWithUsers(ctx context.Context) ([]StructureWithRole, error)
}

// StructureWithRole carries the joined user role so the service can filter
// HR structures out of admin listings.
type StructureWithRole struct {
	SalaryStructure
	Role string
}

type PayrollHistoryRepository interface {
	// Create inserts a payout record
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// ListByUser retrieves the payout history of one user, newest first
	ListByUser(ctx context.Context, userID string) ([]PayrollRecord, error)
}
