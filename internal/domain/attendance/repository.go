package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// At most one record may exist per (user, date); the PostgreSQL schema backs
// this with a unique constraint.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a specific day.
	// Returns nil when no record exists. Used to prevent double check-in.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Update updates check-out data on an existing record
	Update(ctx context.Context, record Attendance) (Attendance, error)

	// ListByUser retrieves all records for one user, newest first
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// List retrieves all records (HR view), newest first
	List(ctx context.Context) ([]Attendance, error)
}
