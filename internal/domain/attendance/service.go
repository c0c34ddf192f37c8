package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the start of the working day for a user
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// CheckOut records the end of the working day and computes worked time
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for one user
	GetMyAttendance(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// ListAttendance retrieves all attendance records (HR)
	ListAttendance(ctx context.Context) ([]AttendanceResponse, error)
}
