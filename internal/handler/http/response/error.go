package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserExists):
		Conflict(w, "Email or employee ID already registered")
	case errors.Is(err, user.ErrHRRoleRequired):
		Forbidden(w, "HR role required")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "You cannot modify this record")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient paid leave balance", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Invalid leave decision", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrAccessDenied):
		Forbidden(w, "HR salary structures cannot be edited")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
