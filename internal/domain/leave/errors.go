package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInsufficientBalance   = errors.New("insufficient paid leave balance")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
	ErrInvalidDecision       = errors.New("decision must be Approved or Rejected")
)
