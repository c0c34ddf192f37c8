package leave

import (
	"math"
	"time"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "Paid"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeUnpaid LeaveType = "Unpaid"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

func ValidLeaveType(t LeaveType) bool {
	return t == LeaveTypePaid || t == LeaveTypeSick || t == LeaveTypeUnpaid
}

type LeaveRequest struct {
	ID           string
	UserID       string
	UserName     string // snapshot at request time
	Type         LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Remarks      string
	Status       LeaveStatus
	AdminComment *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InclusiveDays returns the calendar day span of the request counting both
// endpoints, so a request from Monday to Friday costs five days.
func (l *LeaveRequest) InclusiveDays() int {
	return InclusiveDays(l.StartDate, l.EndDate)
}

// InclusiveDays returns the number of calendar days between start and end
// counting both endpoints.
func InclusiveDays(start, end time.Time) int {
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Ceil(diff)) + 1
}
