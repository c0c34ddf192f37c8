package user

import "time"

type Role string

const (
	RoleHR       Role = "HR"       // HR administrator - can approve leave and manage payroll
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

type User struct {
	ID                 string
	EmployeeID         string
	Name               string
	Email              string
	PasswordHash       string
	Role               Role
	Department         *string
	JobTitle           *string
	Phone              *string
	Address            *string
	JoiningDate        *time.Time
	Salary             float64 // Annual CTC
	PaidLeaveRemaining int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsHR checks if the user is an HR administrator
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// CanApproveLeave checks if the user can decide leave requests
func (u *User) CanApproveLeave() bool {
	return u.IsHR()
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleHR || r == RoleEmployee
}
