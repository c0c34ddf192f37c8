package user

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type UpdateUserRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name"`
	Department  *string  `json:"department"`
	JobTitle    *string  `json:"job_title"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	JoiningDate *string  `json:"joining_date"`
	Salary      *float64 `json:"salary"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID                 string   `json:"id"`
	EmployeeID         string   `json:"employee_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	Department         *string  `json:"department,omitempty"`
	JobTitle           *string  `json:"job_title,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Address            *string  `json:"address,omitempty"`
	JoiningDate        *string  `json:"joining_date,omitempty"`
	Salary             float64  `json:"salary"`
	PaidLeaveRemaining int      `json:"paid_leave_remaining"`
}

func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                 u.ID,
		EmployeeID:         u.EmployeeID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		Department:         u.Department,
		JobTitle:           u.JobTitle,
		Phone:              u.Phone,
		Address:            u.Address,
		Salary:             u.Salary,
		PaidLeaveRemaining: u.PaidLeaveRemaining,
	}
	if u.JoiningDate != nil {
		formatted := u.JoiningDate.Format("2006-01-02")
		resp.JoiningDate = &formatted
	}
	return resp
}
