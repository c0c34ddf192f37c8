package payroll

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

// UpdateStructureRequest carries a partial update: nil fields keep their
// stored value.
type UpdateStructureRequest struct {
	UserID      string   `json:"-"`
	BasicSalary *float64 `json:"basic_salary"`
	HRA         *float64 `json:"hra"`
	Allowances  *float64 `json:"allowances"`
	Deductions  *float64 `json:"deductions"`
}

func (r *UpdateStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *float64) {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}
	check("basic_salary", r.BasicSalary)
	check("hra", r.HRA)
	check("allowances", r.Allowances)
	check("deductions", r.Deductions)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StructureResponse struct {
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	BasicSalary float64 `json:"basic_salary"`
	HRA         float64 `json:"hra"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
	LastUpdated string  `json:"last_updated"`
}

func ToStructureResponse(s SalaryStructure) StructureResponse {
	return StructureResponse{
		UserID:      s.UserID,
		UserName:    s.UserName,
		EmployeeID:  s.EmployeeID,
		BasicSalary: s.BasicSalary,
		HRA:         s.HRA,
		Allowances:  s.Allowances,
		Deductions:  s.Deductions,
		NetSalary:   s.NetSalary,
		LastUpdated: s.LastUpdated.Format("2006-01-02 15:04:05"),
	}
}

type PayrollResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Month      string  `json:"month"`
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"net_pay"`
	Status     string  `json:"status"`
}

func ToPayrollResponse(p PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Month:      p.Month,
		BaseSalary: p.BaseSalary,
		Bonus:      p.Bonus,
		Deductions: p.Deductions,
		NetPay:     p.NetPay,
		Status:     string(p.Status),
	}
}
