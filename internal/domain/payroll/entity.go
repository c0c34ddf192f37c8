package payroll

import "time"

// SalaryStructure holds the monthly salary components for one user. NetSalary
// is always recomputed from the components on write, never stored by callers.
type SalaryStructure struct {
	UserID      string
	BasicSalary float64
	HRA         float64
	Allowances  float64
	Deductions  float64
	NetSalary   float64
	LastUpdated time.Time

	// DTO / join
	UserName   *string
	EmployeeID *string
}

// ComputeNet recomputes the derived net salary from the components.
func (s *SalaryStructure) ComputeNet() {
	s.NetSalary = s.BasicSalary + s.HRA + s.Allowances - s.Deductions
}

type PayrollStatus string

const (
	PayrollStatusPaid    PayrollStatus = "Paid"
	PayrollStatusPending PayrollStatus = "Pending"
)

// PayrollRecord is one month's payout in a user's payroll history.
type PayrollRecord struct {
	ID         string
	UserID     string
	Month      string // e.g. "October 2024"
	BaseSalary float64
	Bonus      float64
	Deductions float64
	NetPay     float64
	Status     PayrollStatus
	CreatedAt  time.Time
}
