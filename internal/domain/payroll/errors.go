package payroll

import "errors"

// Payroll domain errors
var (
	ErrStructureNotFound = errors.New("salary structure not found")
	ErrAccessDenied      = errors.New("salary structures of HR users cannot be edited")
)
