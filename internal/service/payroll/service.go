package payroll

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.SalaryStructureRepository
	payroll.PayrollHistoryRepository
	user.UserRepository
}

func NewPayrollService(structureRepository payroll.SalaryStructureRepository, historyRepository payroll.PayrollHistoryRepository, userRepository user.UserRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		SalaryStructureRepository: structureRepository,
		PayrollHistoryRepository:  historyRepository,
		UserRepository:            userRepository,
	}
}

// GetStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetStructure(ctx context.Context, userID string) (payroll.StructureResponse, error) {
	structure, err := s.SalaryStructureRepository.GetByUserID(ctx, userID)
	if err != nil {
		return payroll.StructureResponse{}, err
	}
	return payroll.ToStructureResponse(structure), nil
}

// ListStructures implements payroll.PayrollService. HR structures stay out
// of the listing; only regular staff records are shown for payroll editing.
func (s *PayrollServiceImpl) ListStructures(ctx context.Context) ([]payroll.StructureResponse, error) {
	structures, err := s.SalaryStructureRepository.ListWithUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}

	responses := make([]payroll.StructureResponse, 0, len(structures))
	for _, item := range structures {
		if item.Role != string(user.RoleEmployee) {
			continue
		}
		responses = append(responses, payroll.ToStructureResponse(item.SalaryStructure))
	}
	return responses, nil
}

// UpdateStructure implements payroll.PayrollService. The merged component
// set always has the net salary recomputed and last_updated refreshed.
func (s *PayrollServiceImpl) UpdateStructure(ctx context.Context, req payroll.UpdateStructureRequest) (payroll.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StructureResponse{}, err
	}

	target, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return payroll.StructureResponse{}, err
	}
	if target.IsHR() {
		return payroll.StructureResponse{}, payroll.ErrAccessDenied
	}

	structure, err := s.SalaryStructureRepository.GetByUserID(ctx, req.UserID)
	if err != nil {
		return payroll.StructureResponse{}, err
	}

	if req.BasicSalary != nil {
		structure.BasicSalary = *req.BasicSalary
	}
	if req.HRA != nil {
		structure.HRA = *req.HRA
	}
	if req.Allowances != nil {
		structure.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		structure.Deductions = *req.Deductions
	}
	structure.ComputeNet()

	updated, err := s.SalaryStructureRepository.Update(ctx, structure)
	if err != nil {
		return payroll.StructureResponse{}, fmt.Errorf("failed to update salary structure: %w", err)
	}
	return payroll.ToStructureResponse(updated), nil
}

// GetHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetHistory(ctx context.Context, userID string) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollHistoryRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll history: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, payroll.ToPayrollResponse(record))
	}
	return responses, nil
}
