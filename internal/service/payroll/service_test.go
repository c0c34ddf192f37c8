package payroll

import (
	"context"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payrollTestEnv struct {
	userRepo      user.UserRepository
	structureRepo payroll.SalaryStructureRepository
	historyRepo   payroll.PayrollHistoryRepository
	service       payroll.PayrollService
}

func newPayrollTestEnv() payrollTestEnv {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	structureRepo := memory.NewSalaryStructureRepository(store)
	historyRepo := memory.NewPayrollHistoryRepository(store)
	return payrollTestEnv{
		userRepo:      userRepo,
		structureRepo: structureRepo,
		historyRepo:   historyRepo,
		service:       NewPayrollService(structureRepo, historyRepo, userRepo),
	}
}

func (e payrollTestEnv) createUser(t *testing.T, employeeID string, role user.Role) user.User {
	t.Helper()
	created, err := e.userRepo.Create(context.Background(), user.User{
		EmployeeID: employeeID,
		Name:       "Test " + employeeID,
		Email:      employeeID + "@dayflow.com",
		Role:       role,
	})
	require.NoError(t, err)

	structure := payroll.SalaryStructure{
		UserID:      created.ID,
		BasicSalary: 37500,
		HRA:         15000,
		Allowances:  22500,
		Deductions:  2500,
	}
	structure.ComputeNet()
	_, err = e.structureRepo.Create(context.Background(), structure)
	require.NoError(t, err)

	return created
}

func float64Ptr(v float64) *float64 { return &v }

func TestUpdateStructureRecomputesNetSalary(t *testing.T) {
	env := newPayrollTestEnv()
	u := env.createUser(t, "EMP020", user.RoleEmployee)

	updated, err := env.service.UpdateStructure(context.Background(), payroll.UpdateStructureRequest{
		UserID:      u.ID,
		BasicSalary: float64Ptr(50000),
		Deductions:  float64Ptr(5000),
	})
	require.NoError(t, err)

	// Untouched components keep their stored values
	assert.Equal(t, 50000.0, updated.BasicSalary)
	assert.Equal(t, 15000.0, updated.HRA)
	assert.Equal(t, 22500.0, updated.Allowances)
	assert.Equal(t, 5000.0, updated.Deductions)
	assert.Equal(t, 50000.0+15000.0+22500.0-5000.0, updated.NetSalary)
}

func TestUpdateStructureRejectsNegativeComponents(t *testing.T) {
	env := newPayrollTestEnv()
	u := env.createUser(t, "EMP020", user.RoleEmployee)

	_, err := env.service.UpdateStructure(context.Background(), payroll.UpdateStructureRequest{
		UserID:      u.ID,
		BasicSalary: float64Ptr(-100),
	})
	assert.Error(t, err)
}

func TestUpdateStructureDeniedForHRTarget(t *testing.T) {
	env := newPayrollTestEnv()
	admin := env.createUser(t, "EMP001", user.RoleHR)

	_, err := env.service.UpdateStructure(context.Background(), payroll.UpdateStructureRequest{
		UserID:      admin.ID,
		BasicSalary: float64Ptr(1),
	})
	assert.ErrorIs(t, err, payroll.ErrAccessDenied)

	// The stored structure must be untouched
	stored, err := env.structureRepo.GetByUserID(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, 37500.0, stored.BasicSalary)
	assert.Equal(t, 72500.0, stored.NetSalary)
}

func TestUpdateStructureUnknownUser(t *testing.T) {
	env := newPayrollTestEnv()

	_, err := env.service.UpdateStructure(context.Background(), payroll.UpdateStructureRequest{
		UserID:      "missing",
		BasicSalary: float64Ptr(1000),
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListStructuresExcludesHR(t *testing.T) {
	env := newPayrollTestEnv()
	env.createUser(t, "EMP001", user.RoleHR)
	staff := env.createUser(t, "EMP002", user.RoleEmployee)

	structures, err := env.service.ListStructures(context.Background())
	require.NoError(t, err)

	require.Len(t, structures, 1)
	assert.Equal(t, staff.ID, structures[0].UserID)
}

func TestGetStructureNotFound(t *testing.T) {
	env := newPayrollTestEnv()

	_, err := env.service.GetStructure(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrStructureNotFound)
}

func TestGetHistoryReturnsUserRecords(t *testing.T) {
	env := newPayrollTestEnv()
	u := env.createUser(t, "EMP020", user.RoleEmployee)

	_, err := env.historyRepo.Create(context.Background(), payroll.PayrollRecord{
		UserID:     u.ID,
		Month:      "2026-07",
		BaseSalary: 37500,
		Bonus:      1000,
		Deductions: 2500,
		NetPay:     36000,
		Status:     payroll.PayrollStatusPaid,
	})
	require.NoError(t, err)

	records, err := env.service.GetHistory(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-07", records[0].Month)
	assert.Equal(t, string(payroll.PayrollStatusPaid), records[0].Status)
}
