// Package fixtures seeds demo accounts for local development.
package fixtures

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	employeeID string
	name       string
	email      string
	role       user.Role
	salary     float64
	leaveDays  int
	structure  payroll.SalaryStructure
}

var demoAccounts = []seedAccount{
	{
		employeeID: "EMP001",
		name:       "HR Admin",
		email:      "admin@dayflow.com",
		role:       user.RoleHR,
		salary:     1200000,
		leaveDays:  15,
		structure:  payroll.SalaryStructure{BasicSalary: 50000, HRA: 20000, Allowances: 30000, Deductions: 2500},
	},
	{
		employeeID: "EMP002",
		name:       "Sarah Tech",
		email:      "sarah@dayflow.com",
		role:       user.RoleEmployee,
		salary:     900000,
		leaveDays:  12,
		structure:  payroll.SalaryStructure{BasicSalary: 37500, HRA: 15000, Allowances: 22500, Deductions: 2500},
	},
}

// Seeder inserts the demo accounts. Seeding is idempotent: accounts that
// already exist are left alone.
type Seeder struct {
	txm           database.TxManager
	userRepo      user.UserRepository
	structureRepo payroll.SalaryStructureRepository
}

func NewSeeder(txm database.TxManager, userRepo user.UserRepository, structureRepo payroll.SalaryStructureRepository) *Seeder {
	return &Seeder{
		txm:           txm,
		userRepo:      userRepo,
		structureRepo: structureRepo,
	}
}

func (s *Seeder) Seed(ctx context.Context) (int, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash seed password: %w", err)
	}

	seeded := 0
	for _, account := range demoAccounts {
		exists, err := s.userRepo.ExistsByEmailOrEmployeeID(ctx, account.email, account.employeeID)
		if err != nil {
			return seeded, fmt.Errorf("failed to check seed account %s: %w", account.employeeID, err)
		}
		if exists {
			continue
		}

		err = s.txm.WithinTx(ctx, func(txCtx context.Context) error {
			created, err := s.userRepo.Create(txCtx, user.User{
				EmployeeID:         account.employeeID,
				Name:               account.name,
				Email:              account.email,
				PasswordHash:       string(passwordHash),
				Role:               account.role,
				Salary:             account.salary,
				PaidLeaveRemaining: account.leaveDays,
			})
			if err != nil {
				return fmt.Errorf("failed to create seed user %s: %w", account.employeeID, err)
			}

			structure := account.structure
			structure.UserID = created.ID
			structure.ComputeNet()
			if _, err := s.structureRepo.Create(txCtx, structure); err != nil {
				return fmt.Errorf("failed to create seed salary structure for %s: %w", account.employeeID, err)
			}
			return nil
		})
		if err != nil {
			return seeded, err
		}
		seeded++
	}

	return seeded, nil
}

// Handler exposes seeding as a development-only endpoint.
func (s *Seeder) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeded, err := s.Seed(r.Context())
		if err != nil {
			response.InternalServerError(w, err.Error())
			return
		}
		response.SuccessWithMessage(w, fmt.Sprintf("Seeded %d demo accounts", seeded), nil)
	}
}
