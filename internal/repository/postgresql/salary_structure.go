package postgresql

import (
	"context"
	"errors"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryStructureRepositoryImpl struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepositoryImpl{db: db}
}

func scanStructure(row pgx.Row) (payroll.SalaryStructure, error) {
	var structure payroll.SalaryStructure
	err := row.Scan(
		&structure.UserID,
		&structure.BasicSalary,
		&structure.HRA,
		&structure.Allowances,
		&structure.Deductions,
		&structure.NetSalary,
		&structure.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrStructureNotFound
		}
		return payroll.SalaryStructure{}, err
	}
	return structure, nil
}

// Create implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) Create(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (user_id, basic_salary, hra, allowances, deductions, net_salary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, basic_salary, hra, allowances, deductions, net_salary, last_updated
	`

	return scanStructure(q.QueryRow(ctx, query,
		structure.UserID,
		structure.BasicSalary,
		structure.HRA,
		structure.Allowances,
		structure.Deductions,
		structure.NetSalary,
	))
}

// GetByUserID implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) GetByUserID(ctx context.Context, userID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, basic_salary, hra, allowances, deductions, net_salary, last_updated
		FROM salary_structures
		WHERE user_id = $1
	`

	return scanStructure(q.QueryRow(ctx, query, userID))
}

// Update implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) Update(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures
		SET basic_salary = $1, hra = $2, allowances = $3, deductions = $4,
			net_salary = $5, last_updated = NOW()
		WHERE user_id = $6
		RETURNING user_id, basic_salary, hra, allowances, deductions, net_salary, last_updated
	`

	return scanStructure(q.QueryRow(ctx, query,
		structure.BasicSalary,
		structure.HRA,
		structure.Allowances,
		structure.Deductions,
		structure.NetSalary,
		structure.UserID,
	))
}

// ListWithUsers implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) ListWithUsers(ctx context.Context) ([]payroll.StructureWithRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.user_id, s.basic_salary, s.hra, s.allowances, s.deductions,
			   s.net_salary, s.last_updated, u.name, u.employee_id, u.role
		FROM salary_structures s
		JOIN users u ON u.id = s.user_id
		ORDER BY u.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []payroll.StructureWithRole
	for rows.Next() {
		var item payroll.StructureWithRole
		err := rows.Scan(
			&item.UserID,
			&item.BasicSalary,
			&item.HRA,
			&item.Allowances,
			&item.Deductions,
			&item.NetSalary,
			&item.LastUpdated,
			&item.UserName,
			&item.EmployeeID,
			&item.Role,
		)
		if err != nil {
			return nil, err
		}
		structures = append(structures, item)
	}

	return structures, rows.Err()
}
