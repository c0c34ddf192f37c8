package postgresql

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
)

type payrollHistoryRepositoryImpl struct {
	db *database.DB
}

func NewPayrollHistoryRepository(db *database.DB) payroll.PayrollHistoryRepository {
	return &payrollHistoryRepositoryImpl{db: db}
}

// Create implements payroll.PayrollHistoryRepository.
func (r *payrollHistoryRepositoryImpl) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_history (user_id, month, base_salary, bonus, deductions, net_pay, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, month, base_salary, bonus, deductions, net_pay, status, created_at
	`

	var created payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Month,
		record.BaseSalary,
		record.Bonus,
		record.Deductions,
		record.NetPay,
		record.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Month,
		&created.BaseSalary,
		&created.Bonus,
		&created.Deductions,
		&created.NetPay,
		&created.Status,
		&created.CreatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	return created, nil
}

// ListByUser implements payroll.PayrollHistoryRepository.
func (r *payrollHistoryRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, base_salary, bonus, deductions, net_pay, status, created_at
		FROM payroll_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var record payroll.PayrollRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Month,
			&record.BaseSalary,
			&record.Bonus,
			&record.Deductions,
			&record.NetPay,
			&record.Status,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
