package postgresql

import (
	"context"
	"errors"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, employee_id, name, email, password_hash, role, department, job_title,
			   phone, address, joining_date, salary, paid_leave_remaining, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.Department,
		&found.JobTitle,
		&found.Phone,
		&found.Address,
		&found.JoiningDate,
		&found.Salary,
		&found.PaidLeaveRemaining,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByIDForUpdate implements user.UserRepository. The row stays locked until
// the surrounding transaction commits or rolls back.
func (r *userRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	return scanUser(q.QueryRow(ctx, query, email))
}

// ExistsByEmailOrEmployeeID implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR employee_id = $2)`

	var exists bool
	err := q.QueryRow(ctx, query, email, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			employee_id, name, email, password_hash, role, department, job_title,
			phone, address, joining_date, salary, paid_leave_remaining
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query,
		newUser.EmployeeID,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Department,
		newUser.JobTitle,
		newUser.Phone,
		newUser.Address,
		newUser.JoiningDate,
		newUser.Salary,
		newUser.PaidLeaveRemaining,
	))
}

// Update implements user.UserRepository. Nil fields keep their stored value.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			department = COALESCE($2, department),
			job_title = COALESCE($3, job_title),
			phone = COALESCE($4, phone),
			address = COALESCE($5, address),
			joining_date = COALESCE($6::date, joining_date),
			salary = COALESCE($7, salary),
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query,
		req.Name,
		req.Department,
		req.JobTitle,
		req.Phone,
		req.Address,
		req.JoiningDate,
		req.Salary,
		req.ID,
	))
}

// UpdateLeaveBalance implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLeaveBalance(ctx context.Context, id string, remaining int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET paid_leave_remaining = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, remaining, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, found)
	}

	return users, rows.Err()
}
