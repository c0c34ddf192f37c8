package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var record attendance.Attendance
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.CheckIn,
		&record.CheckOut,
		&record.Status,
		&record.WorkMinutes,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.UserName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return record, nil
}

const attendanceSelect = `
	SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.status,
		   a.work_minutes, a.created_at, a.updated_at, u.name
	FROM attendance_records a
	JOIN users u ON u.id = a.user_id
`

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendance_records (user_id, date, check_in, check_out, status, work_minutes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, user_id, date, check_in, check_out, status, work_minutes, created_at, updated_at
		)
		SELECT i.id, i.user_id, i.date, i.check_in, i.check_out, i.status,
			   i.work_minutes, i.created_at, i.updated_at, u.name
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`

	return scanAttendance(q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.Status,
		record.WorkMinutes,
	))
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.user_id = $1 AND a.date = $2
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE attendance_records
			SET check_out = $1, work_minutes = $2, status = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING id, user_id, date, check_in, check_out, status, work_minutes, created_at, updated_at
		)
		SELECT up.id, up.user_id, up.date, up.check_in, up.check_out, up.status,
			   up.work_minutes, up.created_at, up.updated_at, u.name
		FROM updated up
		JOIN users u ON u.id = up.user_id
	`

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		record.CheckOut,
		record.WorkMinutes,
		record.Status,
		record.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, err
	}
	return updated, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.user_id = $1
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		ORDER BY a.date DESC, u.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
