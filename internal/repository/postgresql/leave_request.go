package postgresql

import (
	"context"
	"errors"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `id, user_id, user_name, type, start_date, end_date, remarks, status,
			   admin_comment, created_at, updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var request leave.LeaveRequest
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.UserName,
		&request.Type,
		&request.StartDate,
		&request.EndDate,
		&request.Remarks,
		&request.Status,
		&request.AdminComment,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, user_name, type, start_date, end_date, remarks, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveColumns + `
	`

	return scanLeaveRequest(q.QueryRow(ctx, query,
		request.UserID,
		request.UserName,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.Remarks,
		request.Status,
	))
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// UpdateStatus implements leave.LeaveRequestRepository. The status guard is
// repeated here so a lost race still cannot decide a request twice.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, admin_comment = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'Pending'
	`

	tag, err := q.Exec(ctx, query, req.Status, req.AdminComment, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveAlreadyProcessed
	}
	return nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
