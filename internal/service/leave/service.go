package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	txm database.TxManager
	leave.LeaveRequestRepository
	user.UserRepository
}

func NewLeaveService(txm database.TxManager, leaveRequestRepository leave.LeaveRequestRepository, userRepository user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		txm:                    txm,
		LeaveRequestRepository: leaveRequestRepository,
		UserRepository:         userRepository,
	}
}

// CreateRequest implements leave.LeaveService. The paid-leave balance is
// deliberately not checked here: it can change between request and decision,
// so the only authoritative check happens at approval time.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.LeaveRequest{
		UserID:    req.UserID,
		UserName:  req.UserName,
		Type:      leave.LeaveType(req.Type),
		StartDate: startDate,
		EndDate:   endDate,
		Remarks:   req.Remarks,
		Status:    leave.LeaveStatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService. For Paid leave the balance check,
// the balance deduction and the status transition run inside one transaction
// with the user row locked, so concurrent approvals for the same user
// serialize and either everything commits or nothing does.
func (l *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveResponse, error) {
	var decided leave.LeaveRequest

	err := l.txm.WithinTx(ctx, func(txCtx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByID(txCtx, req.RequestID)
		if err != nil {
			return err
		}

		if request.Status.IsTerminal() {
			return leave.ErrLeaveAlreadyProcessed
		}

		if request.Type == leave.LeaveTypePaid {
			requester, err := l.UserRepository.GetByIDForUpdate(txCtx, request.UserID)
			if err != nil {
				return fmt.Errorf("failed to load requesting user: %w", err)
			}

			days := request.InclusiveDays()
			if requester.PaidLeaveRemaining < days {
				return leave.ErrInsufficientBalance
			}

			if err := l.UserRepository.UpdateLeaveBalance(txCtx, requester.ID, requester.PaidLeaveRemaining-days); err != nil {
				return fmt.Errorf("failed to deduct leave balance: %w", err)
			}
		}

		comment := req.AdminComment
		update := leave.UpdateStatusRequest{
			ID:           request.ID,
			Status:       leave.LeaveStatusApproved,
			AdminComment: &comment,
		}
		if err := l.LeaveRequestRepository.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		request.Status = leave.LeaveStatusApproved
		request.AdminComment = &comment
		decided = request
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(decided), nil
}

// Reject implements leave.LeaveService. Rejection never touches the balance.
func (l *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveResponse, error) {
	var decided leave.LeaveRequest

	err := l.txm.WithinTx(ctx, func(txCtx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByID(txCtx, req.RequestID)
		if err != nil {
			return err
		}

		if request.Status.IsTerminal() {
			return leave.ErrLeaveAlreadyProcessed
		}

		comment := req.AdminComment
		update := leave.UpdateStatusRequest{
			ID:           request.ID,
			Status:       leave.LeaveStatusRejected,
			AdminComment: &comment,
		}
		if err := l.LeaveRequestRepository.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		request.Status = leave.LeaveStatusRejected
		request.AdminComment = &comment
		decided = request
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(decided), nil
}

// GetMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses
}
