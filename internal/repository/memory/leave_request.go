package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if request.ID == "" {
		request.ID = newID()
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.store.leaves[request.ID] = request
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	request, ok := r.store.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.leaves[req.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}
	request.Status = req.Status
	request.AdminComment = req.AdminComment
	request.UpdatedAt = time.Now()
	r.store.leaves[request.ID] = request
	return nil
}

func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var requests []leave.LeaveRequest
	for _, request := range r.store.leaves {
		if request.UserID == userID {
			requests = append(requests, request)
		}
	}
	sortByCreatedDesc(requests)
	return requests, nil
}

func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	requests := make([]leave.LeaveRequest, 0, len(r.store.leaves))
	for _, request := range r.store.leaves {
		requests = append(requests, request)
	}
	sortByCreatedDesc(requests)
	return requests, nil
}

func sortByCreatedDesc(requests []leave.LeaveRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
