package leave

import (
	"context"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveTestEnv struct {
	store    *memory.Store
	userRepo user.UserRepository
	service  leave.LeaveService
}

func newLeaveTestEnv() leaveTestEnv {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)
	txm := memory.NewTxManager(store)
	return leaveTestEnv{
		store:    store,
		userRepo: userRepo,
		service:  NewLeaveService(txm, leaveRepo, userRepo),
	}
}

func (e leaveTestEnv) createUser(t *testing.T, balance int) user.User {
	t.Helper()
	created, err := e.userRepo.Create(context.Background(), user.User{
		EmployeeID:         "EMP010",
		Name:               "Jonas Field",
		Email:              "jonas@dayflow.com",
		Role:               user.RoleEmployee,
		PaidLeaveRemaining: balance,
	})
	require.NoError(t, err)
	return created
}

func (e leaveTestEnv) createRequest(t *testing.T, userID, leaveType, start, end string) leave.LeaveResponse {
	t.Helper()
	created, err := e.service.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    userID,
		UserName:  "Jonas Field",
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	return created
}

func TestCreateRequestStartsPending(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)

	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")

	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, 5, created.Days)
	assert.Equal(t, "Jonas Field", created.UserName)
}

func TestCreateRequestAllowedBeyondBalance(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 2)

	// The balance is only authoritative at decision time, so a request
	// larger than the current balance is still accepted.
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-13")

	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, 12, created.Days)
}

func TestCreateRequestRejectsBadInput(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)

	_, err := env.service.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    u.ID,
		Type:      "Vacation",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
	})
	assert.Error(t, err)

	_, err = env.service.CreateRequest(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    u.ID,
		Type:      "Paid",
		StartDate: "2026-03-06",
		EndDate:   "2026-03-02",
	})
	assert.Error(t, err)
}

func TestApprovePaidLeaveDeductsBalance(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")

	decided, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:    created.ID,
		AdminComment: "Enjoy",
	})
	require.NoError(t, err)

	assert.Equal(t, "Approved", decided.Status)
	require.NotNil(t, decided.AdminComment)
	assert.Equal(t, "Enjoy", *decided.AdminComment)

	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.PaidLeaveRemaining)
}

func TestApprovePaidLeaveInsufficientBalance(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 7)
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-09")

	_, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// Nothing may change when the approval fails
	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.PaidLeaveRemaining)

	requests, err := env.service.GetMyRequests(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Pending", requests[0].Status)
}

func TestApproveExactBalanceReachesZero(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 5)
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")

	_, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	require.NoError(t, err)

	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.PaidLeaveRemaining)
}

func TestApproveSickLeaveKeepsBalance(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	created := env.createRequest(t, u.ID, "Sick", "2026-03-02", "2026-03-06")

	decided, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Approved", decided.Status)

	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.PaidLeaveRemaining)
}

func TestApproveUnpaidLeaveKeepsBalance(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	created := env.createRequest(t, u.ID, "Unpaid", "2026-03-02", "2026-03-20")

	_, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	require.NoError(t, err)

	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.PaidLeaveRemaining)
}

func TestRejectKeepsBalance(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")

	decided, err := env.service.Reject(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:    created.ID,
		AdminComment: "Short staffed that week",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", decided.Status)

	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.PaidLeaveRemaining)
}

func TestDecisionOnProcessedRequestFails(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")

	_, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	require.NoError(t, err)

	// A second approval must not deduct again
	_, err = env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = env.service.Reject(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	updated, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.PaidLeaveRemaining)
}

func TestDecisionOnUnknownRequestFails(t *testing.T) {
	env := newLeaveTestEnv()

	_, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: "missing"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	_, err = env.service.Reject(context.Background(), leave.DecideLeaveRequestRequest{RequestID: "missing"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestApproveForMissingUserLeavesRequestPending(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	created := env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")

	// Simulating a mid-transaction failure: the requester disappears
	// between creation and decision, so the whole approval rolls back.
	env.store.DeleteUser(u.ID)

	_, err := env.service.Approve(context.Background(), leave.DecideLeaveRequestRequest{RequestID: created.ID})
	require.Error(t, err)

	requests, err := env.service.ListRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Pending", requests[0].Status)
}

func TestListingsSplitByUser(t *testing.T) {
	env := newLeaveTestEnv()
	u := env.createUser(t, 12)
	other, err := env.userRepo.Create(context.Background(), user.User{
		EmployeeID: "EMP011",
		Name:       "Mira Stone",
		Email:      "mira@dayflow.com",
		Role:       user.RoleEmployee,
	})
	require.NoError(t, err)

	env.createRequest(t, u.ID, "Paid", "2026-03-02", "2026-03-06")
	env.createRequest(t, other.ID, "Sick", "2026-03-04", "2026-03-04")

	mine, err := env.service.GetMyRequests(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := env.service.ListRequests(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
