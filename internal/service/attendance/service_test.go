package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceTestEnv struct {
	repo    attendance.AttendanceRepository
	service attendance.AttendanceService
}

func newAttendanceTestEnv() attendanceTestEnv {
	store := memory.NewStore()
	repo := memory.NewAttendanceRepository(store)
	return attendanceTestEnv{
		repo:    repo,
		service: NewAttendanceService(repo),
	}
}

func TestCheckInCreatesTodayRecord(t *testing.T) {
	env := newAttendanceTestEnv()

	record, err := env.service.CheckIn(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	assert.NotEmpty(t, record.CheckIn)
	assert.Empty(t, record.CheckOut)
	assert.Nil(t, record.WorkHours)
}

func TestCheckInTwiceSameDayFails(t *testing.T) {
	env := newAttendanceTestEnv()

	_, err := env.service.CheckIn(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = env.service.CheckIn(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInIsPerUser(t *testing.T) {
	env := newAttendanceTestEnv()

	_, err := env.service.CheckIn(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = env.service.CheckIn(context.Background(), "user-2")
	assert.NoError(t, err)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	env := newAttendanceTestEnv()

	_, err := env.service.CheckOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutComputesElapsedTime(t *testing.T) {
	env := newAttendanceTestEnv()

	// Seed a record whose check-in happened hours ago
	now := time.Now()
	checkIn := now.Add(-3 * time.Hour)
	_, err := env.repo.Create(context.Background(), attendance.Attendance{
		UserID:  "user-1",
		Date:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CheckIn: &checkIn,
		Status:  attendance.StatusPresent,
	})
	require.NoError(t, err)

	record, err := env.service.CheckOut(context.Background(), "user-1")
	require.NoError(t, err)

	require.NotNil(t, record.WorkHours)
	assert.InDelta(t, 3.0, *record.WorkHours, 0.05)
	assert.NotEmpty(t, record.CheckOut)
}

func TestCheckOutTwiceFails(t *testing.T) {
	env := newAttendanceTestEnv()

	_, err := env.service.CheckIn(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = env.service.CheckOut(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = env.service.CheckOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceListings(t *testing.T) {
	env := newAttendanceTestEnv()

	_, err := env.service.CheckIn(context.Background(), "user-1")
	require.NoError(t, err)
	_, err = env.service.CheckIn(context.Background(), "user-2")
	require.NoError(t, err)

	mine, err := env.service.GetMyAttendance(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := env.service.ListAttendance(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
