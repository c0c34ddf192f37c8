package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// workingDay truncates a timestamp to the calendar day it belongs to.
func workingDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now()
	today := workingDay(now)

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Attendance{
		UserID:  userID,
		Date:    today,
		CheckIn: &now,
		Status:  attendance.StatusPresent,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. Worked time is derived
// from the stored check-in timestamp, and a day can be checked out once.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now()
	today := workingDay(now)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	workMinutes := int(now.Sub(*record.CheckIn).Minutes())
	record.CheckOut = &now
	record.WorkMinutes = &workMinutes

	updated, err := a.AttendanceRepository.Update(ctx, *record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}
