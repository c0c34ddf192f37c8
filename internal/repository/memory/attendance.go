package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (r *attendanceRepository) withUserName(record attendance.Attendance) attendance.Attendance {
	if found, ok := r.store.users[record.UserID]; ok {
		name := found.Name
		record.UserName = &name
	}
	return record
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if record.ID == "" {
		record.ID = newID()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.store.attendance[record.ID] = record
	return r.withUserName(record), nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, record := range r.store.attendance {
		if record.UserID == userID && sameDay(record.Date, date) {
			record = r.withUserName(record)
			return &record, nil
		}
	}
	return nil, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.attendance[record.ID]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	stored.CheckOut = record.CheckOut
	stored.WorkMinutes = record.WorkMinutes
	stored.Status = record.Status
	stored.UpdatedAt = time.Now()
	r.store.attendance[stored.ID] = stored
	return r.withUserName(stored), nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []attendance.Attendance
	for _, record := range r.store.attendance {
		if record.UserID == userID {
			records = append(records, r.withUserName(record))
		}
	}
	sortByDateDesc(records)
	return records, nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]attendance.Attendance, 0, len(r.store.attendance))
	for _, record := range r.store.attendance {
		records = append(records, r.withUserName(record))
	}
	sortByDateDesc(records)
	return records, nil
}

func sortByDateDesc(records []attendance.Attendance) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
