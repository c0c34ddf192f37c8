package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
)

type payrollHistoryRepository struct {
	store *Store
}

func NewPayrollHistoryRepository(store *Store) payroll.PayrollHistoryRepository {
	return &payrollHistoryRepository{store: store}
}

func (r *payrollHistoryRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if record.ID == "" {
		record.ID = newID()
	}
	record.CreatedAt = time.Now()
	r.store.payrolls[record.ID] = record
	return record, nil
}

func (r *payrollHistoryRepository) ListByUser(ctx context.Context, userID string) ([]payroll.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []payroll.PayrollRecord
	for _, record := range r.store.payrolls {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}
