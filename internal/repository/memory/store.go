// Package memory provides map-backed implementations of the repository
// interfaces. It backs the service tests, where it substitutes for the
// PostgreSQL repositories behind the same interfaces.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

// Store holds every collection behind a single mutex.
type Store struct {
	mu         sync.RWMutex
	users      map[string]user.User
	attendance map[string]attendance.Attendance
	leaves     map[string]leave.LeaveRequest
	structures map[string]payroll.SalaryStructure // keyed by user ID
	payrolls   map[string]payroll.PayrollRecord

	txMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]user.User),
		attendance: make(map[string]attendance.Attendance),
		leaves:     make(map[string]leave.LeaveRequest),
		structures: make(map[string]payroll.SalaryStructure),
		payrolls:   make(map[string]payroll.PayrollRecord),
	}
}

func newID() string {
	return uuid.NewString()
}

// DeleteUser removes a user outright. Useful in tests that simulate a row
// vanishing between reads.
func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type snapshot struct {
	users      map[string]user.User
	attendance map[string]attendance.Attendance
	leaves     map[string]leave.LeaveRequest
	structures map[string]payroll.SalaryStructure
	payrolls   map[string]payroll.PayrollRecord
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		users:      maps.Clone(s.users),
		attendance: maps.Clone(s.attendance),
		leaves:     maps.Clone(s.leaves),
		structures: maps.Clone(s.structures),
		payrolls:   maps.Clone(s.payrolls),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.attendance = snap.attendance
	s.leaves = snap.leaves
	s.structures = snap.structures
	s.payrolls = snap.payrolls
}

type txManager struct {
	store *Store
}

// NewTxManager returns a database.TxManager over the store. Transactions
// serialize on a lock; when fn fails the store is restored to the snapshot
// taken at the start, so a failed unit of work leaves no partial writes.
func NewTxManager(store *Store) database.TxManager {
	return &txManager{store: store}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}
