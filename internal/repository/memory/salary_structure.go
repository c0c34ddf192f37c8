package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
)

type salaryStructureRepository struct {
	store *Store
}

func NewSalaryStructureRepository(store *Store) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{store: store}
}

func (r *salaryStructureRepository) Create(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	structure.LastUpdated = time.Now()
	r.store.structures[structure.UserID] = structure
	return structure, nil
}

func (r *salaryStructureRepository) GetByUserID(ctx context.Context, userID string) (payroll.SalaryStructure, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	structure, ok := r.store.structures[userID]
	if !ok {
		return payroll.SalaryStructure{}, payroll.ErrStructureNotFound
	}
	return structure, nil
}

func (r *salaryStructureRepository) Update(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.structures[structure.UserID]; !ok {
		return payroll.SalaryStructure{}, payroll.ErrStructureNotFound
	}
	structure.LastUpdated = time.Now()
	r.store.structures[structure.UserID] = structure
	return structure, nil
}

func (r *salaryStructureRepository) ListWithUsers(ctx context.Context) ([]payroll.StructureWithRole, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var structures []payroll.StructureWithRole
	for _, structure := range r.store.structures {
		item := payroll.StructureWithRole{SalaryStructure: structure}
		if found, ok := r.store.users[structure.UserID]; ok {
			name := found.Name
			employeeID := found.EmployeeID
			item.UserName = &name
			item.EmployeeID = &employeeID
			item.Role = string(found.Role)
		}
		structures = append(structures, item)
	}
	sort.Slice(structures, func(i, j int) bool {
		left, right := "", ""
		if structures[i].EmployeeID != nil {
			left = *structures[i].EmployeeID
		}
		if structures[j].EmployeeID != nil {
			right = *structures[j].EmployeeID
		}
		return left < right
	})
	return structures, nil
}
