package staff

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// inMemory implements EmployeeStore using an in-memory map.
type inMemory struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]Employee
}

var _ EmployeeStore = (*inMemory)(nil)

// NewInMemoryStore creates a new instance of EmployeeStore
func NewInMemoryStore() EmployeeStore {
	return &inMemory{
		employees: make(map[uuid.UUID]Employee),
	}
}

func (s *inMemory) FindByID(_ context.Context, id uuid.UUID) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return &e, nil
}

func (s *inMemory) FindByEmail(_ context.Context, email string) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if strings.EqualFold(e.Email, email) {
			return &e, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (s *inMemory) FindAll(_ context.Context) ([]Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Employee, 0, len(s.employees))
	for _, e := range s.employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *inMemory) Create(_ context.Context, employee Employee) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	s.employees[employee.ID] = employee
	return &employee, nil
}

func (s *inMemory) Update(_ context.Context, employee Employee) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[employee.ID]; !ok {
		return nil, ErrEmployeeNotFound
	}
	s.employees[employee.ID] = employee
	return &employee, nil
}

func (s *inMemory) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

func (s *inMemory) ReplaceAll(_ context.Context, employees []Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = make(map[uuid.UUID]Employee, len(employees))
	for _, e := range employees {
		s.employees[e.ID] = e
	}
	return nil
}
