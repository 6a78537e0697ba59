// Package repotest provides an in-memory repository.Employees for tests.
package repotest

import (
	"context"
	"sort"
	"sync"

	"github.com/baharkarakas/employee-backend/internal/models"
	"github.com/baharkarakas/employee-backend/internal/repository"
)

var _ repository.Employees = (*Employees)(nil)

type Employees struct {
	mu     sync.Mutex
	rows   map[string]models.Employee
	nextID int64

	// Err, when set, is returned by every call.
	Err error
}

func NewEmployees() *Employees {
	return &Employees{rows: map[string]models.Employee{}}
}

func (m *Employees) List(_ context.Context) ([]models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Employee, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *Employees) GetByEmpID(_ context.Context, empID string) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Employee{}, m.Err
	}
	e, ok := m.rows[empID]
	if !ok {
		return models.Employee{}, repository.ErrNotFound
	}
	return e, nil
}

func (m *Employees) Create(_ context.Context, in models.EmployeeInput) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Employee{}, m.Err
	}
	if _, ok := m.rows[in.EmpID]; ok {
		return models.Employee{}, repository.ErrDuplicate
	}
	m.nextID++
	e := apply(models.Employee{ID: m.nextID, EmpID: in.EmpID}, in)
	m.rows[in.EmpID] = e
	return e, nil
}

func (m *Employees) Update(_ context.Context, empID string, in models.EmployeeInput) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Employee{}, m.Err
	}
	e, ok := m.rows[empID]
	if !ok {
		return models.Employee{}, repository.ErrNotFound
	}
	e = apply(e, in)
	m.rows[empID] = e
	return e, nil
}

func (m *Employees) Delete(_ context.Context, empID string) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Employee{}, m.Err
	}
	e, ok := m.rows[empID]
	if !ok {
		return models.Employee{}, repository.ErrNotFound
	}
	delete(m.rows, empID)
	return e, nil
}

func apply(e models.Employee, in models.EmployeeInput) models.Employee {
	e.Name = in.Name
	e.Email = in.Email
	e.Role = in.Role
	e.JoiningDate = in.JoiningDate
	e.Training = in.Training
	e.ProjectStatus = in.ProjectStatus
	e.ProjectName = nil
	if in.ProjectName != "" {
		name := in.ProjectName
		e.ProjectName = &name
	}
	return e
}
