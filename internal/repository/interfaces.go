package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/employee-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("employee not found")
	ErrDuplicate = errors.New("employee id already exists")
)

// Employees maps the five employee operations onto the store. Get, Update
// and Delete return ErrNotFound for an unknown emp_id; Create returns
// ErrDuplicate when the store rejects the emp_id as taken.
type Employees interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByEmpID(ctx context.Context, empID string) (models.Employee, error)
	Create(ctx context.Context, in models.EmployeeInput) (models.Employee, error)
	Update(ctx context.Context, empID string, in models.EmployeeInput) (models.Employee, error)
	Delete(ctx context.Context, empID string) (models.Employee, error)
}
