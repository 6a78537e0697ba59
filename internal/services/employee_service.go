package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/employee-backend/internal/api/validate"
	"github.com/baharkarakas/employee-backend/internal/metrics"
	"github.com/baharkarakas/employee-backend/internal/models"
	repo "github.com/baharkarakas/employee-backend/internal/repository"
)

// ErrEmployeeExists is returned by Create for an emp_id that is already taken,
// whether the lookup or the store's unique constraint caught it.
var ErrEmployeeExists = errors.New("employee id already exists")

type EmployeeService struct {
	r repo.Employees
	v *validate.Validator
}

func NewEmployeeService(r repo.Employees, v *validate.Validator) *EmployeeService {
	return &EmployeeService{r: r, v: v}
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	out, err := s.r.List(ctx)
	observe("list", err)
	return out, err
}

func (s *EmployeeService) Get(ctx context.Context, empID string) (models.Employee, error) {
	e, err := s.r.GetByEmpID(ctx, empID)
	observe("get", err)
	return e, err
}

func (s *EmployeeService) Create(ctx context.Context, req models.CreateEmployeeRequest) (e models.Employee, err error) {
	defer func() { observe("create", err) }()

	if err := s.v.Check(req); err != nil {
		return models.Employee{}, err
	}

	// fast path for the common case; the unique index settles races below
	_, err = s.r.GetByEmpID(ctx, req.EmpID)
	switch {
	case err == nil:
		return models.Employee{}, ErrEmployeeExists
	case !errors.Is(err, repo.ErrNotFound):
		return models.Employee{}, fmt.Errorf("lookup %s: %w", req.EmpID, err)
	}

	joined, _ := validate.ParseDate(req.JoiningDate, s.v.Now().Location())
	e, err = s.r.Create(ctx, models.EmployeeInput{
		EmpID:         req.EmpID,
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		JoiningDate:   joined,
		Training:      req.Training,
		ProjectStatus: req.ProjectStatus,
		ProjectName:   req.ProjectName,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return models.Employee{}, ErrEmployeeExists
	}
	return e, err
}

func (s *EmployeeService) Update(ctx context.Context, empID string, req models.UpdateEmployeeRequest) (e models.Employee, err error) {
	defer func() { observe("update", err) }()

	if err := s.v.Check(req); err != nil {
		return models.Employee{}, err
	}
	joined, _ := validate.ParseDate(req.JoiningDate, s.v.Now().Location())
	return s.r.Update(ctx, empID, models.EmployeeInput{
		EmpID:         empID,
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		JoiningDate:   joined,
		Training:      req.Training,
		ProjectStatus: req.ProjectStatus,
		ProjectName:   req.ProjectName,
	})
}

func (s *EmployeeService) Delete(ctx context.Context, empID string) (models.Employee, error) {
	e, err := s.r.Delete(ctx, empID)
	observe("delete", err)
	return e, err
}

func observe(op string, err error) {
	metrics.EmployeeOps.WithLabelValues(op, Outcome(err)).Inc()
}

// Outcome buckets an operation error for metrics and logs.
func Outcome(err error) string {
	var fe *validate.ErrField
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &fe):
		return "invalid"
	case errors.Is(err, ErrEmployeeExists):
		return "duplicate"
	case errors.Is(err, repo.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
