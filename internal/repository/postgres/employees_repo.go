package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/employee-backend/internal/models"
	"github.com/baharkarakas/employee-backend/internal/repository"
)

const employeeColumns = `id, emp_id, name, email, role, joining_date, training,
       COALESCE(project_status, ''), project_name`

type employeesRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewEmployees(pool *pgxpool.Pool, timeout time.Duration) repository.Employees {
	return &employeesRepo{pool: pool, timeout: timeout}
}

func (r *employeesRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.EmpID, &e.Name, &e.Email, &e.Role, &e.JoiningDate,
		&e.Training, &e.ProjectStatus, &e.ProjectName)
	return e, err
}

// one maps a missing row onto repository.ErrNotFound.
func one(row pgx.Row, op string) (models.Employee, error) {
	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("%s employee: %w", op, err)
	}
	return e, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *employeesRepo) List(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	out := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

func (r *employeesRepo) GetByEmpID(ctx context.Context, empID string) (models.Employee, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return one(r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE emp_id=$1`, empID), "get")
}

func (r *employeesRepo) Create(ctx context.Context, in models.EmployeeInput) (models.Employee, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const q = `
INSERT INTO employees (name, emp_id, email, role, joining_date, training, project_status, project_name)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING ` + employeeColumns

	e, err := scanEmployee(r.pool.QueryRow(ctx, q,
		in.Name, in.EmpID, in.Email, in.Role, in.JoiningDate, in.Training, in.ProjectStatus, nullable(in.ProjectName),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return models.Employee{}, repository.ErrDuplicate
		}
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return e, nil
}

func (r *employeesRepo) Update(ctx context.Context, empID string, in models.EmployeeInput) (models.Employee, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const q = `
UPDATE employees
   SET name=$1, email=$2, role=$3, joining_date=$4, training=$5,
       project_status=$6, project_name=$7
 WHERE emp_id=$8
RETURNING ` + employeeColumns

	return one(r.pool.QueryRow(ctx, q,
		in.Name, in.Email, in.Role, in.JoiningDate, in.Training, in.ProjectStatus, nullable(in.ProjectName), empID,
	), "update")
}

func (r *employeesRepo) Delete(ctx context.Context, empID string) (models.Employee, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return one(r.pool.QueryRow(ctx,
		`DELETE FROM employees WHERE emp_id=$1 RETURNING `+employeeColumns, empID), "delete")
}
