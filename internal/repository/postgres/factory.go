package postgres

import (
	"time"

	repo "github.com/baharkarakas/employee-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Employees repo.Employees
}

// NewRepositories binds every repository to the shared pool. timeout bounds
// each store call; zero leaves the caller's context untouched.
func NewRepositories(pool *pgxpool.Pool, timeout time.Duration) Repositories {
	return Repositories{
		Employees: &employeesRepo{pool: pool, timeout: timeout},
	}
}
