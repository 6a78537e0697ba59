package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/employee-backend/internal/db"
	"github.com/baharkarakas/employee-backend/internal/models"
	"github.com/baharkarakas/employee-backend/internal/repository"
)

// testPool connects to TEST_DATABASE_URL and empties the employees table.
// The suite is skipped when no database is configured.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, url, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE employees RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func input(empID string) models.EmployeeInput {
	return models.EmployeeInput{
		EmpID:         empID,
		Name:          "John Doe",
		Email:         "john.doe@astrolitetech.com",
		Role:          "Engineer",
		JoiningDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ProjectStatus: "bench",
	}
}

func TestEmployeesRepoLifecycle(t *testing.T) {
	pool := testPool(t)
	r := NewRepositories(pool, 5*time.Second).Employees
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	first, err := r.Create(ctx, input("ATS0001"))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "ATS0001", first.EmpID)
	assert.Nil(t, first.ProjectName)
	assert.Equal(t, "2026-09-01", first.JoiningDate.Format(models.DateLayout))

	second, err := r.Create(ctx, input("ATS0002"))
	require.NoError(t, err)

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	upd := input("ATS0001")
	upd.Role = "Lead"
	upd.ProjectStatus = models.ProjectStatusInProject
	upd.ProjectName = "Apollo Project"
	upd.Training = true
	got, err := r.Update(ctx, "ATS0001", upd)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Lead", got.Role)
	assert.True(t, got.Training)
	require.NotNil(t, got.ProjectName)
	assert.Equal(t, "Apollo Project", *got.ProjectName)

	deleted, err := r.Delete(ctx, "ATS0001")
	require.NoError(t, err)
	assert.Equal(t, "ATS0001", deleted.EmpID)

	_, err = r.GetByEmpID(ctx, "ATS0001")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeesRepoNotFound(t *testing.T) {
	r := NewEmployees(testPool(t), time.Second)
	ctx := context.Background()

	_, err := r.GetByEmpID(ctx, "ATS0404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.Update(ctx, "ATS0404", input("ATS0404"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.Delete(ctx, "ATS0404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeesRepoUniqueEmpID(t *testing.T) {
	r := NewEmployees(testPool(t), time.Second)
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ok   int
		dups int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, input("ATS0100"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, repository.ErrDuplicate):
				dups++
			default:
				t.Errorf("unexpected create error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 7, dups)
}
