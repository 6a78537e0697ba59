package models

import (
	"encoding/json"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// ProjectStatusInProject is the only status that requires a project name.
	ProjectStatusInProject = "in-project"
)

type Employee struct {
	ID            int64     `json:"id"`
	EmpID         string    `json:"emp_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	JoiningDate   time.Time `json:"joining_date"`
	Training      bool      `json:"training"`
	ProjectStatus string    `json:"project_status"`
	ProjectName   *string   `json:"project_name"`
}

// MarshalJSON renders joining_date as a plain calendar date.
func (e Employee) MarshalJSON() ([]byte, error) {
	type alias Employee
	return json.Marshal(struct {
		alias
		JoiningDate string `json:"joining_date"`
	}{
		alias:       alias(e),
		JoiningDate: e.JoiningDate.Format(DateLayout),
	})
}

// EmployeeInput is the validated set of columns written by create and update.
type EmployeeInput struct {
	EmpID         string
	Name          string
	Email         string
	Role          string
	JoiningDate   time.Time
	Training      bool
	ProjectStatus string
	ProjectName   string
}

// Field order is the order checks run in; the first failure is reported.
type CreateEmployeeRequest struct {
	Name          string `json:"name" validate:"person_name"`
	EmpID         string `json:"empId" validate:"employee_id"`
	Email         string `json:"email" validate:"company_email"`
	Role          string `json:"role" validate:"role_name"`
	JoiningDate   string `json:"joiningDate" validate:"joining_date"`
	Training      bool   `json:"training"`
	ProjectStatus string `json:"projectStatus"`
	ProjectName   string `json:"projectName" validate:"project_name"`
}

// UpdateEmployeeRequest carries no emp_id; the path identifies the row.
type UpdateEmployeeRequest struct {
	Name          string `json:"name" validate:"person_name"`
	Email         string `json:"email" validate:"company_email"`
	Role          string `json:"role" validate:"role_name"`
	JoiningDate   string `json:"joiningDate" validate:"joining_date"`
	Training      bool   `json:"training"`
	ProjectStatus string `json:"projectStatus"`
	ProjectName   string `json:"projectName" validate:"project_name"`
}
