package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeJSONUsesColumnNames(t *testing.T) {
	project := "Apollo Project"
	e := Employee{
		ID:            7,
		EmpID:         "ATS0007",
		Name:          "John Doe",
		Email:         "john.doe@astrolitetech.com",
		Role:          "Engineer",
		JoiningDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Training:      true,
		ProjectStatus: ProjectStatusInProject,
		ProjectName:   &project,
	}

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"emp_id": "ATS0007",
		"name": "John Doe",
		"email": "john.doe@astrolitetech.com",
		"role": "Engineer",
		"joining_date": "2026-09-01",
		"training": true,
		"project_status": "in-project",
		"project_name": "Apollo Project"
	}`, string(b))
}

func TestEmployeeJSONNullProjectName(t *testing.T) {
	b, err := json.Marshal(Employee{EmpID: "ATS0001", JoiningDate: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Nil(t, out["project_name"])
	assert.Contains(t, out, "project_name")
}
