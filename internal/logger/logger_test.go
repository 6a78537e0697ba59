package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProdLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", &buf)

	log.Debug("hidden")
	log.Info("server starting", "port", "3605")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "server starting", line["msg"])
	assert.Equal(t, "3605", line["port"])
	assert.Equal(t, "employee-api", line["service"])
}

func TestDevLogsDebugText(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("dev", &buf).Debug("lookup", "emp_id", "ATS0001")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "emp_id=ATS0001")
}
