package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "picker.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
		_ = SetLevel("info")
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	assert.Equal(t, path, Path())
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	assert.Equal(t, defaultLogFile, Path())
}

func TestErrorWritesToFile(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "nil error must not create the log file")

	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom")
}

func TestWarnWritesKeyValues(t *testing.T) {
	path := useTempLog(t)
	Warn("loader result ignored", "phase", "error")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARN")
	assert.Contains(t, string(data), "loader result ignored")
	assert.Contains(t, string(data), "phase=error")
}

func TestSetLevelFiltersDebug(t *testing.T) {
	path := useTempLog(t)
	Debug("hidden")
	require.NoError(t, SetLevel("debug"))
	Debug("visible", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
	assert.Contains(t, string(data), "key=value")
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	useTempLog(t)
	require.Error(t, SetLevel("chatty"))
	require.NoError(t, SetLevel(""))
}

func TestTraceOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	SetTraceEnabled(true)
	Trace("loader.items", map[string]interface{}{"count": 2})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "loader.items", entry.Event)
	assert.EqualValues(t, 2, entry.Payload["count"])
}
