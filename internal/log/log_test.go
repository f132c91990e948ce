package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetOutput_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zapcore.InfoLevel)
	defer SetOutput(nil, zapcore.InfoLevel)

	Debug("hidden")
	Info("resolved plan", "panes", 3, "plan", "workspace")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "resolved plan", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(3), entry["panes"])
	assert.Equal(t, "workspace", entry["plan"])
}

func TestSetOutput_NilDisables(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zapcore.DebugLevel)
	SetOutput(nil, zapcore.DebugLevel)

	Error("dropped")
	assert.Empty(t, buf.String())
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.log")
	require.NoError(t, Init("warn", path))

	Info("below level")
	Warn("overlap", "a", "editor", "b", "terminal")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below level")
	assert.Contains(t, string(data), `"msg":"overlap"`)
	assert.Contains(t, string(data), `"b":"terminal"`)
}

func TestInit_BadLevel(t *testing.T) {
	err := Init("loud", "")
	assert.ErrorContains(t, err, "invalid log level")
}
