// SPDX-License-Identifier: Unlicense OR MIT

package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gioui.org/strata/internal/config"
	"gioui.org/strata/layout"
)

func TestInitializeJSON(t *testing.T) {
	ResetForTest()
	defer ResetForTest()
	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "test"}, zapcore.AddSync(&buf))
	GetLogger().Warn("hello", zap.String("key", "value"))
	GetLogger().Debug("filtered")
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output: %s", buf.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "test", entry["logger"])
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.NotContains(t, buf.String(), "filtered")
}

func TestInitializeConsole(t *testing.T) {
	ResetForTest()
	defer ResetForTest()
	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))
	GetLogger().Info("console message")
	Sync()
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "console message")
}

func TestInitializeOnce(t *testing.T) {
	ResetForTest()
	defer ResetForTest()
	var first, second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&first))
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&second))
	GetLogger().Info("once")
	assert.Contains(t, first.String(), "once")
	assert.Empty(t, second.String())
}

func TestLogFile(t *testing.T) {
	ResetForTest()
	defer ResetForTest()
	path := filepath.Join(t.TempDir(), "strata.log")
	var console bytes.Buffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "console", LogFile: path, MaxSize: 1}, zapcore.AddSync(&console))
	GetLogger().Error("to file")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "to file", entry["msg"])
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	ResetForTest()
	assert.NotNil(t, GetLogger())
	assert.NotPanics(t, Sync)
}

func TestLayoutErrorsLogged(t *testing.T) {
	ResetForTest()
	defer ResetForTest()
	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))

	arena, err := layout.NewArena(layout.MinMemorySize())
	require.NoError(t, err)
	c, err := layout.Initialize(arena, layout.Dimensions{Width: 100, Height: 100}, layout.ErrorHandler{})
	require.NoError(t, err)
	c.SetLogger(GetLogger())
	c.BeginLayout()
	c.Element(layout.Declaration{ID: layout.ID("a")}, nil)
	c.Element(layout.Declaration{ID: layout.ID("a")}, nil)
	c.EndLayout()
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output: %s", buf.String())
	assert.Equal(t, "DuplicateID", entry["kind"])
}
