// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/strata/layout"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, float32(1024), cfg.Layout.Width)
	assert.Equal(t, float32(768), cfg.Layout.Height)
	assert.Equal(t, 8192, cfg.Layout.MaxElements)
	assert.True(t, cfg.Layout.Culling)
	assert.False(t, cfg.Layout.Debug)
	assert.Equal(t, float32(10), cfg.Layout.WheelScale)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Layout.Width = 0
	cfg.Layout.MaxElements = -1
	cfg.Logger.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout dimensions must be positive")
	assert.Contains(t, err.Error(), "layout.max_elements must be positive")
	assert.Contains(t, err.Error(), `logger.format must be console or json, got "xml"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strata.yaml")
	data := []byte("layout:\n  width: 640\n  height: 480\n  debug: true\nlogger:\n  format: json\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, float32(640), cfg.Layout.Width)
	assert.Equal(t, float32(480), cfg.Layout.Height)
	assert.True(t, cfg.Layout.Debug)
	assert.Equal(t, "json", cfg.Logger.Format)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 8192, cfg.Layout.MaxElements)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("STRATA_LAYOUT_WIDTH", "320")
	t.Setenv("STRATA_LOGGER_LEVEL", "debug")
	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, float32(320), cfg.Layout.Width)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestApply(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Layout.MaxElements = 256
	cfg.Layout.Debug = true
	assert.GreaterOrEqual(t, cfg.Layout.MemorySize(), layout.MinMemorySize())

	arena, err := layout.NewArena(cfg.Layout.MemorySize())
	require.NoError(t, err)
	c, err := layout.Initialize(arena, cfg.Layout.Dimensions(), layout.ErrorHandler{})
	require.NoError(t, err)
	cfg.Layout.Apply(c)
	assert.Equal(t, 256, c.MaxElementCount())
	assert.True(t, c.IsDebugModeEnabled())
}
