// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Strata lays out scene documents into render commands.")
	assert.Contains(t, out, "render")
	assert.Contains(t, out, "measure")
	assert.Contains(t, out, "--log-level")
}

func TestInvalidConfig(t *testing.T) {
	path := writeFile(t, "strata.yaml", "logger:\n  format: xml\n")
	_, err := execute(t, "--config", path, "measure", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger.format must be console or json")
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", "does-not-exist.yaml", "measure", "x")
	assert.Error(t, err)
}

func TestConfigScale(t *testing.T) {
	path := writeFile(t, "strata.yaml", "layout:\n  scale: 2\n")
	scenePath := writeFile(t, "box.toml", `
[[element]]
width = "fixed(10)"
height = "fixed(20)"
background = "#ffffff"
`)
	out, err := execute(t, "--config", path, "render", scenePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Rectangle {0 0 20 40}")
}
