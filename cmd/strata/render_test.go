// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rowScene = `
width = 800
height = 100

[[element]]
id = "row"
width = "fixed(800)"
height = "fixed(100)"
padding = [10]
gap = 20

  [[element.children]]
  id = "a"
  width = "grow"
  height = "grow"
  background = "#ff0000"

  [[element.children]]
  id = "b"
  width = "grow"
  height = "grow"
  background = "#0000ff"
`

const listScene = `
width = 200
height = 200

[[element]]
id = "list"
direction = "ttb"
width = "fixed(100)"
height = "fixed(50)"
clip = { vertical = true }

  [[element.children]]
  id = "first"
  width = "fixed(100)"
  height = "fixed(40)"
  image = "first.png"

  [[element.children]]
  id = "second"
  width = "fixed(100)"
  height = "fixed(40)"
  image = "second.png"

  [[element.children]]
  text = "caption"
`

func TestRenderText(t *testing.T) {
	path := writeFile(t, "row.toml", rowScene)
	out, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rectangle {10 10 380 80}")
	assert.Contains(t, out, "Rectangle {410 10 380 80}")
	assert.Contains(t, out, "color=#ff0000ff")
	assert.Contains(t, out, "color=#0000ffff")
}

func TestRenderJSON(t *testing.T) {
	path := writeFile(t, "row.toml", rowScene)
	out, err := execute(t, "render", "--format", "json", path)
	require.NoError(t, err)

	var got jsonFrame
	require.NoError(t, json.Unmarshal([]byte(out), &got), "output: %s", out)
	assert.Equal(t, float32(800), got.Width)
	assert.Equal(t, float32(100), got.Height)
	require.Len(t, got.Commands, 2)
	assert.Equal(t, "Rectangle", got.Commands[0].Type)
	assert.Equal(t, jsonBox{X: 10, Y: 10, Width: 380, Height: 80}, got.Commands[0].Box)
	assert.Equal(t, "#ff0000ff", got.Commands[0].Color)
	assert.Empty(t, got.Errors)
}

func TestRenderDimensionFlags(t *testing.T) {
	path := writeFile(t, "row.toml", rowScene)
	out, err := execute(t, "--width", "400", "--height", "100", "render", "--format", "json", path)
	require.NoError(t, err)
	var got jsonFrame
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float32(400), got.Width)
}

func TestRenderScroll(t *testing.T) {
	path := writeFile(t, "list.toml", listScene)
	out, err := execute(t, "render", "--frames", "2", "--pointer", "10,10", "--scroll", "0,-1", path)
	require.NoError(t, err)
	// One wheel step scrolls by the default wheel scale of 10.
	assert.Contains(t, out, "Image {0 -10 100 40}")
	assert.Contains(t, out, "image=first.png")
	assert.Contains(t, out, "ScissorStart {0 0 100 50}")
	assert.Contains(t, out, "pointer over list")
	assert.Contains(t, out, "pointer over first")
}

func TestRenderStrict(t *testing.T) {
	path := writeFile(t, "dup.toml", `
[[element]]
id = "same"
[[element]]
id = "same"
`)
	out, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "error DuplicateID")

	_, err = execute(t, "render", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 layout errors in the final frame")
}

func TestRenderInvalid(t *testing.T) {
	path := writeFile(t, "row.toml", rowScene)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"frames", []string{"render", "--frames", "0", path}, "--frames must be at least 1"},
		{"format", []string{"render", "--format", "xml", path}, "--format must be text or json"},
		{"pointer", []string{"render", "--pointer", "1", path}, "--pointer takes x,y"},
		{"missing scene", []string{"render", "missing.toml"}, "missing.toml"},
		{"bad scene", []string{"render", writeFile(t, "bad.toml", "[[element]]\nwidth = \"wide\"\n")}, `unknown sizing "wide"`},
		{"args", []string{"render"}, "accepts 1 arg(s)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}
