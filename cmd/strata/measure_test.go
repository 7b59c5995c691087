// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type measurement struct {
	width, height float32
	lines         int
}

func measureText(t *testing.T, args ...string) measurement {
	t.Helper()
	out, err := execute(t, append([]string{"measure"}, args...)...)
	require.NoError(t, err)
	var m measurement
	_, err = fmt.Sscanf(out, "width: %g\nheight: %g\nlines: %d\n", &m.width, &m.height, &m.lines)
	require.NoError(t, err, "output: %s", out)
	return m
}

func TestMeasure(t *testing.T) {
	one := measureText(t, "Hello")
	assert.Greater(t, one.width, float32(0))
	assert.Greater(t, one.height, float32(0))
	assert.Equal(t, 1, one.lines)

	two := measureText(t, "Hello\nHello")
	assert.Equal(t, 2, two.lines)
	assert.Equal(t, one.width, two.width)
	assert.InDelta(t, 2*one.height, two.height, 0.01)

	large := measureText(t, "--size", "32", "Hello")
	assert.InDelta(t, 2*one.width, large.width, 1)
}

func TestMeasureWrap(t *testing.T) {
	wide := measureText(t, "Hello Hello")
	wrapped := measureText(t, "--max-width", fmt.Sprint(wide.width-1), "Hello Hello")
	assert.Equal(t, 2, wrapped.lines)
	assert.Less(t, wrapped.width, wide.width)
}

func TestMeasureMono(t *testing.T) {
	a := measureText(t, "--font", "mono", "iiii")
	b := measureText(t, "--font", "mono", "mmmm")
	assert.Equal(t, a.width, b.width)
}

func TestMeasureSpacing(t *testing.T) {
	plain := measureText(t, "abc")
	spaced := measureText(t, "--spacing", "2", "abc")
	// Spacing follows every rune but the last.
	assert.InDelta(t, plain.width+4, spaced.width, 0.01)
}

func TestMeasureUnknownFont(t *testing.T) {
	_, err := execute(t, "measure", "--font", "comic", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown font "comic"`)
}
