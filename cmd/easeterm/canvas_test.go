package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/ease"
)

func TestRenderLinear(t *testing.T) {
	// 19 rows put the rows 0.1 apart, with 0 on row 14 and 1 on row 4.
	lines := render(ease.Linear, 11, 19)
	require.Len(t, lines, 19)
	for c := range 11 {
		r := 14 - c
		assert.Equal(t, mark, []rune(lines[r])[c], "column %d", c)
	}
	assert.Equal(t, "*----------", lines[14])
	assert.Equal(t, "..........*", lines[4])
	assert.Equal(t, "           ", lines[0])
}

func TestRenderStep(t *testing.T) {
	step := ease.Func(func(a float64) float64 {
		if a < 0.5 {
			return 0
		}
		return 1
	})
	lines := render(step, 3, 19)
	assert.Equal(t, ".**", lines[4])
	for r := 5; r < 14; r++ {
		assert.Equal(t, " * ", lines[r], "row %d", r)
	}
	assert.Equal(t, "*--", lines[14])
}

func TestRenderClips(t *testing.T) {
	huge := ease.Func(func(a float64) float64 { return 100 * a })
	lines := render(huge, 5, 10)
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Len(t, []rune(l), 5)
	}
	assert.Nil(t, render(ease.Linear, 1, 10))
}
