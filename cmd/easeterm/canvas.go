package main

import (
	"math"
	"strings"

	"honnef.co/go/ease"
)

// The visible range of eased values.
const (
	lowest  = -0.4
	highest = 1.4
)

const (
	blank = ' '
	axis  = '-'
	unit  = '.'
	mark  = '*'
)

// render draws the graph of e into w columns and h rows, the first row
// being the top one. Column 0 is alpha 0, column w-1 alpha 1.
func render(e ease.Easer, w, h int) []string {
	if w < 2 || h < 2 {
		return nil
	}
	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(blank), w))
	}
	row := func(v float64) int {
		return int(math.Round((highest - v) / (highest - lowest) * float64(h-1)))
	}
	set := func(r, c int, ch rune) {
		if r >= 0 && r < h {
			grid[r][c] = ch
		}
	}
	for c := range w {
		set(row(0), c, axis)
		set(row(1), c, unit)
	}
	prev := 0
	for c := range w {
		v := e.Ease(float64(c) / float64(w-1))
		if math.IsNaN(v) {
			continue
		}
		v = max(min(v, highest+1), lowest-1)
		r := row(v)
		set(r, c, mark)
		// Fill in steep parts so the graph stays connected.
		if c > 0 {
			for i := min(prev, r) + 1; i < max(prev, r); i++ {
				set(i, c, mark)
			}
		}
		prev = r
	}
	out := make([]string, h)
	for r, line := range grid {
		out[r] = string(line)
	}
	return out
}
