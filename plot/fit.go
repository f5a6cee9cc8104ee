package plot

import (
	"math"

	"honnef.co/go/ease"
)

// DefaultAccuracy is the accuracy [WriteSVG] fits curves with, in unit
// space. With the default layout it is well below a pixel.
const DefaultAccuracy = 1e-4

const (
	// fitIntervals is the number of intervals fitting starts from.
	fitIntervals = 16
	// fitMaxDepth bounds the subdivision of a single interval.
	fitMaxDepth = 22
	// fitProbes is the number of points per cubic the error is measured at.
	fitProbes = 8
	// minJump is the smallest change in value across an interval of the
	// minimum width that is treated as a discontinuity.
	minJump = 1e-3
)

// Sample evaluates e at n+1 evenly spaced points of [0, 1]. It panics if n
// is not positive.
func Sample(e ease.Easer, n int) []Point {
	if n <= 0 {
		panic("plot: sample count must be positive")
	}
	out := make([]Point, n+1)
	for i := range out {
		a := float64(i) / float64(n)
		out[i] = Pt(a, e.Ease(a))
	}
	return out
}

// Fit approximates the graph y = e(x), for x in [0, 1], with a path of
// cubic Béziers that stays within accuracy of the curve, measured
// vertically.
//
// Each cubic is the Hermite interpolant of an interval, using slopes
// estimated from inside the interval. Intervals whose cubic is too far from
// the curve are halved. This handles kinks, such as the floor contacts of a
// bouncing curve, without special cases. Where halving stops helping, the
// interval is drawn as a straight line. Jumps, such as those of a flipped
// curve that doesn't pass through (0.5, 0.5), start a new subpath, as do
// stretches where e isn't finite.
func Fit(e ease.Easer, accuracy float64) Path {
	f := fitter{e: e, accuracy: accuracy}
	for i := range fitIntervals {
		f.fit(float64(i)/fitIntervals, float64(i+1)/fitIntervals, 0)
	}
	return f.path
}

type fitter struct {
	e        ease.Easer
	accuracy float64
	path     Path
	// down is true while the path ends on the curve.
	down bool
}

func (f *fitter) cubic(x0, x1 float64) CubicBez {
	d := (x1 - x0) * 1e-4
	y0 := f.e.Ease(x0)
	y1 := f.e.Ease(x1)
	m0 := (f.e.Ease(x0+d) - y0) / d
	m1 := (y1 - f.e.Ease(x1-d)) / d
	return hermite(Pt(x0, y0), Pt(x1, y1), m0, m1)
}

func (f *fitter) error(c CubicBez) float64 {
	var worst float64
	for i := 1; i < fitProbes; i++ {
		p := c.Eval(float64(i) / fitProbes)
		worst = math.Max(worst, math.Abs(p.Y-f.e.Ease(p.X)))
	}
	return worst
}

func (f *fitter) fit(x0, x1 float64, depth int) {
	c := f.cubic(x0, x1)
	if !c.isFinite() {
		f.down = false
		return
	}
	err := f.error(c)
	if math.IsNaN(err) {
		f.down = false
		return
	}
	if err <= f.accuracy {
		f.emit(c)
		return
	}
	if depth >= fitMaxDepth {
		if math.Abs(c.P3.Y-c.P0.Y) > minJump {
			tracer().Debugf("fit: discontinuity between %g and %g", x0, x1)
			f.down = false
			return
		}
		// Too steep or too small a step to fit; the chord is close enough.
		tracer().Debugf("fit: error %g near %g exceeds %g", err, x0, f.accuracy)
		f.emitLine(c.P0, c.P3)
		return
	}
	mid := 0.5 * (x0 + x1)
	f.fit(x0, mid, depth+1)
	f.fit(mid, x1, depth+1)
}

func (f *fitter) penDown(p Point) {
	if !f.down {
		f.path.MoveTo(p)
		f.down = true
	}
}

func (f *fitter) emit(c CubicBez) {
	f.penDown(c.P0)
	f.path.CubicTo(c.P1, c.P2, c.P3)
}

func (f *fitter) emitLine(p0, p1 Point) {
	f.penDown(p0)
	f.path.LineTo(p1)
}
