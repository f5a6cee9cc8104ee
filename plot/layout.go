package plot

import (
	"fmt"

	"honnef.co/go/ease"
)

// Layout describes where a graph sits on a canvas. Canvas coordinates have
// their origin in the top left corner with y growing downwards; the
// distances stored in a Layout are measured from the bottom left corner,
// with y growing upwards.
type Layout struct {
	// Size of the canvas.
	Width, Height float64
	// Distance between grid lines, and the position of the first one.
	Grid, GridStart float64
	// Position of the y axis, where alpha is 0.
	OriginX float64
	// Position of the x axis. Values are drawn one unit above it, so that
	// they don't vanish behind the axis.
	OriginY float64
	// Length of the unit interval on both axes.
	Scale float64
	// Number of segments when a curve is drawn as a polyline.
	Samples int
}

// DefaultLayout is a 300×420 canvas with room for values between -0.4 and
// 1.4.
var DefaultLayout = Layout{
	Width:     300,
	Height:    420,
	Grid:      40,
	GridStart: 20,
	OriginX:   60,
	OriginY:   100,
	Scale:     200,
	Samples:   200,
}

// Value returns the height, above the bottom of the canvas, at which the
// graph of e is drawn for alpha.
func (l Layout) Value(e ease.Easer, alpha float64) float64 {
	lo := l.OriginY + 1
	return ease.Range(e, lo, lo+l.Scale, alpha)
}

// Map maps a point from unit space to canvas coordinates.
func (l Layout) Map(p Point) Point {
	return Pt(l.OriginX+p.X*l.Scale, l.Height-(l.OriginY+1+p.Y*l.Scale))
}

// Polyline returns the graph of e as Samples line segments, in canvas
// coordinates.
func (l Layout) Polyline(e ease.Easer) Path {
	var p Path
	for i, pt := range Sample(e, l.Samples) {
		if i == 0 {
			p.MoveTo(l.Map(pt))
		} else {
			p.LineTo(l.Map(pt))
		}
	}
	return p
}

type GuideKind int

const (
	GridLine GuideKind = iota + 1
	Axis
	// UnitLine marks where x or y is 1.
	UnitLine
)

// Guide is a straight line in the background of a graph.
type Guide struct {
	Kind     GuideKind
	From, To Point
}

// Guides returns the grid lines, axes and unit lines, in canvas coordinates
// and in drawing order.
func (l Layout) Guides() []Guide {
	var out []Guide
	for y := l.GridStart; y < l.Height; y += l.Grid {
		out = append(out, Guide{GridLine, Pt(0, l.Height-y), Pt(l.Width, l.Height-y)})
	}
	for x := l.GridStart; x < l.Width; x += l.Grid {
		out = append(out, Guide{GridLine, Pt(x, 0), Pt(x, l.Height)})
	}
	top := l.Height - l.OriginY - l.Scale
	right := l.OriginX + l.Scale
	out = append(out,
		Guide{Axis, Pt(0, l.Height-l.OriginY), Pt(l.Width, l.Height-l.OriginY)},
		Guide{Axis, Pt(l.OriginX, 0), Pt(l.OriginX, l.Height)},
		Guide{UnitLine, Pt(0, top), Pt(l.Width, top)},
		Guide{UnitLine, Pt(right, 0), Pt(right, l.Height)},
	)
	return out
}

// Label is a piece of text on a graph. At is the left end of the text's
// baseline, in canvas coordinates.
type Label struct {
	At   Point
	Text string
}

// Labels returns the labels of the grid lines: values along the y axis for
// every horizontal grid line below the title, and progress along the x axis
// for every vertical grid line between 0 and 1.
func (l Layout) Labels() []Label {
	var out []Label
	for y := l.GridStart; y+7 <= l.Height-20; y += l.Grid {
		v := (y - l.OriginY) / l.Scale
		out = append(out, Label{Pt(l.OriginX-28, l.Height-(y+7)), formatLabel(v)})
	}
	for x := l.GridStart; x < l.Width; x += l.Grid {
		if x < l.OriginX || x > l.OriginX+l.Scale {
			continue
		}
		v := (x - l.OriginX) / l.Scale
		out = append(out, Label{Pt(x-14, l.Height-(l.OriginY-18)), formatLabel(v)})
	}
	return out
}

// Title returns the position of the centered title.
func (l Layout) Title() Point {
	return Pt(l.Width/2, 26)
}

func formatLabel(v float64) string {
	s := fmt.Sprintf("%4.1f", v)
	if s == "-0.0" {
		return " 0.0"
	}
	return s
}
