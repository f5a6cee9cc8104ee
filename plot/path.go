package plot

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move to the point without drawing anything, starting a new subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

// PathElement is one command of a [Path].
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	default:
		return "InvalidPathElement"
	}
}

// End returns the point the element ends on.
func (el PathElement) End() Point {
	if el.Kind == CubicToKind {
		return el.P2
	}
	return el.P0
}

func (el PathElement) mapPoints(fn func(Point) Point) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(fn(el.P0))
	case LineToKind:
		return LineTo(fn(el.P0))
	case CubicToKind:
		return CubicTo(fn(el.P0), fn(el.P1), fn(el.P2))
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// Path is a sequence of path elements. Every subpath begins with a MoveTo.
type Path []PathElement

func (p *Path) Push(el PathElement) { *p = append(*p, el) }

func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// Elements returns the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Map returns a copy of the path with fn applied to every point.
func (p Path) Map(fn func(Point) Point) Path {
	out := make(Path, len(p))
	for i, el := range p {
		out[i] = el.mapPoints(fn)
	}
	return out
}

// Segments returns the cubic Béziers of the path. Line segments are
// returned as cubics with control points on the line.
func (p Path) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
			case LineToKind:
				seg := CubicBez{last, last.Lerp(el.P0, 1.0/3), last.Lerp(el.P0, 2.0/3), el.P0}
				if !yield(seg) {
					return
				}
			case CubicToKind:
				if !yield(CubicBez{last, el.P0, el.P1, el.P2}) {
					return
				}
			}
			last = el.End()
		}
	}
}

// PathOptions specifies optional settings for [PathData] and
// [WritePathData].
type PathOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// PathData converts a sequence of path elements to a string of SVG path
// commands.
//
// See [WritePathData] for a version that writes to an [io.Writer] instead of
// returning a string.
func PathData(seq iter.Seq[PathElement], opts PathOptions) string {
	sb := &strings.Builder{}
	WritePathData(sb, seq, opts)
	return sb.String()
}

// WritePathData converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WritePathData(w io.Writer, seq iter.Seq[PathElement], opts PathOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", formatCoord(el.P0.X, opts), formatCoord(el.P0.Y, opts))
		case LineToKind:
			writef("L%s,%s", formatCoord(el.P0.X, opts), formatCoord(el.P0.Y, opts))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				formatCoord(el.P0.X, opts), formatCoord(el.P0.Y, opts),
				formatCoord(el.P1.X, opts), formatCoord(el.P1.Y, opts),
				formatCoord(el.P2.X, opts), formatCoord(el.P2.Y, opts))
		default:
			panic("unreachable")
		}
	}
	return err
}

func formatCoord(n float64, opts PathOptions) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
