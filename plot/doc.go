// Package plot draws easing curves as graphs.
//
// [Fit] turns an easing curve into a [Path] of cubic Béziers, and [Sample]
// evaluates it at evenly spaced points. A [Layout] places graphs on a canvas
// with a grid, axes and labels; [WriteSVG] renders one curve into a
// standalone SVG document, and [WriteIndex] writes an HTML table linking
// many of them.
package plot

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ease.plot'.
func tracer() tracing.Trace {
	return tracing.Select("ease.plot")
}
