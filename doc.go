// Package ease provides easing curves: functions that map the progress of an
// animation, a value in [0, 1], to an eased value that is usually, but not
// always, in [0, 1] as well. Multiplied onto the distance between a start and
// an end value, they make motion speed up, slow down, overshoot or bounce.
//
// # Functions and curves
//
// The basic building block is [Func], a plain float64 → float64 function.
// Funcs compose: [Range] maps a function's output onto an arbitrary
// interval, and [Flip] swaps the two halves of a function, turning an INOUT
// shape into an OUTIN one.
//
// A [Curve] gives a Func a name, its tag, and clamps the input to [0, 1]. By
// convention, tags have the form "Family.SUFFIX", where SUFFIX is one of
//
//   - IN: starts slowly and speeds up, or does something unusual at the start
//   - OUT: slows down towards the end, or does something unusual at the end
//   - INOUT: does both, in that order
//   - OUTIN: the halves of INOUT swapped, usually via [Flip]
//
// # Generators
//
// Most curves are produced by parametric generators, one family per shape:
//
//   - powers: [Pow], [PowIn], [PowOut], [PowOutIn]
//   - exponentials: [Exp], [ExpIn], [ExpOut]
//   - smoothstep: [Smooth], [Smooth2], [Smoother]
//   - trigonometric: [SineInOut], [CircleInOut] and friends
//   - bouncing: [Bounce], [BounceIn], [BounceOut]
//   - overshooting: [Swing], [SwingIn], [SwingOut]
//   - damped oscillation: [Spring] and [Elastic], in two conventions
//   - the quantile function of the [Kumaraswamy distribution]: [Kumaraswamy]
//   - Jonathan Barron's bias and gain spline: [BiasGain]
//
// Generators don't validate their parameters. Parameters outside the
// documented ranges produce whatever the formula produces, including NaN and
// infinities. The [honnef.co/go/ease/define] package builds curves from
// declarative definitions and does validate.
//
// # Registries
//
// A [Registry] maps tags to curves, in the order they were registered.
// [RegisterEquations] and [RegisterInterpolations] fill a registry with one
// of two predefined libraries; they share most tags but differ in a few
// conventions, most notably what "Elastic" means. [Default] returns a shared
// registry holding the equations.
//
// [Kumaraswamy distribution]: https://en.wikipedia.org/wiki/Kumaraswamy_distribution
package ease

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ease'.
func tracer() tracing.Trace {
	return tracing.Select("ease")
}
