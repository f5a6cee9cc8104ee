package ease

import "math"

// Easer is implemented by anything that maps progress to an eased value.
// Both [Func] and [Curve] implement it.
type Easer interface {
	Ease(alpha float64) float64
}

// Func is an easing function. It maps alpha, which is almost always in [0, 1],
// to a value that is usually, but not always, in [0, 1] as well.
//
// Funcs are pure. They are safe to call from multiple goroutines, and a Func
// returned by one of the generators in this package only depends on its
// argument and the parameters it was created with.
//
// The functions produced by the generators are not well-behaved for alpha
// outside of [0, 1]. Wrap them in a [Curve] to clamp the input.
type Func func(alpha float64) float64

var _ Easer = Func(nil)

// Ease implements [Easer].
func (f Func) Ease(alpha float64) float64 {
	return f(alpha)
}

// Range maps f(alpha) from [0, 1] onto [start, end]. See [Range].
func (f Func) Range(start, end, alpha float64) float64 {
	return Range(f, start, end, alpha)
}

// Flip returns f with its two halves swapped. See [Flip].
func (f Func) Flip() Func {
	return Flip(f)
}

// Range maps the output of e from the [0, 1] range onto the [start, end]
// range. Usually, but not always, the result is between start and end.
func Range(e Easer, start, end, alpha float64) float64 {
	return start + e.Ease(alpha)*(end-start)
}

// Flip splits e at alpha = 0.5 and returns a function that behaves like the
// second half of e for alpha < 0.5 and like the first half for alpha > 0.5.
// This turns an INOUT curve into its OUTIN counterpart.
//
// The result is offset so that it starts at 0, passes 0.5 and ends at 1, as
// long as e does the same. If e doesn't satisfy e(0) = 0, e(0.5) = 0.5 and
// e(1) = 1, the returned function may be discontinuous.
//
// At exactly alpha = 0.5, alpha - 0.5 is positive zero and the offset is
// +0.5.
func Flip(e Easer) Func {
	return func(a float64) float64 {
		return e.Ease(Fract(a+0.5)) + math.Copysign(0.5, a-0.5)
	}
}

// Fract returns the fractional part of t, t - ⌊t⌋. Unlike [math.Modf], the
// result is never negative: it is always in [0, 1) for finite t.
func Fract(t float64) float64 {
	f := t - math.Floor(t)
	if f >= 1 {
		// t was a tiny negative number and t+1 rounded to 1.
		return 0
	}
	return f
}

// Clamp clamps alpha to [0, 1]. NaN is returned unchanged.
func Clamp(alpha float64) float64 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// Lerp linearly interpolates between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// blend mixes f into target as t goes from 0 to 1. Unlike [Lerp], t is
// clamped and the endpoint t = 1 yields exactly target.
func blend(f, target, t float64) float64 {
	t = min(t, 1)
	return f*(1-t) + target*t
}
