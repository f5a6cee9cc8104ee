package ease

import "math"

// SolveITP solves an arbitrary function for a zero-crossing.
//
// This uses the [ITP method], as described in the paper [An Enhancement of the
// Bisection Method Average Performance Preserving Minmax Optimality].
//
// The values of ya and yb are given as arguments rather than computed from f,
// as they are usually already known. It is assumed that ya < 0 and yb > 0,
// otherwise unexpected results may occur.
//
// The value of epsilon must be larger than 2**-63 * (b - a). k2 is hardwired
// to 2. n0 trades bisection against the secant step: 0 never needs more
// iterations than bisection, 1 lets the secant step engage more often for
// smooth functions. A k1 of 0.2 / (b - a) matches the paper.
//
// When the function is monotonic, the result is within epsilon of the zero
// crossing.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// Solve returns the progress alpha in [0, 1] at which e reaches value. This
// answers questions like "when is a tween halfway there?".
//
// e must be monotonic on [0, 1] for the result to be meaningful. Curves that
// overshoot, such as bouncing or elastic ones, have more than one solution
// and Solve returns an arbitrary one of them.
//
// ok is false if value isn't between e(0) and e(1).
func Solve(e Easer, value, epsilon float64) (alpha float64, ok bool) {
	y0 := e.Ease(0) - value
	y1 := e.Ease(1) - value
	switch {
	case y0 == 0:
		return 0, true
	case y1 == 0:
		return 1, true
	case math.Signbit(y0) == math.Signbit(y1) || math.IsNaN(y0) || math.IsNaN(y1):
		return 0, false
	}
	// SolveITP wants an increasing function.
	sign := 1.0
	if y0 > 0 {
		sign = -1
	}
	f := func(a float64) float64 {
		return sign * (e.Ease(a) - value)
	}
	return SolveITP(f, 0, 1, epsilon, 1, 0.2, sign*y0, sign*y1), true
}
