package ease

import "math"

// Kumaraswamy returns the quantile function of the [Kumaraswamy
// distribution] with parameters a and b, used as an easing function. This
// produces a wide range of mostly asymmetric shapes. a and b must be greater
// than 0.
//
// [Kumaraswamy distribution]: https://en.wikipedia.org/wiki/Kumaraswamy_distribution
func Kumaraswamy(a, b float64) Func {
	ia := 1 / a
	ib := 1 / b
	return func(x float64) float64 {
		return math.Pow(1-math.Pow(1-x, ib), ia)
	}
}

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// BarronSpline evaluates Jonathan T. Barron's generalized bias and gain
// function at x, as described in [A Convenient Generalization of Schlick's
// Bias and Gain Functions].
//
// shape must be at least 0; values above 1 produce INOUT-like curves, values
// between 0 and 1 their inverse. turning, in [0, 1], is where the curve
// changes from one half to the other. With a turning of 0 and shape above 1
// the curve looks like an OUT curve, with 1 like an IN curve.
//
// [A Convenient Generalization of Schlick's Bias and Gain Functions]: https://arxiv.org/abs/2010.09714
func BarronSpline(x, shape, turning float64) float64 {
	d := turning - x
	if math.Signbit(d) {
		return (1-turning)*(x-1)/(minNormal+1-x-shape*d) + 1
	}
	return turning * x / (minNormal + x + shape*d)
}

// BiasGain returns [BarronSpline] with fixed shape and turning.
func BiasGain(shape, turning float64) Func {
	return func(a float64) float64 {
		return BarronSpline(a, shape, turning)
	}
}
