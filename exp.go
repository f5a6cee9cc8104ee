package ease

import "math"

// expNorm returns the offset and scale that make value^(power·x) land on 0
// and 1 at the ends of the curve.
func expNorm(value, power float64) (offset, scale float64) {
	offset = math.Pow(value, -power)
	return offset, 1 / (1 - offset)
}

// Exp returns an INOUT function based on value^x. For power > 1, it starts
// slowly, speeds up in the middle and slows down at the end. value must be
// greater than 1 and power greater than 0.
func Exp(value, power float64) Func {
	lo, scale := expNorm(value, power)
	return func(a float64) float64 {
		if a <= 0.5 {
			return (math.Pow(value, power*(a*2-1)) - lo) * scale * 0.5
		}
		return (2 - (math.Pow(value, -power*(a*2-1))-lo)*scale) * 0.5
	}
}

// ExpIn returns the accelerating half of [Exp].
func ExpIn(value, power float64) Func {
	lo, scale := expNorm(value, power)
	return func(a float64) float64 {
		return (math.Pow(value, power*(a-1)) - lo) * scale
	}
}

// ExpOut returns the decelerating half of [Exp].
func ExpOut(value, power float64) Func {
	lo, scale := expNorm(value, power)
	return func(a float64) float64 {
		return 1 - (math.Pow(value, -power*a)-lo)*scale
	}
}
