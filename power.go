package ease

import "math"

// Pow returns an INOUT function using the given power. For powers greater
// than 1, it starts slowly, speeds up in the middle and slows down at the
// end. Non-integer powers are supported; negative powers are not.
func Pow(power float64) Func {
	return func(a float64) float64 {
		if a <= 0.5 {
			return math.Pow(a+a, power) * 0.5
		}
		return math.Pow(2-a-a, power)*-0.5 + 1
	}
}

// PowOutIn returns the OUTIN counterpart of [Pow]. For powers greater than 1,
// it starts quickly, slows down in the middle and speeds up at the end. It
// is computed directly rather than via [Flip].
func PowOutIn(power float64) Func {
	return func(a float64) float64 {
		if a > 0.5 {
			return math.Pow(a+a-1, power)*0.5 + 0.5
		}
		return math.Pow(1-a-a, power)*-0.5 + 0.5
	}
}

// PowIn returns a^power.
func PowIn(power float64) Func {
	return func(a float64) float64 {
		return math.Pow(a, power)
	}
}

// PowOut returns 1 - (1-a)^power.
func PowOut(power float64) Func {
	return func(a float64) float64 {
		return 1 - math.Pow(1-a, power)
	}
}

// Fixed forms of the power family for exponents with cheaper implementations.
var (
	// SqrtInOut is Pow(0.5).
	SqrtInOut Func = func(a float64) float64 {
		if a <= 0.5 {
			return math.Sqrt(a+a) * 0.5
		}
		return math.Sqrt(2-a-a)*-0.5 + 1
	}
	SqrtIn  Func = math.Sqrt
	SqrtOut Func = func(a float64) float64 { return 1 - math.Sqrt(1-a) }
	CbrtIn  Func = math.Cbrt
	CbrtOut Func = func(a float64) float64 { return 1 - math.Cbrt(1-a) }
)
