package ease

// Swing returns an INOUT function that dips below 0 at the start, rises
// rapidly, exceeds 1 past the middle and ends at 1. Larger scales swing
// further. Negative scales are not supported.
func Swing(scale float64) Func {
	sc := scale + scale
	return func(a float64) float64 {
		if a <= 0.5 {
			a += a
			return ((sc+1)*a - sc) * a * a * 0.5
		}
		a += a - 2
		return ((sc+1)*a+sc)*a*a*0.5 + 1
	}
}

// SwingOut returns a function that rises rapidly, exceeds 1 and settles back
// to 1 at the end. With a scale of 1.70158 this is Penner's OutBack.
func SwingOut(scale float64) Func {
	return func(a float64) float64 {
		a--
		return ((scale+1)*a+scale)*a*a + 1
	}
}

// SwingIn returns a function that dips below 0 before speeding up towards 1.
// With a scale of 1.70158 this is Penner's InBack.
func SwingIn(scale float64) Func {
	return func(a float64) float64 {
		return a * a * ((scale+1)*a - scale)
	}
}
