package ease

// Bounce parameters are given as width, height, width, height, ... pairs, one
// pair per bounce. Every even index is a width and every odd index a height.
// Later widths and heights are no greater than earlier ones. Widths are
// positive and less than 2, and typically no greater than 1.5. A trailing
// unpaired value is ignored. The bounce generators panic if given fewer than
// two values.

// BounceOut returns a function that bounces at the end, like a ball dropped
// onto the floor. The function walks the bounces to find the one containing
// the current position and follows a parabola within it. Over the last 2% of
// input it blends into exactly 1.
func BounceOut(pairs ...float64) Func {
	if len(pairs) < 2 {
		panic("ease: bounce needs at least one width, height pair")
	}
	pairs = append([]float64(nil), pairs...)
	return func(a float64) float64 {
		b := a + pairs[0]*0.5
		var width, height float64
		for i, n := 0, (len(pairs)&^1)-1; i < n; i += 2 {
			width = pairs[i]
			if b <= width {
				height = pairs[i+1]
				break
			}
			b -= width
		}
		z := 4 / (width * width) * height * b
		f := 1 - z*(width-b)
		if a >= 0.98 {
			return blend(f, 1, 50*(a-0.98))
		}
		return f
	}
}

// BounceIn returns a function that bounces at the start. It is
// 1 - BounceOut(1-a).
func BounceIn(pairs ...float64) Func {
	out := BounceOut(pairs...)
	return func(a float64) float64 {
		return 1 - out(1-a)
	}
}

// Bounce returns a function that bounces at both the start and the end.
func Bounce(pairs ...float64) Func {
	out := BounceOut(pairs...)
	first := pairs[0]
	half := first * 0.5
	// out with the first bounce replaced by a straight rise, so that the
	// halves meet at 0.5.
	rise := func(o float64) float64 {
		test := o + half
		if test < first {
			return test/half - 1
		}
		return out(o)
	}
	return func(a float64) float64 {
		if a <= 0.5 {
			return (1 - rise(1-a-a)) * 0.5
		}
		return rise(a+a-1)*0.5 + 0.5
	}
}
