package ease

import "math"

// The spring functions are exponentially decaying sines in the convention of
// libGDX's Elastic interpolation. value is the base of the exponential decay
// (2 is common), power how quickly it decays (10 is common), bounces the
// number of half-oscillations, and scale the amplitude (1 is common).

// springFreq is the angular frequency for the given number of bounces, with
// the sign chosen so that even and odd counts swing the same way.
func springFreq(bounces int) float64 {
	return float64(bounces) * (0.5 - float64(bounces&1))
}

// Spring returns an INOUT function that wobbles around 0 at the start and
// around 1 at the end.
func Spring(value, power float64, bounces int, scale float64) Func {
	bounce := springFreq(bounces) * 2 * math.Pi
	return func(a float64) float64 {
		if a <= 0.5 {
			a += a
			return math.Pow(value, power*(a-1)) * math.Sin(a*bounce) * scale * 0.5
		}
		a = 2 - a - a
		return 1 - math.Pow(value, power*(a-1))*math.Sin(a*bounce)*scale*0.5
	}
}

// SpringOut returns a function that shoots past 1 and wobbles around it
// before settling. Over the first 2% of input it blends up from exactly 0.
func SpringOut(value, power float64, bounces int, scale float64) Func {
	bounce := springFreq(bounces)
	return func(a float64) float64 {
		f := 1 - math.Pow(value, power*-a)*math.Sin((bounce-a*bounce)*2*math.Pi)*scale
		if a <= 0.02 {
			return Lerp(0, f, a*50)
		}
		return f
	}
}

// SpringIn returns a function that wobbles around 0 with growing amplitude
// before shooting up to 1. Over the last 2% of input it blends into exactly
// 1.
func SpringIn(value, power float64, bounces int, scale float64) Func {
	bounce := springFreq(bounces) * 2 * math.Pi
	return func(a float64) float64 {
		f := math.Pow(value, power*(a-1)) * math.Sin(a*bounce) * scale
		if a >= 0.98 {
			return blend(f, 1, 50*(a-0.98))
		}
		return f
	}
}

// SpringOutIn returns a function that wobbles around 0.5 in the middle.
func SpringOutIn(value, power float64, bounces int, scale float64) Func {
	bounce := (springFreq(bounces) - 0.25) * 2 * math.Pi
	return func(a float64) float64 {
		if a > 0.5 {
			a += a - 1
			return math.Pow(value, power*(a-1))*math.Sin(a*bounce)*scale*0.5 + 0.5
		}
		a = 1 - a - a
		return 0.5 - math.Pow(value, power*(a-1))*math.Sin(a*bounce)*scale*0.5
	}
}
