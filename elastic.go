package ease

import "math"

// The elastic functions follow the Universal Tween Engine's conventions:
// base and exponent control the exponential decay, intensity is the period
// of the oscillation, and scale its amplitude. Scales below 1 are treated as
// 1 with a quarter-period phase shift.

func elasticShape(intensity, scale float64) (amp, shift float64) {
	if scale < 1 {
		return 1, intensity * 0.25
	}
	return scale, intensity / (2 * math.Pi) * math.Asin(1/scale)
}

// Elastic returns an INOUT function that wobbles with growing amplitude
// around 0, snaps across the middle and wobbles with shrinking amplitude
// around 1.
func Elastic(base, exponent, intensity, scale float64) Func {
	amp, s := elasticShape(intensity, scale)
	w := 2 * math.Pi / intensity
	return func(alpha float64) float64 {
		if alpha >= 1 {
			return 1
		}
		t := alpha * 2
		if t < 1 {
			t--
			return -0.5 * (amp * math.Pow(base, exponent*t) * math.Sin((t-s)*w))
		}
		t--
		return amp*math.Pow(base, -exponent*t)*math.Sin((t-s)*w)*0.5 + 1
	}
}

// ElasticOut returns a function that shoots past 1 and oscillates around it
// with decaying amplitude.
func ElasticOut(base, exponent, intensity, scale float64) Func {
	amp, s := elasticShape(intensity, scale)
	w := 2 * math.Pi / intensity
	return func(alpha float64) float64 {
		if alpha >= 1 {
			return 1
		}
		return amp*math.Pow(base, -exponent*alpha)*math.Sin((alpha-s)*w) + 1
	}
}

// ElasticIn returns a function that oscillates around 0 with growing
// amplitude before reaching 1.
func ElasticIn(base, exponent, intensity, scale float64) Func {
	amp, s := elasticShape(intensity, scale)
	w := 2 * math.Pi / intensity
	return func(alpha float64) float64 {
		if alpha >= 1 {
			return 1
		}
		alpha--
		return -(amp * math.Pow(base, exponent*alpha) * math.Sin((alpha-s)*w))
	}
}

// ElasticOutIn returns [Elastic] flipped.
func ElasticOutIn(base, exponent, intensity, scale float64) Func {
	return Flip(Elastic(base, exponent, intensity, scale))
}
