package ease

import "math"

// Linear returns its argument.
var Linear Func = func(a float64) float64 { return a }

// Smooth is the cubic smoothstep, 3a² - 2a³. It is written as a²(1-2a+2)
// instead of the textbook a²(3-2a), which can exceed 1 for inputs just below
// 1.
var Smooth Func = func(a float64) float64 {
	return a * a * (1 - a - a + 2)
}

// Smooth2 applies [Smooth] twice, producing a steeper S-curve.
var Smooth2 Func = func(a float64) float64 {
	a *= a * (1 - a - a + 2)
	return a * a * (1 - a - a + 2)
}

// Smoother is Ken Perlin's quintic smootherstep, 6a⁵ - 15a⁴ + 10a³. The last
// coefficient is slightly less than 10 so that the result never exceeds 1.
var Smoother Func = func(a float64) float64 {
	return a * a * a * (a*(a*6-15) + 9.999998)
}

// SineInOut is sin²(a·π/2): it starts and ends slowly.
var SineInOut Func = func(a float64) float64 {
	s := math.Sin(a * math.Pi / 2)
	return s * s
}

// SineIn is 1 - cos(a·π/2).
var SineIn Func = func(a float64) float64 {
	return 1 - math.Cos(a*math.Pi/2)
}

// SineOut is sin(a·π/2).
var SineOut Func = func(a float64) float64 {
	return math.Sin(a * math.Pi / 2)
}

// CircleInOut forms two circular arcs. It starts slowly, accelerates rapidly
// towards the middle and slows down towards the end.
var CircleInOut Func = func(a float64) float64 {
	if a <= 0.5 {
		return (1 - math.Sqrt(1-a*a*4)) * 0.5
	}
	return (math.Sqrt(1-4*(a*(a-2)+1)) + 1) * 0.5
}

// CircleIn forms a single circular arc, starting slowly.
var CircleIn Func = func(a float64) float64 {
	return 1 - math.Sqrt(1-a*a)
}

// CircleOut forms a single circular arc, starting rapidly.
var CircleOut Func = func(a float64) float64 {
	return math.Sqrt(a * (2 - a))
}
