package ease

import (
	"math"
	"testing"
)

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x := SolveITP(f, 1.0, 2.0, 1e-12, 0, 0.2, f(1.0), f(2.0))
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		e     Easer
		value float64
		want  float64
	}{
		{"Pow2", Pow(2), 0.125, 0.25},
		{"Pow2 upper half", Pow(2), 0.875, 0.75},
		{"SineOut", SineOut, 0.5, 1.0 / 3},
		{"Linear", Linear, 0.3, 0.3},
		{"decreasing", Func(func(a float64) float64 { return 1 - a*a }), 0.75, 0.5},
		{"curve", New("Cubic.IN", PowIn(3)), 0.125, 0.5},
		{"start", Linear, 0, 0},
		{"end", Linear, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Solve(tt.e, tt.value, 1e-12)
			if !ok {
				t.Fatal("no solution")
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSolveOutOfRange(t *testing.T) {
	for _, v := range []float64{-0.1, 1.5, math.NaN()} {
		if got, ok := Solve(Smooth, v, 1e-9); ok {
			t.Errorf("Solve(Smooth, %v) = %v, expected no solution", v, got)
		}
	}
}

func TestSolveRoundTrip(t *testing.T) {
	for _, tag := range []string{"Quad.OUT", "Smoother.INOUT", "KumaraswamyD.IN", "Exp10.INOUT", "Circle.OUT"} {
		c, ok := Lookup(tag)
		if !ok {
			t.Fatalf("%s isn't registered", tag)
		}
		for _, a := range []float64{0.1, 0.37, 0.5, 0.81} {
			got, ok := Solve(c, c.Ease(a), 1e-12)
			if !ok {
				t.Errorf("%s: no solution for %v", tag, c.Ease(a))
				continue
			}
			if d := math.Abs(c.Ease(got) - c.Ease(a)); d > 1e-9 {
				t.Errorf("%s: Solve(%v) = %v, which eases to %v", tag, c.Ease(a), got, c.Ease(got))
			}
		}
	}
}
