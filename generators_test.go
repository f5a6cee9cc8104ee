package ease

import (
	"math"
	"testing"

	penner "github.com/fogleman/ease"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var bouncePresets = map[string][]float64{
	"Bounce2": {1.2, 1, 0.4, 0.33},
	"Bounce3": {0.8, 1, 0.4, 0.33, 0.2, 0.1},
	"Bounce4": {0.65, 1, 0.325, 0.26, 0.2, 0.11, 0.15, 0.03},
	"Bounce":  {0.68, 1, 0.34, 0.26, 0.2, 0.11, 0.15, 0.03},
	"Bounce5": {0.61, 1, 0.31, 0.45, 0.21, 0.3, 0.11, 0.15, 0.06, 0.06},
}

func TestPowInOut(t *testing.T) {
	f := Pow(2)
	diff(t, []float64{0, 1, 0.125, 0.875}, []float64{f(0), f(1), f(0.25), f(0.75)})

	c, ok := Lookup("Pow2.INOUT")
	if !ok {
		t.Fatal("Pow2.INOUT isn't registered")
	}
	diff(t, []float64{0, 1, 0.125, 0.875}, []float64{c.Ease(0), c.Ease(1), c.Ease(0.25), c.Ease(0.75)})
}

func TestPowVariants(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-15)
	diff(t, 0.125, PowIn(3)(0.5), approx)
	diff(t, 0.875, PowOut(3)(0.5), approx)
	diff(t, []float64{0, 0.5, 1}, []float64{PowOutIn(3)(0), PowOutIn(3)(0.5), PowOutIn(3)(1)}, approx)
	for _, a := range alphas(50) {
		diff(t, Pow(0.5)(a), SqrtInOut(a), approx)
		diff(t, PowIn(0.5)(a), SqrtIn(a), approx)
		diff(t, PowOut(0.5)(a), SqrtOut(a), approx)
		diff(t, math.Cbrt(a), CbrtIn(a), approx)
	}
}

func TestExpEnds(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-14)
	for _, p := range []float64{5, 10} {
		for _, f := range []Func{Exp(2, p), ExpIn(2, p), ExpOut(2, p), Flip(Exp(2, p))} {
			diff(t, []float64{0, 1}, []float64{f(0), f(1)}, approx)
		}
		diff(t, 0.5, Exp(2, p)(0.5), approx)
	}
}

func TestSmoothBounds(t *testing.T) {
	fns := map[string]Func{"Smooth": Smooth, "Smooth2": Smooth2, "Smoother": Smoother}
	inputs := append(alphas(10000), 0.99999994, math.Nextafter(1, 0), 1e-300)
	for name, f := range fns {
		for _, a := range inputs {
			if v := f(a); v < 0 || v > 1 {
				t.Errorf("%s(%v) = %v, outside [0, 1]", name, a, v)
			}
		}
		if v := f(0.5); math.Abs(v-0.5) > 1e-6 {
			t.Errorf("%s(0.5) = %v", name, v)
		}
	}
	if v := Smoother(0.99999994); v > 1 {
		t.Errorf("Smoother(0.99999994) = %v", v)
	}
}

func TestTrigonometric(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-15)
	for _, f := range []Func{SineInOut, SineIn, SineOut, CircleInOut, CircleIn, CircleOut} {
		diff(t, []float64{0, 1}, []float64{f(0), f(1)}, approx)
		for _, a := range alphas(100) {
			if v := f(a); v < 0 || v > 1+1e-15 {
				t.Errorf("value %v at %v outside [0, 1]", v, a)
			}
		}
	}
	diff(t, 0.5, SineOut(1.0/3), approx)
	diff(t, 0.5, CircleInOut(0.5), approx)
}

func TestKumaraswamy(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, a := range alphas(100) {
		diff(t, a, Kumaraswamy(1, 1)(a), approx)
	}
	// The quantile of the Kumaraswamy distribution is (1 - (1-x)^(1/b))^(1/a).
	diff(t, math.Sqrt(1-math.Sqrt(0.75)), Kumaraswamy(2, 2)(0.25), approx)

	params := [][2]float64{{0.25, 0.25}, {0.5, 0.5}, {0.75, 0.75}, {2, 2}, {4, 4}, {6, 6}, {1, 5}, {5, 1}}
	for _, p := range params {
		f := Kumaraswamy(p[0], p[1])
		if f(0) != 0 || f(1) != 1 {
			t.Errorf("Kumaraswamy(%v, %v) ends at %v and %v", p[0], p[1], f(0), f(1))
		}
		prev := 0.0
		for _, a := range alphas(200) {
			v := f(a)
			if v < prev {
				t.Errorf("Kumaraswamy(%v, %v) decreases at %v", p[0], p[1], a)
			}
			prev = v
		}
	}
}

func TestBiasGainIdentity(t *testing.T) {
	f := BiasGain(1, 0.5)
	for _, a := range alphas(1000) {
		if d := math.Abs(f(a) - a); d > 1e-12 {
			t.Errorf("BiasGain(1, 0.5)(%v) = %v", a, f(a))
		}
	}
}

func TestBiasGainRange(t *testing.T) {
	for _, shape := range []float64{0, 0.25, 0.5, 0.75, 1, 2, 3, 4, 10} {
		for _, turning := range []float64{0, 0.1, 0.5, 0.9, 1} {
			f := BiasGain(shape, turning)
			if v := f(0); v != 0 {
				t.Errorf("BiasGain(%v, %v)(0) = %v", shape, turning, v)
			}
			if v := f(1); math.Abs(v-1) > 1e-15 {
				t.Errorf("BiasGain(%v, %v)(1) = %v", shape, turning, v)
			}
			for _, a := range alphas(100) {
				if v := f(a); v < -1e-15 || v > 1+1e-15 || math.IsNaN(v) {
					t.Errorf("BiasGain(%v, %v)(%v) = %v", shape, turning, a, v)
				}
			}
			if v := f(turning); math.Abs(v-turning) > 1e-12 {
				t.Errorf("BiasGain(%v, %v) at the turning point = %v", shape, turning, v)
			}
		}
	}
}

func TestBounceEnds(t *testing.T) {
	for name, pairs := range bouncePresets {
		out := BounceOut(pairs...)
		if v := out(1); v != 1 {
			t.Errorf("%s.OUT(1) = %v, want exactly 1", name, v)
		}
		prev := out(0.98)
		for i := 1; i <= 200; i++ {
			a := 0.98 + 0.02*float64(i)/200
			v := out(a)
			if v < prev {
				t.Errorf("%s.OUT decreases at %v: %v < %v", name, a, v, prev)
			}
			prev = v
		}
		if v := BounceIn(pairs...)(0); v != 0 {
			t.Errorf("%s.IN(0) = %v, want exactly 0", name, v)
		}
		inOut := Bounce(pairs...)
		diff(t, []float64{0, 0.5, 1}, []float64{inOut(0), inOut(0.5), inOut(1)})
	}
}

func TestBounceCopiesPairs(t *testing.T) {
	pairs := []float64{0.68, 1, 0.34, 0.26}
	f := BounceOut(pairs...)
	want := f(0.3)
	pairs[0] = 1.5
	if got := f(0.3); got != want {
		t.Errorf("changing the pairs changed the function: %v != %v", got, want)
	}
}

func TestBouncePanicsWithoutPairs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BounceOut() didn't panic")
		}
	}()
	BounceOut()
}

func TestSwing(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, s := range []float64{0.5, 0.75, 1.5, 2, 3} {
		diff(t, []float64{0, 0.5, 1}, []float64{Swing(s)(0), Swing(s)(0.5), Swing(s)(1)}, approx)
		diff(t, []float64{0, 1}, []float64{SwingIn(s)(0), SwingIn(s)(1)}, approx)
		diff(t, []float64{0, 1}, []float64{SwingOut(s)(0), SwingOut(s)(1)}, approx)
		lo, hi := extremes(Swing(s), 1000)
		if lo >= 0 || hi <= 1 {
			t.Errorf("Swing(%v) stays within [%v, %v]", s, lo, hi)
		}
		lo, hi = extremes(Flip(Swing(s)), 1000)
		if lo < -1e-12 || hi > 1+1e-12 {
			t.Errorf("flipped Swing(%v) leaves [0, 1]: [%v, %v]", s, lo, hi)
		}
	}
}

func extremes(f Func, n int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, a := range alphas(n) {
		v := f(a)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func TestOscillationEnds(t *testing.T) {
	type params struct {
		value, power float64
		bounces      int
		scale        float64
	}
	for _, p := range []params{{2, 10, 7, 1}, {2, 10, 6, 1}, {2, 10, 3, 2}, {3, 8, 4, 0.5}, {2, 10, 7, 0.9}} {
		fns := map[string]Func{
			"Spring":    Spring(p.value, p.power, p.bounces, p.scale),
			"SpringOut": SpringOut(p.value, p.power, p.bounces, p.scale),
			"SpringIn":  SpringIn(p.value, p.power, p.bounces, p.scale),
		}
		for name, f := range fns {
			if v := f(1); v != 1 {
				t.Errorf("%s%v(1) = %v, want exactly 1", name, p, v)
			}
		}
		if v := SpringOut(p.value, p.power, p.bounces, p.scale)(0); v != 0 {
			t.Errorf("SpringOut%v(0) = %v, want 0", p, v)
		}
	}
	if v := SpringOutIn(2, 10, 7, 1)(1); math.Abs(v-1) > 1e-12 {
		t.Errorf("SpringOutIn(1) = %v", v)
	}

	for _, p := range [][4]float64{{2, 10, 0.45, 1}, {2, 10, 0.3, 1}, {2, 10, 7, 0.9}, {2, 8, 0.4, 1.5}} {
		for name, f := range map[string]Func{
			"Elastic":    Elastic(p[0], p[1], p[2], p[3]),
			"ElasticOut": ElasticOut(p[0], p[1], p[2], p[3]),
			"ElasticIn":  ElasticIn(p[0], p[1], p[2], p[3]),
		} {
			if v := f(1); v != 1 {
				t.Errorf("%s%v(1) = %v, want exactly 1", name, p, v)
			}
		}
	}
	if v := ElasticOutIn(2, 10, 0.45, 1)(1); math.Abs(v-1) > 1e-12 {
		t.Errorf("ElasticOutIn(1) = %v", v)
	}
}

func TestOscillationOvershoots(t *testing.T) {
	fns := map[string]Func{
		"Spring.INOUT":  Spring(2, 10, 7, 1),
		"Spring.OUT":    SpringOut(2, 10, 7, 1),
		"Spring.IN":     SpringIn(2, 10, 6, 1),
		"Spring.scale2": SpringOut(2, 10, 3, 2),
		"Elastic.INOUT": Elastic(2, 10, 0.45, 1),
		"Elastic.OUT":   ElasticOut(2, 10, 0.3, 1),
		"Elastic.IN":    ElasticIn(2, 10, 0.3, 1),
		"Elastic.wide":  ElasticOut(2, 8, 0.4, 1.5),
	}
	for name, f := range fns {
		lo, hi := extremes(f, 1000)
		if lo >= 0 && hi <= 1 {
			t.Errorf("%s doesn't overshoot: [%v, %v]", name, lo, hi)
		}
	}
}

func TestPenner(t *testing.T) {
	tests := []struct {
		name string
		got  Func
		want func(float64) float64
		tol  float64
	}{
		{"InQuad", PowIn(2), penner.InQuad, 1e-12},
		{"OutQuad", PowOut(2), penner.OutQuad, 1e-12},
		{"InOutQuad", Pow(2), penner.InOutQuad, 1e-12},
		{"InCubic", PowIn(3), penner.InCubic, 1e-12},
		{"OutCubic", PowOut(3), penner.OutCubic, 1e-12},
		{"InOutCubic", Pow(3), penner.InOutCubic, 1e-12},
		{"InQuart", PowIn(4), penner.InQuart, 1e-12},
		{"OutQuart", PowOut(4), penner.OutQuart, 1e-12},
		{"InSine", SineIn, penner.InSine, 1e-12},
		{"OutSine", SineOut, penner.OutSine, 1e-12},
		{"InOutSine", SineInOut, penner.InOutSine, 1e-12},
		{"InCirc", CircleIn, penner.InCirc, 1e-12},
		{"OutCirc", CircleOut, penner.OutCirc, 1e-12},
		{"InBack", SwingIn(1.70158), penner.InBack, 1e-12},
		{"OutBack", SwingOut(1.70158), penner.OutBack, 1e-12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range alphas(100) {
				if d := math.Abs(tt.got(a) - tt.want(a)); d > tt.tol {
					t.Errorf("at %v: got %v, want %v", a, tt.got(a), tt.want(a))
				}
			}
		})
	}
}

func TestGeneratorsArePure(t *testing.T) {
	pairs := [][2]Func{
		{Pow(2.5), Pow(2.5)},
		{Exp(2, 7), Exp(2, 7)},
		{Bounce(0.8, 1, 0.4, 0.33), Bounce(0.8, 1, 0.4, 0.33)},
		{Spring(2, 10, 5, 1), Spring(2, 10, 5, 1)},
		{Elastic(2, 10, 0.3, 1.2), Elastic(2, 10, 0.3, 1.2)},
		{Kumaraswamy(3, 0.5), Kumaraswamy(3, 0.5)},
		{BiasGain(2.5, 0.3), BiasGain(2.5, 0.3)},
	}
	for i, p := range pairs {
		for _, a := range alphas(40) {
			if p[0](a) != p[1](a) {
				t.Errorf("pair %d differs at %v", i, a)
			}
		}
	}
}
