package plot

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (cb CubicBez) isFinite() bool {
	return cb.P0.IsFinite() && cb.P1.IsFinite() && cb.P2.IsFinite() && cb.P3.IsFinite()
}

// hermite returns the cubic through p0 and p3 with slopes m0 and m3 at the
// ends. The control points are evenly spaced in x, which makes x a linear
// function of the curve parameter.
func hermite(p0, p3 Point, m0, m3 float64) CubicBez {
	h := (p3.X - p0.X) / 3
	return CubicBez{
		P0: p0,
		P1: Pt(p0.X+h, p0.Y+m0*h),
		P2: Pt(p3.X-h, p3.Y-m3*h),
		P3: p3,
	}
}
