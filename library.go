package ease

// variants holds the four variants of a curve family.
type variants struct {
	inOut, in, out, outIn Func
}

// curves returns the variants tagged name.INOUT, name.IN, name.OUT and
// name.OUTIN, in that order.
func (v variants) curves(name string) []Curve {
	return []Curve{
		New(name+".INOUT", v.inOut),
		New(name+".IN", v.in),
		New(name+".OUT", v.out),
		New(name+".OUTIN", v.outIn),
	}
}

func powVariants(p float64) variants {
	return variants{Pow(p), PowIn(p), PowOut(p), PowOutIn(p)}
}

func swingVariants(scale float64) variants {
	inOut := Swing(scale)
	return variants{inOut, SwingIn(scale), SwingOut(scale), Flip(inOut)}
}

func bounceVariants(pairs ...float64) variants {
	inOut := Bounce(pairs...)
	return variants{inOut, BounceIn(pairs...), BounceOut(pairs...), Flip(inOut)}
}

// common holds the functions shared by the tween equations and the
// interpolations.
type common struct {
	pow2, pow3, pow4, pow5 variants
	exp10                  variants
	sine, circle           variants
	swing                  variants
}

type section []Curve

func (s *section) add(curves ...Curve) { *s = append(*s, curves...) }

func (s *section) def(tag string, fn Func) { s.add(New(tag, fn)) }

// head builds the curves both libraries start with: the smoothsteps, the
// powers and the exponentials.
func head(s *section) common {
	var c common
	smoothOutIn := Flip(Smooth)
	smooth2OutIn := Flip(Smooth2)
	smootherOutIn := Flip(Smoother)
	s.def("Linear.INOUT", Linear)
	s.def("Smooth.INOUT", Smooth)
	s.def("Smooth.OUTIN", smoothOutIn)
	s.def("Smooth2.INOUT", Smooth2)
	s.def("Smooth2.OUTIN", smooth2OutIn)
	s.def("Smoother.INOUT", Smoother)
	s.def("Smoother.OUTIN", smootherOutIn)
	s.def("Fade.INOUT", Smoother)
	s.def("Fade.OUTIN", smootherOutIn)

	c.pow2 = powVariants(2)
	c.pow3 = powVariants(3)
	c.pow4 = powVariants(4)
	c.pow5 = powVariants(5)
	pow0_75 := powVariants(0.75)
	pow0_5 := variants{SqrtInOut, SqrtIn, SqrtOut, PowOutIn(0.5)}
	pow0_25 := powVariants(0.25)

	s.def("Pow2.INOUT", c.pow2.inOut)
	s.def("Pow3.INOUT", c.pow3.inOut)
	s.def("Pow4.INOUT", c.pow4.inOut)
	s.def("Pow5.INOUT", c.pow5.inOut)
	s.def("Pow0_75.INOUT", pow0_75.inOut)
	s.def("Pow0_5.INOUT", pow0_5.inOut)
	s.def("Pow0_25.INOUT", pow0_25.inOut)

	s.def("Pow2.IN", c.pow2.in)
	s.def("SlowFast.IN", c.pow2.in)
	s.def("Pow3.IN", c.pow3.in)
	s.def("Pow4.IN", c.pow4.in)
	s.def("Pow5.IN", c.pow5.in)
	s.def("Pow0_75.IN", pow0_75.in)
	s.def("Pow0_5.IN", pow0_5.in)
	s.def("Pow0_25.IN", pow0_25.in)
	s.def("Sqrt.IN", SqrtIn)
	s.def("Cbrt.IN", CbrtIn)

	s.def("Pow2.OUT", c.pow2.out)
	s.def("FastSlow.OUT", c.pow2.out)
	s.def("Pow3.OUT", c.pow3.out)
	s.def("Pow4.OUT", c.pow4.out)
	s.def("Pow5.OUT", c.pow5.out)
	s.def("Pow0_75.OUT", pow0_75.out)
	s.def("Pow0_5.OUT", pow0_5.out)
	s.def("Pow0_25.OUT", pow0_25.out)
	s.def("Sqrt.OUT", SqrtOut)
	s.def("Cbrt.OUT", CbrtOut)

	s.def("Pow2.OUTIN", c.pow2.outIn)
	s.def("FastSlowFast.OUTIN", c.pow2.outIn)
	s.def("Pow3.OUTIN", c.pow3.outIn)
	s.def("Pow4.OUTIN", c.pow4.outIn)
	s.def("Pow5.OUTIN", c.pow5.outIn)
	s.def("Pow0_75.OUTIN", pow0_75.outIn)
	s.def("Pow0_5.OUTIN", pow0_5.outIn)
	s.def("Pow0_25.OUTIN", pow0_25.outIn)

	exp5 := variants{Exp(2, 5), ExpIn(2, 5), ExpOut(2, 5), nil}
	exp5.outIn = Flip(exp5.inOut)
	c.exp10 = variants{Exp(2, 10), ExpIn(2, 10), ExpOut(2, 10), nil}
	c.exp10.outIn = Flip(c.exp10.inOut)
	s.def("Exp5.INOUT", exp5.inOut)
	s.def("Exp10.INOUT", c.exp10.inOut)
	s.def("Exp5.IN", exp5.in)
	s.def("Exp10.IN", c.exp10.in)
	s.def("Exp5.OUT", exp5.out)
	s.def("Exp10.OUT", c.exp10.out)
	s.def("Exp5.OUTIN", exp5.outIn)
	s.def("Exp10.OUTIN", c.exp10.outIn)
	return c
}

// shapes builds the curves that follow the library-specific Kumaraswamy and
// bias-gain sections: sine, circle, bounce and swing.
func shapes(s *section, c *common) {
	c.sine = variants{SineInOut, SineIn, SineOut, Flip(SineInOut)}
	c.circle = variants{CircleInOut, CircleIn, CircleOut, Flip(CircleInOut)}
	s.add(c.sine.curves("Sine")...)
	s.add(c.circle.curves("Circle")...)

	bounces := []struct {
		name string
		v    variants
	}{
		{"Bounce2", bounceVariants(1.2, 1, 0.4, 0.33)},
		{"Bounce3", bounceVariants(0.8, 1, 0.4, 0.33, 0.2, 0.1)},
		{"Bounce4", bounceVariants(0.65, 1, 0.325, 0.26, 0.2, 0.11, 0.15, 0.03)},
		{"Bounce", bounceVariants(0.68, 1, 0.34, 0.26, 0.2, 0.11, 0.15, 0.03)},
		{"Bounce5", bounceVariants(0.61, 1, 0.31, 0.45, 0.21, 0.3, 0.11, 0.15, 0.06, 0.06)},
	}
	for _, b := range bounces {
		s.def(b.name+".INOUT", b.v.inOut)
	}
	for _, b := range bounces {
		s.def(b.name+".OUT", b.v.out)
	}
	for _, b := range bounces {
		s.def(b.name+".IN", b.v.in)
	}
	for _, b := range bounces {
		s.def(b.name+".OUTIN", b.v.outIn)
	}

	swing2 := swingVariants(2)
	// Swing.OUT and Swing.IN use a scale of 2, unlike Swing.INOUT.
	c.swing = variants{Swing(1.5), swing2.in, swing2.out, nil}
	c.swing.outIn = Flip(c.swing.inOut)
	swings := []struct {
		name string
		v    variants
	}{
		{"Swing2", swing2},
		{"Swing", c.swing},
		{"Swing3", swingVariants(3)},
		{"Swing0_75", swingVariants(0.75)},
		{"Swing0_5", swingVariants(0.5)},
	}
	for _, sw := range swings {
		s.def(sw.name+".INOUT", sw.v.inOut)
	}
	for _, sw := range swings {
		s.def(sw.name+".OUT", sw.v.out)
	}
	for _, sw := range swings {
		s.def(sw.name+".IN", sw.v.in)
	}
	for _, sw := range swings {
		s.def(sw.name+".OUTIN", sw.v.outIn)
	}
}

// aliases registers the names Robert Penner's easing equations use.
func aliases(s *section, c *common) {
	s.add(c.pow2.curves("Quad")...)
	s.add(c.pow3.curves("Cubic")...)
	s.add(c.pow4.curves("Quart")...)
	s.add(c.pow5.curves("Quint")...)
	s.add(c.exp10.curves("Expo")...)
	s.add(c.circle.curves("Circ")...)
}

// RegisterEquations registers the tween equations with r. These follow the
// naming of the Universal Tween Engine: "Elastic" is its elastic equation,
// the damped sine of libGDX is called "Spring", and "Back" is a swing with
// Penner's constants.
//
// Every curve that has IN and OUT variants also has INOUT and OUTIN
// variants. Curves are registered in a fixed order, starting with
// Linear.INOUT and ending with Back.OUTIN.
func RegisterEquations(r *Registry) {
	var s section
	c := head(&s)

	s.def("KumaraswamyA.INOUT", Kumaraswamy(0.75, 0.75))
	s.def("KumaraswamyB.INOUT", Kumaraswamy(0.5, 0.5))
	s.def("KumaraswamyC.INOUT", Kumaraswamy(0.25, 0.25))
	s.def("KumaraswamyA.OUTIN", Kumaraswamy(2, 2))
	s.def("KumaraswamyB.OUTIN", Kumaraswamy(4, 4))
	s.def("KumaraswamyC.OUTIN", Kumaraswamy(6, 6))
	s.def("KumaraswamyD.IN", Kumaraswamy(1, 5))
	s.def("KumaraswamyD.OUT", Kumaraswamy(5, 1))

	s.def("BiasGainA.OUTIN", BiasGain(0.75, 0.5))
	s.def("BiasGainB.OUTIN", BiasGain(0.5, 0.5))
	s.def("BiasGainC.OUTIN", BiasGain(0.25, 0.5))
	s.def("BiasGainA.INOUT", BiasGain(2, 0.5))
	s.def("BiasGainB.INOUT", BiasGain(3, 0.5))
	s.def("BiasGainC.INOUT", BiasGain(4, 0.5))
	s.def("BiasGainD.IN", BiasGain(3, 0.9))
	s.def("BiasGainD.OUT", BiasGain(3, 0.1))

	shapes(&s, &c)

	s.def("Spring.INOUT", Spring(2, 10, 7, 1))
	s.def("Spring.OUT", SpringOut(2, 10, 7, 1))
	s.def("Spring.IN", SpringIn(2, 10, 6, 1))
	s.def("Spring.OUTIN", SpringOutIn(2, 10, 7, 1))

	elastic := Elastic(2, 10, 0.45, 1)
	s.def("Elastic.INOUT", elastic)
	s.def("Elastic.OUT", ElasticOut(2, 10, 0.3, 1))
	s.def("Elastic.IN", ElasticIn(2, 10, 0.3, 1))
	s.def("Elastic.OUTIN", Flip(elastic))

	aliases(&s, &c)

	back := Swing(1.2974547)
	s.def("Back.INOUT", back)
	s.def("Back.OUT", SwingOut(1.70158))
	s.def("Back.IN", SwingIn(1.70158))
	s.def("Back.OUTIN", Flip(back))

	r.Register(s...)
	tracer().Debugf("registered %d tween equations", len(s))
}

// RegisterInterpolations registers the interpolations with r. These follow
// the naming of libGDX: "Elastic" is the damped sine that [RegisterEquations]
// calls "Spring", there are no bias-gain curves, and "Back" is an alias for
// "Swing".
//
// Curves are registered in a fixed order, starting with Linear.INOUT and
// ending with Back.OUTIN.
func RegisterInterpolations(r *Registry) {
	var s section
	c := head(&s)

	s.def("KumaraswamyExtremeA.INOUT", Kumaraswamy(0.75, 0.75))
	s.def("KumaraswamyExtremeB.INOUT", Kumaraswamy(0.5, 0.5))
	s.def("KumaraswamyExtremeC.INOUT", Kumaraswamy(0.25, 0.25))
	s.def("KumaraswamyCentralA.INOUT", Kumaraswamy(2, 2))
	s.def("KumaraswamyCentralB.INOUT", Kumaraswamy(4, 4))
	s.def("KumaraswamyCentralC.INOUT", Kumaraswamy(6, 6))
	s.def("KumaraswamyMostlyLow.INOUT", Kumaraswamy(1, 5))
	s.def("KumaraswamyMostlyHigh.INOUT", Kumaraswamy(5, 1))

	shapes(&s, &c)

	s.def("Elastic.INOUT", Spring(2, 10, 7, 1))
	s.def("Elastic.OUT", SpringOut(2, 10, 7, 1))
	s.def("Elastic.IN", SpringIn(2, 10, 6, 1))
	s.def("Elastic.OUTIN", SpringOutIn(2, 10, 7, 1))

	aliases(&s, &c)
	s.add(c.swing.curves("Back")...)

	r.Register(s...)
	tracer().Debugf("registered %d interpolations", len(s))
}
