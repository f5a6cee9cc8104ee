package ease

// Curve is a named easing function. Its tag, conventionally of the form
// "Family.SUFFIX" with SUFFIX being one of IN, OUT, INOUT and OUTIN, is its
// identity: two curves with the same tag are equal, no matter which
// functions they wrap.
//
// Unlike a bare [Func], a Curve clamps its input to [0, 1] before evaluating
// the function, so the function never sees out-of-domain values. The output
// is not clamped.
//
// Constructing a Curve has no side effects. Use [Registry.Register] to make
// it available by tag.
type Curve struct {
	tag string
	fn  Func
}

var _ Easer = Curve{}

// New returns a curve with the given tag that evaluates fn.
func New(tag string, fn Func) Curve {
	return Curve{tag: tag, fn: fn}
}

// Tag returns the curve's tag.
func (c Curve) Tag() string { return c.tag }

// Func returns the function wrapped by the curve. Calling it directly skips
// the clamping done by [Curve.Ease].
func (c Curve) Func() Func { return c.fn }

// Ease implements [Easer]. It clamps alpha to [0, 1] and evaluates the
// curve's function. The zero Curve evaluates to its clamped input.
func (c Curve) Ease(alpha float64) float64 {
	alpha = Clamp(alpha)
	if c.fn == nil {
		return alpha
	}
	return c.fn(alpha)
}

// Range maps the curve's output onto [start, end]. See [Range].
func (c Curve) Range(start, end, alpha float64) float64 {
	return Range(c, start, end, alpha)
}

// Equal reports whether c and o have the same tag.
func (c Curve) Equal(o Curve) bool {
	return c.tag == o.tag
}

func (c Curve) String() string {
	return c.tag
}
