package define

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"honnef.co/go/ease"
)

// Variant selects which variant of a family a definition builds.
type Variant string

const (
	In    Variant = "in"
	Out   Variant = "out"
	InOut Variant = "inout"
	OutIn Variant = "outin"
)

// Definition describes a curve declaratively.
type Definition struct {
	// Tag is the tag the curve is registered under.
	Tag string `yaml:"tag"`
	// Family names the generator, such as "pow" or "elastic".
	Family string `yaml:"family"`
	// Variant defaults to the tag's suffix, or to InOut if the tag has no
	// known suffix.
	Variant Variant `yaml:"variant"`
	// Params holds the generator's numeric parameters by name.
	Params map[string]float64 `yaml:"params"`
	// Pairs holds the width, height pairs of the bounce family.
	Pairs []float64 `yaml:"pairs"`
}

// normalize fills in defaults and checks the fields every definition needs.
func (d *Definition) normalize() error {
	if d.Tag == "" {
		return Error(EMISSING, "definition of a %q curve has no tag", d.Family)
	}
	if d.Family == "" {
		return Error(EMISSING, "%s: no family", d.Tag)
	}
	d.Family = strings.ToLower(d.Family)
	d.Variant = Variant(strings.ToLower(string(d.Variant)))
	if d.Variant == "" {
		d.Variant = InOut
		if i := strings.LastIndexByte(d.Tag, '.'); i >= 0 {
			switch v := Variant(strings.ToLower(d.Tag[i+1:])); v {
			case In, Out, InOut, OutIn:
				d.Variant = v
			}
		}
	}
	switch d.Variant {
	case In, Out, InOut, OutIn:
	default:
		return Error(EUNKNOWN, "%s: unknown variant %q", d.Tag, d.Variant)
	}
	return nil
}

// params hands out a definition's parameters, recording the first problem.
type params struct {
	d    *Definition
	used map[string]bool
	err  error
}

func (p *params) fail(code int, format string, args ...any) {
	if p.err == nil {
		p.err = Error(code, "%s: %s", p.d.Tag, fmt.Sprintf(format, args...))
	}
}

func (p *params) lookup(name string) (float64, bool) {
	p.used[name] = true
	v, ok := p.d.Params[name]
	if ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
		p.fail(EINVALID, "parameter %s is %v", name, v)
	}
	return v, ok
}

// get returns a required parameter.
func (p *params) get(name string) float64 {
	v, ok := p.lookup(name)
	if !ok {
		p.fail(EMISSING, "missing parameter %s", name)
	}
	return v
}

// opt returns an optional parameter.
func (p *params) opt(name string, dflt float64) float64 {
	if v, ok := p.lookup(name); ok {
		return v
	}
	return dflt
}

func (p *params) check(ok bool, format string, args ...any) {
	if !ok {
		p.fail(EINVALID, format, args...)
	}
}

// done reports parameters the family doesn't know.
func (p *params) done() error {
	if p.err != nil {
		return p.err
	}
	var unknown []string
	for name := range p.d.Params {
		if !p.used[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return Error(EUNKNOWN, "%s: unknown parameters %s for family %s",
			p.d.Tag, strings.Join(unknown, ", "), p.d.Family)
	}
	return nil
}

// pick returns the function for variant v.
func pick(v Variant, inOut, in, out, outIn ease.Func) ease.Func {
	switch v {
	case In:
		return in
	case Out:
		return out
	case OutIn:
		return outIn
	default:
		return inOut
	}
}

type builder func(p *params) ease.Func

var families = map[string]builder{
	"linear": func(p *params) ease.Func {
		return ease.Linear
	},
	"smooth":   smoothstep(ease.Smooth),
	"smooth2":  smoothstep(ease.Smooth2),
	"smoother": smoothstep(ease.Smoother),
	"sine": func(p *params) ease.Func {
		return pick(p.d.Variant, ease.SineInOut, ease.SineIn, ease.SineOut, ease.Flip(ease.SineInOut))
	},
	"circle": func(p *params) ease.Func {
		return pick(p.d.Variant, ease.CircleInOut, ease.CircleIn, ease.CircleOut, ease.Flip(ease.CircleInOut))
	},
	"pow": func(p *params) ease.Func {
		power := p.get("power")
		p.check(power >= 0, "power must not be negative")
		return pick(p.d.Variant, ease.Pow(power), ease.PowIn(power), ease.PowOut(power), ease.PowOutIn(power))
	},
	"exp": func(p *params) ease.Func {
		value := p.opt("value", 2)
		power := p.get("power")
		p.check(value > 1, "value must be greater than 1")
		p.check(power > 0, "power must be positive")
		inOut := ease.Exp(value, power)
		return pick(p.d.Variant, inOut, ease.ExpIn(value, power), ease.ExpOut(value, power), ease.Flip(inOut))
	},
	"kumaraswamy": func(p *params) ease.Func {
		a := p.get("a")
		b := p.get("b")
		p.check(a > 0 && b > 0, "a and b must be positive")
		return ease.Kumaraswamy(a, b)
	},
	"biasgain": func(p *params) ease.Func {
		shape := p.get("shape")
		turning := p.opt("turning", 0.5)
		p.check(shape >= 0, "shape must not be negative")
		p.check(turning >= 0 && turning <= 1, "turning must be between 0 and 1")
		return ease.BiasGain(shape, turning)
	},
	"swing": func(p *params) ease.Func {
		scale := p.get("scale")
		p.check(scale >= 0, "scale must not be negative")
		inOut := ease.Swing(scale)
		return pick(p.d.Variant, inOut, ease.SwingIn(scale), ease.SwingOut(scale), ease.Flip(inOut))
	},
	"bounce": func(p *params) ease.Func {
		pairs := p.d.Pairs
		switch {
		case len(pairs) == 0:
			p.fail(EMISSING, "missing pairs")
			return nil
		case len(pairs)%2 != 0:
			p.fail(EINVALID, "pairs must come in width, height pairs")
			return nil
		}
		for i, v := range pairs {
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				p.fail(EINVALID, "pair value %d is %v", i, v)
			case i%2 == 0 && v <= 0:
				p.fail(EINVALID, "width %d must be positive", i/2)
			}
		}
		if p.err != nil {
			return nil
		}
		inOut := ease.Bounce(pairs...)
		return pick(p.d.Variant, inOut, ease.BounceIn(pairs...), ease.BounceOut(pairs...), ease.Flip(inOut))
	},
	"spring": func(p *params) ease.Func {
		value := p.opt("value", 2)
		power := p.opt("power", 10)
		b := p.get("bounces")
		scale := p.opt("scale", 1)
		p.check(value > 0, "value must be positive")
		p.check(b >= 0 && b <= 1000 && b == math.Trunc(b), "bounces must be a whole number between 0 and 1000")
		if p.err != nil {
			return nil
		}
		bounces := int(b)
		return pick(p.d.Variant,
			ease.Spring(value, power, bounces, scale),
			ease.SpringIn(value, power, bounces, scale),
			ease.SpringOut(value, power, bounces, scale),
			ease.SpringOutIn(value, power, bounces, scale))
	},
	"elastic": func(p *params) ease.Func {
		base := p.opt("base", 2)
		exponent := p.opt("exponent", 10)
		intensity := p.get("intensity")
		scale := p.opt("scale", 1)
		p.check(base > 0, "base must be positive")
		p.check(intensity > 0, "intensity must be positive")
		p.check(scale >= 0, "scale must not be negative")
		return pick(p.d.Variant,
			ease.Elastic(base, exponent, intensity, scale),
			ease.ElasticIn(base, exponent, intensity, scale),
			ease.ElasticOut(base, exponent, intensity, scale),
			ease.ElasticOutIn(base, exponent, intensity, scale))
	},
}

// smoothstep builds the smoothstep families, which only have INOUT and
// OUTIN variants.
func smoothstep(fn ease.Func) builder {
	return func(p *params) ease.Func {
		switch p.d.Variant {
		case InOut:
			return fn
		case OutIn:
			return ease.Flip(fn)
		}
		p.fail(EUNKNOWN, "family %s has no %s variant", p.d.Family, p.d.Variant)
		return nil
	}
}

// Families returns the names of the known families, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build validates d and returns the function it describes.
//
// Unlike the generators in package ease, Build rejects parameters that
// aren't finite or that lie outside a generator's documented range. The
// returned error has one of the codes EMISSING, EINVALID or EUNKNOWN.
func Build(d Definition) (ease.Func, error) {
	if err := d.normalize(); err != nil {
		return nil, err
	}
	b, ok := families[d.Family]
	if !ok {
		return nil, Error(EUNKNOWN, "%s: unknown family %q", d.Tag, d.Family)
	}
	p := &params{d: &d, used: make(map[string]bool)}
	fn := b(p)
	if err := p.done(); err != nil {
		return nil, err
	}
	tracer().Debugf("built %s as %s %s", d.Tag, d.Family, d.Variant)
	return fn, nil
}

// Curve builds d and tags the result.
func Curve(d Definition) (ease.Curve, error) {
	fn, err := Build(d)
	if err != nil {
		return ease.Curve{}, err
	}
	return ease.New(d.Tag, fn), nil
}

// Register builds all definitions and registers the curves with r, in
// order. If any definition fails to build, nothing is registered.
func Register(r *ease.Registry, defs []Definition) error {
	curves := make([]ease.Curve, 0, len(defs))
	for _, d := range defs {
		c, err := Curve(d)
		if err != nil {
			return err
		}
		curves = append(curves, c)
	}
	r.Register(curves...)
	return nil
}
