// Package define builds easing curves from declarative definitions, such as
// those found in YAML or JSON files.
//
// A definition names a tag, a generator family, a variant and the family's
// parameters:
//
//	curves:
//	  - tag: ElasticMild.OUT
//	    family: elastic
//	    params: {base: 2, exponent: 10, intensity: 7, scale: 0.9}
//	  - tag: Hop.OUT
//	    family: bounce
//	    pairs: [1.2, 1, 0.4, 0.33]
//
// The families and their parameters, with defaults in parentheses, are:
//
//   - linear, smooth, smooth2, smoother, sine, circle: none
//   - pow: power
//   - exp: value (2), power
//   - kumaraswamy: a, b
//   - biasgain: shape, turning (0.5)
//   - swing: scale
//   - bounce: pairs
//   - spring: value (2), power (10), bounces, scale (1)
//   - elastic: base (2), exponent (10), intensity, scale (1)
//
// The smoothstep families only have the inout and outin variants.
// Kumaraswamy and bias-gain curves don't have variants; the variant only
// labels them.
//
// Errors returned by this package carry one of the codes EMISSING,
// EINVALID, EUNKNOWN and EFORMAT, retrievable with [Code].
package define

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ease.define'.
func tracer() tracing.Trace {
	return tracing.Select("ease.define")
}
