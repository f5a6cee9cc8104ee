package ease

import (
	"iter"
	"sync"
)

// Registry maps tags to curves, remembering the order in which tags were
// first registered.
//
// A Registry is not safe for concurrent modification. The intended use is to
// populate it from a single goroutine, typically during start-up, and to only
// look up curves afterwards. Any number of goroutines may call [Registry.Lookup],
// [Registry.Tags] and [Registry.Curves] concurrently as long as nobody
// registers curves at the same time.
type Registry struct {
	tags   []string
	curves map[string]Curve
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{curves: make(map[string]Curve)}
}

// Register adds curves to the registry. A curve whose tag is already
// registered replaces the previous curve, which keeps its position in the
// tag order. The replaced Curve value itself stays usable by anyone holding
// it; it just can no longer be looked up.
func (r *Registry) Register(curves ...Curve) {
	if r.curves == nil {
		r.curves = make(map[string]Curve)
	}
	for _, c := range curves {
		if _, ok := r.curves[c.tag]; ok {
			tracer().Debugf("registry replaces curve %q", c.tag)
		} else {
			r.tags = append(r.tags, c.tag)
		}
		r.curves[c.tag] = c
	}
}

// Define creates a curve with [New] and registers it.
func (r *Registry) Define(tag string, fn Func) Curve {
	c := New(tag, fn)
	r.Register(c)
	return c
}

// Lookup returns the curve registered under tag. The boolean is false if
// there is no such curve; this is not an error.
func (r *Registry) Lookup(tag string) (Curve, bool) {
	c, ok := r.curves[tag]
	return c, ok
}

// Tags returns the registered tags in insertion order.
//
// The sequence is a live view. Iterating it after more curves have been
// registered yields their tags, too.
func (r *Registry) Tags() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(r.tags); i++ {
			if !yield(r.tags[i]) {
				return
			}
		}
	}
}

// Curves returns a copy of all registered curves, in tag order. Modifying
// the returned slice does not affect the registry.
func (r *Registry) Curves() []Curve {
	out := make([]Curve, len(r.tags))
	for i, tag := range r.tags {
		out[i] = r.curves[tag]
	}
	return out
}

// Len returns the number of registered curves.
func (r *Registry) Len() int {
	return len(r.tags)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry. It is populated with the tween
// equations (see [RegisterEquations]) the first time Default is called.
//
// Programs that want different curves, or that want to avoid shared state,
// should create their own registry with [NewRegistry] and pass it around.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterEquations(defaultRegistry)
	})
	return defaultRegistry
}

// Lookup looks up tag in the [Default] registry.
func Lookup(tag string) (Curve, bool) {
	return Default().Lookup(tag)
}

// ParseEasing takes an easing name such as "Quad.INOUT" and returns the
// corresponding curve from the [Default] registry. It exists for tools
// written against the naming scheme of the Universal Tween Engine and is
// equivalent to [Lookup].
func ParseEasing(name string) (Curve, bool) {
	return Lookup(name)
}
