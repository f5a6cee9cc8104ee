package plot

import (
	"testing"

	"honnef.co/go/ease"
)

func TestLayoutMap(t *testing.T) {
	l := DefaultLayout
	diff(t, Pt(60, 319), l.Map(Pt(0, 0)))
	diff(t, Pt(260, 119), l.Map(Pt(1, 1)))
	diff(t, Pt(160, 219), l.Map(Pt(0.5, 0.5)))
	if got := l.Value(ease.Linear, 0.5); got != 201 {
		t.Errorf("Value(Linear, 0.5) = %v, want 201", got)
	}
	if got := l.Value(ease.Linear, 1); got != 301 {
		t.Errorf("Value(Linear, 1) = %v, want 301", got)
	}
}

func TestLayoutGuides(t *testing.T) {
	guides := DefaultLayout.Guides()
	counts := map[GuideKind]int{}
	for _, g := range guides {
		counts[g.Kind]++
	}
	diff(t, map[GuideKind]int{GridLine: 11 + 8, Axis: 2, UnitLine: 2}, counts)

	n := len(guides)
	diff(t, []Guide{
		{Axis, Pt(0, 320), Pt(300, 320)},
		{Axis, Pt(60, 0), Pt(60, 420)},
		{UnitLine, Pt(0, 120), Pt(300, 120)},
		{UnitLine, Pt(260, 0), Pt(260, 420)},
	}, guides[n-4:])
}

func TestLayoutLabels(t *testing.T) {
	labels := DefaultLayout.Labels()
	if len(labels) != 16 {
		t.Fatalf("got %d labels, want 16", len(labels))
	}
	diff(t, Label{Pt(32, 393), "-0.4"}, labels[0])
	diff(t, Label{Pt(32, 313), " 0.0"}, labels[2])
	diff(t, Label{Pt(32, 33), " 1.4"}, labels[9])
	diff(t, Label{Pt(46, 338), " 0.0"}, labels[10])
	diff(t, Label{Pt(246, 338), " 1.0"}, labels[15])
}

func TestLayoutPolyline(t *testing.T) {
	p := DefaultLayout.Polyline(ease.Linear)
	if len(p) != 201 {
		t.Fatalf("got %d elements, want 201", len(p))
	}
	diff(t, MoveTo(Pt(60, 319)), p[0])
	diff(t, LineTo(Pt(260, 119)), p[200])
}
