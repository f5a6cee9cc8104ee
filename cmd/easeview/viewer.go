package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/ease"
	"honnef.co/go/ease/plot"
)

// period is the number of ticks the marker takes to traverse a curve.
const period = 120

var (
	// The debug font is white, so the graph is drawn on a dark background.
	background = color.RGBA{0x20, 0x20, 0x28, 0xff}
	gridColor  = color.RGBA{0x00, 0x60, 0x60, 0xff}
	axisColor  = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	unitColor  = color.RGBA{0x70, 0x70, 0x70, 0xff}
	curveColor = color.RGBA{0xc0, 0x60, 0xff, 0xff}
	markColor  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

type library struct {
	name   string
	curves []ease.Curve
}

// viewer shows one curve at a time. LEFT and RIGHT step through the curves
// of a library, UP and DOWN switch libraries.
type viewer struct {
	layout plot.Layout
	libs   []library
	lib    int
	cur    int
	tick   int
	path   plot.Path
	store  *store
}

func newViewer(libs []library, st *store) *viewer {
	v := &viewer{layout: plot.DefaultLayout, libs: libs, store: st}
	if lib, tag, ok := st.last(); ok {
		v.find(lib, tag)
	}
	v.refresh()
	return v
}

func (v *viewer) find(lib, tag string) {
	for i, l := range v.libs {
		if l.name != lib {
			continue
		}
		for j, c := range l.curves {
			if c.Tag() == tag {
				v.lib, v.cur = i, j
				return
			}
		}
	}
}

func (v *viewer) curve() ease.Curve {
	return v.libs[v.lib].curves[v.cur]
}

func (v *viewer) refresh() {
	v.tick = 0
	v.path = v.layout.Polyline(v.curve())
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", v.curve().Tag(), v.libs[v.lib].name))
	tracer().Debugf("showing %s", v.curve().Tag())
}

func (v *viewer) step(dlib, dcur int) {
	if dlib != 0 {
		v.lib = (v.lib + dlib + len(v.libs)) % len(v.libs)
		v.cur = min(v.cur, len(v.libs[v.lib].curves)-1)
	}
	n := len(v.libs[v.lib].curves)
	v.cur = (v.cur + dcur + n) % n
	v.refresh()
	if err := v.store.save(v.libs[v.lib].name, v.curve().Tag()); err != nil {
		tracer().Errorf("cannot save position: %v", err)
	}
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.step(0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.step(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.step(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.step(-1, 0)
	}
	v.tick = (v.tick + 1) % (period + period/4)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, g := range v.layout.Guides() {
		clr := gridColor
		switch g.Kind {
		case plot.Axis:
			clr = axisColor
		case plot.UnitLine:
			clr = unitColor
		}
		line(screen, g.From, g.To, 1, clr)
	}

	var at plot.Point
	for el := range v.path.Elements() {
		if el.Kind != plot.MoveToKind {
			line(screen, at, el.End(), 3, curveColor)
		}
		at = el.End()
	}

	// The marker moves at constant speed along x and pauses at the end.
	alpha := min(float64(v.tick)/period, 1)
	x := float32(v.layout.OriginX + alpha*v.layout.Scale)
	y := float32(v.layout.Height - v.layout.Value(v.curve(), alpha))
	vector.DrawFilledCircle(screen, x, y, 5, markColor, true)

	for _, l := range v.layout.Labels() {
		text(screen, l.At, l.Text)
	}
	title := v.curve().Tag()
	t := v.layout.Title()
	text(screen, plot.Pt(t.X-float64(len(title))*3, t.Y), title)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.layout.Width), int(v.layout.Height)
}

func line(dst *ebiten.Image, from, to plot.Point, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), width, clr, true)
}

// text draws s with its baseline at pt. The debug font is 16 pixels high.
func text(dst *ebiten.Image, pt plot.Point, s string) {
	ebitenutil.DebugPrintAt(dst, s, int(pt.X), int(pt.Y)-12)
}
