package plot

import (
	"fmt"
	"html"
	"io"
	"iter"
	"net/url"

	"honnef.co/go/ease"
)

// Options specifies optional settings for [WriteSVG].
type Options struct {
	// The layout of the graph. The zero value selects [DefaultLayout].
	Layout Layout
	// The accuracy with which the curve is fitted, in unit space. A value
	// of 0 selects [DefaultAccuracy]. A negative value draws the curve as a
	// polyline of Layout.Samples segments instead.
	Accuracy float64
	// The maximum precision of coordinates. A value of 0 selects 3.
	MaxPrecision int
}

func (opts Options) withDefaults() Options {
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout
	}
	if opts.Accuracy == 0 {
		opts.Accuracy = DefaultAccuracy
	}
	if opts.MaxPrecision == 0 {
		opts.MaxPrecision = 3
	}
	return opts
}

var guideStyles = map[GuideKind]string{
	GridLine: `stroke="cyan" stroke-width="1"`,
	Axis:     `stroke="navy" stroke-width="1"`,
	UnitLine: `stroke="lightgray" stroke-width="1"`,
}

// WriteSVG writes a standalone SVG document showing the graph of c, titled
// with its tag.
func WriteSVG(w io.Writer, c ease.Curve, opts Options) error {
	opts = opts.withDefaults()
	l := opts.Layout
	popts := PathOptions{MaxPrecision: opts.MaxPrecision}

	var curve Path
	if opts.Accuracy < 0 {
		curve = l.Polyline(c)
	} else {
		curve = Fit(c, opts.Accuracy).Map(l.Map)
	}

	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	num := func(v float64) string { return formatCoord(v, popts) }

	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		num(l.Width), num(l.Height))
	// The stroke goes from purple at alpha 0 to red at alpha 1.
	printf(`<defs><linearGradient id="hue" gradientUnits="userSpaceOnUse" x1="%s" y1="0" x2="%s" y2="0">`,
		num(l.OriginX), num(l.OriginX+l.Scale))
	printf(`<stop offset="0" stop-color="hsl(270,100%%,50%%)"/>`)
	printf(`<stop offset="0.5" stop-color="hsl(315,100%%,50%%)"/>`)
	printf(`<stop offset="1" stop-color="hsl(360,100%%,50%%)"/>`)
	printf("</linearGradient></defs>\n")
	printf(`<rect width="%s" height="%s" fill="white"/>`+"\n", num(l.Width), num(l.Height))

	for _, kind := range []GuideKind{GridLine, Axis, UnitLine} {
		var p Path
		for _, g := range l.Guides() {
			if g.Kind == kind {
				p.MoveTo(g.From)
				p.LineTo(g.To)
			}
		}
		printf(`<path d="%s" fill="none" %s/>`+"\n", PathData(p.Elements(), popts), guideStyles[kind])
	}

	if len(curve) > 0 {
		printf(`<path d="%s" fill="none" stroke="url(#hue)" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			PathData(curve.Elements(), popts))
	}

	for _, lb := range l.Labels() {
		printf(`<text x="%s" y="%s" fill="#444444" font-family="monospace" font-size="11" xml:space="preserve">%s</text>`+"\n",
			num(lb.At.X), num(lb.At.Y), html.EscapeString(lb.Text))
	}
	title := l.Title()
	printf(`<text x="%s" y="%s" fill="black" font-family="monospace" font-size="14" text-anchor="middle">%s</text>`+"\n",
		num(title.X), num(title.Y), html.EscapeString(c.Tag()))
	printf("</svg>\n")
	return err
}

// WriteIndex writes an HTML table showing three graphs per row. The graph
// of each tag is expected in a file named after the tag, with extension ext,
// next to the HTML file.
func WriteIndex(w io.Writer, tags iter.Seq[string], ext string) error {
	var err error
	writeln := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s+"\n")
	}
	writeln("<table>")
	writeln("<tr><th>Graph A</th><th>Name A</th><th>Graph B</th><th>Name B</th><th>Graph C</th><th>Name C</th></tr>")
	i := 0
	for tag := range tags {
		if i%3 == 0 {
			writeln("<tr>")
		}
		name := html.EscapeString(tag)
		writeln(fmt.Sprintf(`<td><img src="%s" alt="%s" /></td><td>%s</td>`,
			html.EscapeString(url.PathEscape(tag+ext)), name, name))
		if i%3 == 2 {
			writeln("</tr>")
		}
		i++
	}
	if i%3 != 0 {
		writeln("</tr>")
	}
	writeln("</table>")
	return err
}
