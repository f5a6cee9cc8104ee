// Command easeterm draws easing curves in the terminal.
//
// LEFT and RIGHT select the previous and next curve, UP and DOWN switch
// between the equations and the interpolations. ESC, q or CTRL+C quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tm "github.com/buger/goterm"
	"github.com/eiannone/keyboard"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"honnef.co/go/ease"
)

// tracer traces with key 'ease'
func tracer() tracing.Trace {
	return tracing.Select("ease")
}

type library struct {
	name   string
	curves []ease.Curve
}

func main() {
	start := flag.String("tag", "", "Curve to show first")
	flag.Parse()

	// The screen belongs to the graph; only errors are traced.
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.ease":      "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	eq := ease.NewRegistry()
	ease.RegisterEquations(eq)
	ip := ease.NewRegistry()
	ease.RegisterInterpolations(ip)
	libs := []library{
		{"equations", eq.Curves()},
		{"interpolations", ip.Curves()},
	}
	lib, cur := 0, 0
	if *start != "" {
		var ok bool
		if lib, cur, ok = find(libs, *start); !ok {
			fmt.Fprintf(os.Stderr, "unknown curve %q\n", *start)
			os.Exit(2)
		}
	}

	keys, err := keyboard.GetKeys(10)
	if err != nil {
		tracer().Errorf("cannot read keyboard: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = keyboard.Close()
	}()

	for {
		draw(libs[lib], cur)
		event := <-keys
		if event.Err != nil {
			tracer().Errorf("keyboard: %v", event.Err)
			return
		}
		switch {
		case event.Key == keyboard.KeyEsc, event.Key == keyboard.KeyCtrlC, event.Rune == 'q':
			tm.Clear()
			tm.MoveCursor(1, 1)
			tm.Flush()
			return
		case event.Key == keyboard.KeyArrowRight:
			cur = (cur + 1) % len(libs[lib].curves)
		case event.Key == keyboard.KeyArrowLeft:
			cur = (cur - 1 + len(libs[lib].curves)) % len(libs[lib].curves)
		case event.Key == keyboard.KeyArrowUp, event.Key == keyboard.KeyArrowDown:
			lib = 1 - lib
			cur = min(cur, len(libs[lib].curves)-1)
		}
	}
}

func find(libs []library, tag string) (lib, cur int, ok bool) {
	for i, l := range libs {
		for j, c := range l.curves {
			if c.Tag() == tag {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func draw(l library, cur int) {
	c := l.curves[cur]
	w := max(tm.Width()-2, 20)
	h := max(tm.Height()-4, 10)
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Printf("%s  %s (%d/%d)\n", tm.Bold(c.Tag()), l.name, cur+1, len(l.curves))
	curve := tm.Color(string(mark), tm.MAGENTA)
	for _, line := range render(c, w, h) {
		tm.Println(strings.ReplaceAll(line, string(mark), curve))
	}
	tm.Print(tm.Color("LEFT/RIGHT: curve  UP/DOWN: library  ESC: quit", tm.YELLOW))
	tm.Flush()
}
