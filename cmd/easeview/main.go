// Command easeview shows easing curves in a window, with a marker running
// along the current curve.
//
// LEFT and RIGHT select the previous and next curve, UP and DOWN switch
// between the libraries, ESC quits. The last curve shown is remembered
// between runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/quasilyte/gdata/v2"
	"honnef.co/go/ease"
	"honnef.co/go/ease/define"
)

// tracer traces with key 'ease'
func tracer() tracing.Trace {
	return tracing.Select("ease")
}

func main() {
	defs := flag.String("defs", "", "YAML or JSON file with additional curve definitions")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.ease":        *tlevel,
		"trace.ease.define": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	libs, err := libraries(*defs)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	st, err := openStore()
	if err != nil {
		// Not fatal: we just won't remember the position.
		tracer().Errorf("cannot open settings: %v", err)
	}

	v := newViewer(libs, st)
	ebiten.SetWindowSize(int(v.layout.Width)*2, int(v.layout.Height)*2)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
}

func libraries(defs string) ([]library, error) {
	eq := ease.NewRegistry()
	ease.RegisterEquations(eq)
	ip := ease.NewRegistry()
	ease.RegisterInterpolations(ip)
	libs := []library{
		{"equations", eq.Curves()},
		{"interpolations", ip.Curves()},
	}
	if defs == "" {
		return libs, nil
	}
	ds, err := define.LoadFile(defs)
	if err != nil {
		return nil, err
	}
	own := ease.NewRegistry()
	if err := define.Register(own, ds); err != nil {
		return nil, err
	}
	if own.Len() > 0 {
		libs = append(libs, library{"defined", own.Curves()})
	}
	return libs, nil
}

const (
	positionObject = "position"
	positionProp   = "last"
)

// store remembers the last curve shown. A nil store remembers nothing.
type store struct {
	m *gdata.Manager
}

func openStore() (*store, error) {
	m, err := gdata.Open(gdata.Config{AppName: "easeview"})
	if err != nil {
		return nil, err
	}
	return &store{m: m}, nil
}

// last returns the library and tag saved by save.
func (s *store) last() (lib, tag string, ok bool) {
	if s == nil || !s.m.ObjectPropExists(positionObject, positionProp) {
		return "", "", false
	}
	data, err := s.m.LoadObjectProp(positionObject, positionProp)
	if err != nil {
		tracer().Errorf("cannot load position: %v", err)
		return "", "", false
	}
	return strings.Cut(string(data), "\n")
}

func (s *store) save(lib, tag string) error {
	if s == nil {
		return nil
	}
	return s.m.SaveObjectProp(positionObject, positionProp, []byte(lib+"\n"+tag))
}
