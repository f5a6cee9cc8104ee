// Command easegraph writes an SVG graph for every curve of a library, plus an
// index.html showing all of them.
//
//	easegraph -set equations -out graphs
//	easegraph -set interpolations -defs extra.yaml -out graphs
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pkg/profile"
	"github.com/pterm/pterm"
	"honnef.co/go/ease"
	"honnef.co/go/ease/define"
	"honnef.co/go/ease/plot"
)

// tracer traces with key 'ease'
func tracer() tracing.Trace {
	return tracing.Select("ease")
}

func main() {
	initDisplay()

	set := flag.String("set", "equations", "Curve library [equations|interpolations]")
	defs := flag.String("defs", "", "YAML or JSON file with additional curve definitions")
	out := flag.String("out", "graphs", "Output directory")
	list := flag.Bool("list", false, "List the tags and exit")
	accuracy := flag.Float64("accuracy", plot.DefaultAccuracy, "Fit accuracy; negative draws polylines")
	prof := flag.String("profile", "", "Profile mode [cpu|mem]")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.ease":        *tlevel,
		"trace.ease.plot":   *tlevel,
		"trace.ease.define": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		pterm.Error.Printfln("unknown profile mode %q", *prof)
		os.Exit(2)
	}

	r, err := library(*set, *defs)
	if err != nil {
		pterm.Error.Println(err.Error())
		if msg := define.UserMessage(err); msg != "" {
			pterm.Info.Println(msg)
		}
		os.Exit(3)
	}
	if *list {
		for tag := range r.Tags() {
			fmt.Println(tag)
		}
		return
	}
	if err := writeGraphs(r, *out, *accuracy); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	pterm.Success.Printfln("wrote %d graphs to %s", r.Len(), *out)
}

// library builds the registry named by set and adds the curves defined in
// the file defs, if any.
func library(set, defs string) (*ease.Registry, error) {
	r := ease.NewRegistry()
	switch set {
	case "equations":
		ease.RegisterEquations(r)
	case "interpolations":
		ease.RegisterInterpolations(r)
	default:
		return nil, fmt.Errorf("unknown curve set %q", set)
	}
	if defs == "" {
		return r, nil
	}
	ds, err := define.LoadFile(defs)
	if err != nil {
		return nil, err
	}
	if err := define.Register(r, ds); err != nil {
		return nil, err
	}
	tracer().Infof("added %d curves from %s", len(ds), defs)
	return r, nil
}

func writeGraphs(r *ease.Registry, dir string, accuracy float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	opts := plot.Options{Accuracy: accuracy}
	bar, _ := pterm.DefaultProgressbar.WithTotal(r.Len()).WithTitle("Plotting").Start()
	for _, c := range r.Curves() {
		bar.UpdateTitle(c.Tag())
		if err := writeFile(filepath.Join(dir, c.Tag()+".svg"), func(f *os.File) error {
			return plot.WriteSVG(f, c, opts)
		}); err != nil {
			bar.Stop()
			return err
		}
		tracer().Debugf("plotted %s", c.Tag())
		bar.Increment()
	}
	bar.Stop()
	return writeFile(filepath.Join(dir, "index.html"), func(f *os.File) error {
		return plot.WriteIndex(f, r.Tags(), ".svg")
	})
}

func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
