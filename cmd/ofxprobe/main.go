// ofxprobe runs the example gain effect through one or more simulated hosts
// and reports the status of every action.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jumppad-labs/ofxsupport"
	"github.com/jumppad-labs/ofxsupport/example"
	"github.com/jumppad-labs/ofxsupport/hostsim"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/report"
	"github.com/jumppad-labs/ofxsupport/types"
)

type flags struct {
	hostFile string
	context  string
	frames   string
	width    int
	height   int
	gain     float64
	border   float64
	temporal bool
	validate bool
	logLevel string
	template string
	outDir   string
	plain    bool
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("ofxprobe", flag.ContinueOnError)
	fs.StringVar(&f.hostFile, "hosts", "", "HCL file describing the hosts to probe, the default host is used when empty")
	fs.StringVar(&f.context, "context", "filter", "context to create the instance in: filter, general or generator")
	fs.StringVar(&f.frames, "frames", "1,2,3", "comma separated list of frames to render")
	fs.IntVar(&f.width, "width", 1920, "render window width")
	fs.IntVar(&f.height, "height", 1080, "render window height")
	fs.Float64Var(&f.gain, "gain", 2, "gain applied by the effect, 1 is an identity")
	fs.Float64Var(&f.border, "border", 0, "border in pixels read around the render window")
	fs.BoolVar(&f.temporal, "temporal", false, "read the frames either side of each rendered frame")
	fs.BoolVar(&f.validate, "validate", true, "validate property sets against the built in rules")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&f.template, "template", "", "handlebars template used for the report")
	fs.StringVar(&f.outDir, "out", "", "directory the reports are written to, reports are printed when empty")
	fs.BoolVar(&f.plain, "plain", false, "disable styled output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

func parseFrames(s string) ([]float64, error) {
	frames := []float64{}

	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frame %q: %w", p, err)
		}

		frames = append(frames, f)
	}

	return frames, nil
}

func parseContext(s string) (types.Context, error) {
	switch strings.ToLower(s) {
	case "filter":
		return types.ContextFilter, nil
	case "general":
		return types.ContextGeneral, nil
	case "generator":
		return types.ContextGenerator, nil
	}

	return types.ContextFromString(s)
}

func loadHosts(path string) ([]*hostsim.Config, error) {
	if path == "" {
		return []*hostsim.Config{hostsim.DefaultConfig("hostsim")}, nil
	}

	return hostsim.ParseConfigFile(path)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		return 2
	}

	l := logger.NewStdOutLoggerWithOptions(os.Stderr, logger.ParseLevel(f.logLevel), "ofxprobe")
	p := report.NewPrinter(report.PrinterOptions{Width: 100, Writer: os.Stdout, Plain: f.plain})

	frames, err := parseFrames(f.frames)
	if err != nil {
		p.Error(err.Error())
		return 2
	}

	ctx, err := parseContext(f.context)
	if err != nil {
		p.Error(err.Error())
		return 2
	}

	tmpl := ""
	if f.template != "" {
		d, err := os.ReadFile(f.template)
		if err != nil {
			p.Error(fmt.Sprintf("unable to read template: %s", err))
			return 1
		}

		tmpl = string(d)
	}

	hosts, err := loadHosts(f.hostFile)
	if err != nil {
		p.Error(err.Error())
		return 1
	}

	failed := false
	for _, hc := range hosts {
		r := probe(f, hc, ctx, frames, l)

		p.Heading(r.Host)
		for _, a := range r.Actions {
			p.Action(a.Name, a.Status, a.OK)
		}

		if r.Error != "" {
			failed = true
			p.Error(r.Error)
		}

		if err := write(f, p, r, tmpl); err != nil {
			p.Error(err.Error())
			return 1
		}
	}

	if failed {
		return 1
	}

	return 0
}

func probe(f *flags, hc *hostsim.Config, ctx types.Context, frames []float64, l logger.Logger) *report.Report {
	g := example.New(f.gain)
	g.Border = f.border
	g.Temporal = f.temporal

	o := ofxsupport.DefaultOptions()
	o.Logger = l
	o.Validate = f.validate

	lib := ofxsupport.New(g, o)
	c := hostsim.NewClient(hostsim.New(hc, l), lib.GetPlugin(0), l)

	req := hostsim.RenderRequest{
		Scale:  types.PointD{X: 1, Y: 1},
		Window: types.RectI{X2: f.width, Y2: f.height},
		Field:  types.FieldNone,
	}

	err := hostsim.StandardPlan(ctx, frames, req).Run(c)

	return report.New(c, err)
}

func write(f *flags, p *report.Printer, r *report.Report, tmpl string) error {
	out, err := r.Render(tmpl)
	if err != nil {
		return err
	}

	if f.outDir == "" {
		p.Line(out)
		return nil
	}

	name, err := r.FileName(".md")
	if err != nil {
		return err
	}

	path := filepath.Join(f.outDir, name)
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	p.Line(fmt.Sprintf("report written to %s", path))
	return nil
}
