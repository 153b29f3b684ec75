// Package report builds the summary of a probe run, a plugin driven through
// a simulated host, and renders it with a handlebars template.
package report

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/flytam/filenamify"
	"github.com/jumppad-labs/ofxsupport/hostsim"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/mailgun/raymond/v2"
)

//go:embed report.hbs
var defaultTemplate string

// Action is one main entry call of the run
type Action struct {
	Name     string
	Status   string
	OK       bool
	Duration time.Duration
}

// Report is the outcome of driving one plugin through one host
type Report struct {
	Host     string
	Plugin   string
	Version  string
	Actions  []Action
	Messages []hostsim.Message
	Failed   int
	Error    string
}

// New builds a report from the calls made by c, err is the error returned
// by the lifecycle plan if any
func New(c *hostsim.Client, err error) *Report {
	r := &Report{
		Host:     c.Host.Config.Name,
		Plugin:   c.Plugin.Identifier,
		Version:  fmt.Sprintf("%d.%d", c.Plugin.VersionMajor, c.Plugin.VersionMinor),
		Messages: c.Host.Messages(),
	}

	for _, call := range c.Calls() {
		ok := succeeded(call.Status)
		if !ok {
			r.Failed++
		}

		r.Actions = append(r.Actions, Action{
			Name:     call.Action,
			Status:   call.Status.String(),
			OK:       ok,
			Duration: call.Duration,
		})
	}

	if err != nil {
		r.Error = err.Error()
	}

	return r
}

func succeeded(st types.Status) bool {
	switch st {
	case types.StatOK, types.StatReplyDefault, types.StatReplyYes, types.StatReplyNo:
		return true
	}

	return false
}

// Render executes src against the report, an empty src uses the built in
// template
func (r *Report) Render(src string) (string, error) {
	if src == "" {
		src = defaultTemplate
	}

	tmpl, err := raymond.Parse(src)
	if err != nil {
		return "", fmt.Errorf("error parsing template: %s", err)
	}

	tmpl.RegisterHelpers(map[string]interface{}{
		"duration": func(d time.Duration) string {
			return d.Round(time.Microsecond).String()
		},
		"mark": func(ok bool) string {
			if ok {
				return "ok"
			}

			return "FAILED"
		},
	})

	result, err := tmpl.Exec(r)
	if err != nil {
		return "", fmt.Errorf("error processing template: %s", err)
	}

	return result, nil
}

// FileName returns a file safe name for the report of this plugin and host
func (r *Report) FileName(ext string) (string, error) {
	name, err := filenamify.Filenamify(fmt.Sprintf("%s@%s", r.Plugin, r.Host), filenamify.Options{
		Replacement: "_",
	})
	if err != nil {
		return "", err
	}

	return name + ext, nil
}
