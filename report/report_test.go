package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jumppad-labs/ofxsupport/hostsim"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T, fail string) *hostsim.Client {
	p := &suite.Plugin{
		Identifier:   "net.test/probe",
		VersionMajor: 2,
		VersionMinor: 1,
		MainEntry: func(action string, handle interface{}, in, out property.Handle) types.Status {
			if action == fail {
				return types.StatErrMemory
			}

			return types.StatOK
		},
	}

	return hostsim.NewClient(hostsim.New(nil, nil), p, logger.NewTestLogger(t))
}

func TestNewCollectsCalls(t *testing.T) {
	c := setupClient(t, types.ActionUnload)
	c.Load()
	c.Unload()

	r := New(c, fmt.Errorf("boom"))
	require.Equal(t, "hostsim", r.Host)
	require.Equal(t, "2.1", r.Version)
	require.Len(t, r.Actions, 2)
	require.True(t, r.Actions[0].OK)
	require.False(t, r.Actions[1].OK)
	require.Equal(t, 1, r.Failed)
	require.Equal(t, "boom", r.Error)
}

func TestRenderDefaultTemplate(t *testing.T) {
	c := setupClient(t, "")
	c.Load()

	out, err := New(c, nil).Render("")
	require.NoError(t, err)
	require.Contains(t, out, "# net.test/probe 2.1 on hostsim")
	require.Contains(t, out, "- OfxActionLoad: kOfxStatOK")
	require.Contains(t, out, "0 failed action(s)")
	require.NotContains(t, out, "Messages")
}

func TestRenderCustomTemplate(t *testing.T) {
	c := setupClient(t, types.ActionLoad)
	c.Load()

	out, err := New(c, nil).Render("{{#each Actions}}{{Name}}={{mark OK}}{{/each}}")
	require.NoError(t, err)
	require.Equal(t, "OfxActionLoad=FAILED", out)
}

func TestRenderBadTemplateFails(t *testing.T) {
	_, err := (&Report{}).Render("{{#each}")
	require.Error(t, err)
}

func TestFileNameIsSafe(t *testing.T) {
	name, err := (&Report{Plugin: "net.test/probe", Host: "host:one"}).FileName(".md")
	require.NoError(t, err)
	require.Equal(t, "net.test_probe@host_one.md", name)
}

func TestPrinterPlainOutput(t *testing.T) {
	buf := bytes.NewBufferString("")
	p := NewPrinter(PrinterOptions{Width: 80, Writer: buf, Plain: true})

	p.Heading("hostsim")
	p.Action("OfxActionLoad", "kOfxStatOK", true)

	require.Contains(t, buf.String(), "HOST: 'hostsim'")
	require.Contains(t, buf.String(), "OfxActionLoad")
}
