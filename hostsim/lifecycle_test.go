package hostsim

import (
	"sync"
	"testing"

	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	actions []string
	fail    string
}

func (r *recorder) plugin() *suite.Plugin {
	return &suite.Plugin{
		API:        suite.ImageEffectPluginAPI,
		APIVersion: 1,
		Identifier: "test.recorder",
		SetHost:    func(h *suite.Host) {},
		MainEntry: func(action string, handle interface{}, in, out property.Handle) types.Status {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.actions = append(r.actions, action)
			if action == r.fail {
				return types.StatFailed
			}

			return types.StatOK
		},
	}
}

func (r *recorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.actions...)
}

func indexOf(actions []string, a string) int {
	for i, v := range actions {
		if v == a {
			return i
		}
	}

	return -1
}

func TestStandardPlanRunsActionsInOrder(t *testing.T) {
	r := &recorder{}
	c := NewClient(setupHost(t, nil), r.plugin(), logger.NewTestLogger(t))

	p := StandardPlan(types.ContextFilter, []float64{1, 2, 3, 2}, RenderRequest{Scale: types.PointD{X: 1, Y: 1}})
	require.NoError(t, p.Run(c))

	a := r.recorded()
	require.Equal(t, types.ActionLoad, a[0])
	require.Equal(t, types.ActionUnload, a[len(a)-1])

	begin := indexOf(a, types.ActionBeginSequenceRender)
	end := indexOf(a, types.ActionEndSequenceRender)
	require.Less(t, indexOf(a, types.ActionDescribe), indexOf(a, types.ActionDescribeInContext))
	require.Less(t, indexOf(a, types.ActionCreateInstance), indexOf(a, types.ActionGetClipPreferences))
	require.Less(t, begin, end)

	renders := 0
	for i, v := range a {
		if v == types.ActionRender {
			renders++
			require.Greater(t, i, begin)
			require.Less(t, i, end)
		}
	}

	// duplicate frame is rendered once
	require.Equal(t, 3, renders)
	require.Len(t, c.Calls(), len(a))
}

func TestPlanStopsAfterFailedStep(t *testing.T) {
	r := &recorder{fail: types.ActionCreateInstance}
	c := NewClient(setupHost(t, nil), r.plugin(), nil)

	err := StandardPlan(types.ContextFilter, []float64{1}, RenderRequest{}).Run(c)
	require.Error(t, err)

	pe, ok := err.(*PlanError)
	require.True(t, ok)
	require.NotEmpty(t, pe.Errors)
	require.Contains(t, pe.Error(), "create_instance")

	require.Equal(t, -1, indexOf(r.recorded(), types.ActionRender))
	require.Equal(t, -1, indexOf(r.recorded(), types.ActionUnload))
}

func TestPlanRejectsUnknownAndDuplicateSteps(t *testing.T) {
	p := NewPlan("root", func(c *Client) error { return nil })

	require.NoError(t, p.Add("a", func(c *Client) error { return nil }))
	require.Error(t, p.Add("a", func(c *Client) error { return nil }))
	require.Error(t, p.Add("b", func(c *Client) error { return nil }, "missing"))
}

func TestClientPassesNilHandlesAsNull(t *testing.T) {
	var gotHandle interface{} = "unset"
	var gotIn property.Handle = "unset"

	p := &suite.Plugin{
		MainEntry: func(action string, handle interface{}, in, out property.Handle) types.Status {
			gotHandle = handle
			gotIn = in
			return types.StatOK
		},
	}

	c := NewClient(setupHost(t, nil), p, nil)
	var e *Effect
	c.Call(types.ActionRender, e, nil, nil)

	require.Nil(t, gotHandle)
	require.Nil(t, gotIn)
}

func TestClientReadsOutArguments(t *testing.T) {
	h := setupHost(t, nil)

	p := &suite.Plugin{
		MainEntry: func(action string, handle interface{}, in, out property.Handle) types.Status {
			s := property.NewSet(Store{}, out)
			switch action {
			case types.ActionGetRegionOfDefinition:
				s.SetDouble(property.EffectRegionOfDefinition, 10, 2)
				s.SetDouble(property.EffectRegionOfDefinition, 20, 3)
			case types.ActionGetFramesNeeded:
				k := property.PerClip(property.ClipFrameRangePrefix, "Source")
				for i, v := range []float64{0, 1, 4, 5} {
					s.SetDouble(k, v, i)
				}
			case types.ActionIsIdentity:
				s.SetString(property.Name, "Source", 0)
			}

			return types.StatOK
		},
	}

	c := NewClient(h, p, nil)
	desc, _ := c.Describe()
	desc.defineClip("Source")
	desc.defineClip(OutputClipName)

	inst, st := c.CreateInstance("main", types.ContextFilter)
	require.Equal(t, types.StatOK, st)

	_, rod := c.GetRegionOfDefinition(inst, 1, types.PointD{X: 1, Y: 1})
	require.Equal(t, types.RectD{X2: 10, Y2: 20}, rod)

	_, frames := c.GetFramesNeeded(inst, 1)
	require.Equal(t, []types.RangeD{{Min: 0, Max: 1}, {Min: 4, Max: 5}}, frames["Source"])

	_, name, tm := c.IsIdentity(inst, RenderRequest{Time: 3})
	require.Equal(t, "Source", name)
	require.Equal(t, 3.0, tm)
}
