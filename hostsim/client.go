package hostsim

import (
	"slices"
	"sync"
	"time"

	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
)

// Call records one invocation of the plugin's main entry point
type Call struct {
	Action   string
	Status   types.Status
	Duration time.Duration
}

// RenderRequest holds the render arguments the host passes
type RenderRequest struct {
	Time   float64
	Scale  types.PointD
	Window types.RectI
	Field  types.Field
}

// SequenceRequest holds the begin and end sequence render arguments
type SequenceRequest struct {
	Range       types.RangeD
	Step        float64
	Scale       types.PointD
	Interactive bool
}

// ChangeRequest describes a change to a parameter or clip
type ChangeRequest struct {
	// Type is property.TypeParameter or property.TypeClip
	Type   string
	Name   string
	Reason types.ChangeReason
	Time   float64
	Scale  types.PointD
}

// Client drives a plugin through its actions the way a host would
type Client struct {
	Host   *Host
	Plugin *suite.Plugin

	log logger.Logger

	mu         sync.Mutex
	descriptor *Effect
	instances  map[string]*Effect
	calls      []Call
}

// NewClient creates a client for the plugin, hands it the host record and
// returns the client ready for Load
func NewClient(h *Host, p *suite.Plugin, l logger.Logger) *Client {
	if l == nil {
		l = logger.NopLogger{}
	}

	if p.SetHost != nil {
		p.SetHost(h.Suite())
	}

	return &Client{
		Host:      h,
		Plugin:    p,
		log:       l,
		instances: map[string]*Effect{},
	}
}

// Call invokes the main entry point with the raw handles, a nil
// *PropertySet is passed as a null handle
func (c *Client) Call(action string, handle interface{}, in, out *PropertySet) types.Status {
	var inH, outH property.Handle
	if in != nil {
		inH = in
	}

	if out != nil {
		outH = out
	}

	if e, ok := handle.(*Effect); ok && e == nil {
		handle = nil
	}

	start := time.Now()
	st := c.Plugin.MainEntry(action, handle, inH, outH)
	d := time.Since(start)

	c.mu.Lock()
	c.calls = append(c.calls, Call{Action: action, Status: st, Duration: d})
	c.mu.Unlock()

	c.log.Debug("plugin action", "action", action, "status", st, "duration", d)

	return st
}

// Calls returns every call made so far in the order they completed
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.calls)
}

// Descriptor returns the descriptor created by Describe
func (c *Client) Descriptor() *Effect {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.descriptor
}

// Instance returns the named instance created by CreateInstance
func (c *Client) Instance(name string) *Effect {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.instances[name]
}

// Load sends the load action
func (c *Client) Load() types.Status {
	return c.Call(types.ActionLoad, nil, nil, nil)
}

// Unload sends the unload action
func (c *Client) Unload() types.Status {
	return c.Call(types.ActionUnload, nil, nil, nil)
}

// Describe creates a new descriptor and sends the describe action on it
func (c *Client) Describe() (*Effect, types.Status) {
	desc := c.Host.NewDescriptor()

	c.mu.Lock()
	c.descriptor = desc
	c.mu.Unlock()

	return desc, c.Call(types.ActionDescribe, desc, nil, nil)
}

// DescribeInContext sends describe in context on the current descriptor
func (c *Client) DescribeInContext(ctx types.Context) types.Status {
	in := NewPropertySet().Declare(property.EffectContext, KindString, ctx.String())
	return c.Call(types.ActionDescribeInContext, c.Descriptor(), in, nil)
}

// CreateInstance creates an instance handle and sends the create action, the
// instance is kept under name
func (c *Client) CreateInstance(name string, ctx types.Context) (*Effect, types.Status) {
	inst := c.Host.NewInstance(c.Descriptor(), ctx)

	st := c.Call(types.ActionCreateInstance, inst, nil, nil)
	if st == types.StatOK {
		c.mu.Lock()
		c.instances[name] = inst
		c.mu.Unlock()
	}

	return inst, st
}

// DestroyInstance sends the destroy action and forgets the instance
func (c *Client) DestroyInstance(name string) types.Status {
	inst := c.Instance(name)

	st := c.Call(types.ActionDestroyInstance, inst, nil, nil)

	c.mu.Lock()
	delete(c.instances, name)
	c.mu.Unlock()

	return st
}

func renderArgs(r RenderRequest) *PropertySet {
	return NewPropertySet().
		Declare(property.Time, KindDouble, r.Time).
		Declare(property.EffectRenderScale, KindDouble, r.Scale.X, r.Scale.Y).
		Declare(property.EffectRenderWindow, KindInt, r.Window.X1, r.Window.Y1, r.Window.X2, r.Window.Y2).
		Declare(property.EffectFieldToRender, KindString, r.Field.String())
}

// Render sends the render action
func (c *Client) Render(inst *Effect, r RenderRequest) types.Status {
	return c.Call(types.ActionRender, inst, renderArgs(r), nil)
}

func sequenceArgs(s SequenceRequest) *PropertySet {
	return NewPropertySet().
		Declare(property.EffectFrameRange, KindDouble, s.Range.Min, s.Range.Max).
		Declare(property.EffectFrameStep, KindDouble, s.Step).
		Declare(property.EffectRenderScale, KindDouble, s.Scale.X, s.Scale.Y).
		Declare(property.IsInteractive, KindInt, boolInt(s.Interactive))
}

// BeginSequenceRender sends the begin sequence render action
func (c *Client) BeginSequenceRender(inst *Effect, s SequenceRequest) types.Status {
	return c.Call(types.ActionBeginSequenceRender, inst, sequenceArgs(s), nil)
}

// EndSequenceRender sends the end sequence render action
func (c *Client) EndSequenceRender(inst *Effect, s SequenceRequest) types.Status {
	return c.Call(types.ActionEndSequenceRender, inst, sequenceArgs(s), nil)
}

// IsIdentity sends the is identity action and returns the clip and time the
// plugin named
func (c *Client) IsIdentity(inst *Effect, r RenderRequest) (types.Status, string, float64) {
	out := NewPropertySet().
		Declare(property.Name, KindString, "").
		Declare(property.Time, KindDouble, r.Time)

	st := c.Call(types.ActionIsIdentity, inst, renderArgs(r), out)

	name, _ := out.Values(property.Name)[0].(string)
	t, _ := out.Values(property.Time)[0].(float64)

	return st, name, t
}

// GetRegionOfDefinition sends the region of definition action
func (c *Client) GetRegionOfDefinition(inst *Effect, t float64, scale types.PointD) (types.Status, types.RectD) {
	in := NewPropertySet().
		Declare(property.Time, KindDouble, t).
		Declare(property.EffectRenderScale, KindDouble, scale.X, scale.Y)
	out := NewPropertySet().Declare(property.EffectRegionOfDefinition, KindDouble, 0.0, 0.0, 0.0, 0.0)

	st := c.Call(types.ActionGetRegionOfDefinition, inst, in, out)

	return st, rectD(out.Values(property.EffectRegionOfDefinition))
}

// GetRegionsOfInterest sends the regions of interest action, every input
// clip is preset to the requested region as a host would
func (c *Client) GetRegionsOfInterest(inst *Effect, t float64, scale types.PointD, roi types.RectD) (types.Status, map[string]types.RectD) {
	in := NewPropertySet().
		Declare(property.Time, KindDouble, t).
		Declare(property.EffectRenderScale, KindDouble, scale.X, scale.Y).
		Declare(property.EffectRegionOfInterest, KindDouble, roi.X1, roi.Y1, roi.X2, roi.Y2)

	out := NewPropertySet()
	clips := inst.InputClipNames()
	for _, n := range clips {
		out.Declare(property.PerClip(property.ClipRoIPrefix, n), KindDouble, roi.X1, roi.Y1, roi.X2, roi.Y2)
	}

	st := c.Call(types.ActionGetRegionsOfInterest, inst, in, out)

	rois := map[string]types.RectD{}
	for _, n := range clips {
		rois[n] = rectD(out.Values(property.PerClip(property.ClipRoIPrefix, n)))
	}

	return st, rois
}

// GetFramesNeeded sends the frames needed action and returns the ranges set
// for every input clip
func (c *Client) GetFramesNeeded(inst *Effect, t float64) (types.Status, map[string][]types.RangeD) {
	in := NewPropertySet().Declare(property.Time, KindDouble, t)

	out := NewPropertySet()
	clips := inst.InputClipNames()
	for _, n := range clips {
		out.Declare(property.PerClip(property.ClipFrameRangePrefix, n), KindDouble, t, t)
	}

	st := c.Call(types.ActionGetFramesNeeded, inst, in, out)

	frames := map[string][]types.RangeD{}
	for _, n := range clips {
		v := out.Values(property.PerClip(property.ClipFrameRangePrefix, n))
		for i := 0; i+1 < len(v); i += 2 {
			lo, _ := v[i].(float64)
			hi, _ := v[i+1].(float64)
			frames[n] = append(frames[n], types.RangeD{Min: lo, Max: hi})
		}
	}

	return st, frames
}

// GetClipPreferences sends the clip preferences action and returns the out
// arguments as set by the plugin, the output values start at the host
// defaults
func (c *Client) GetClipPreferences(inst *Effect) (types.Status, *PropertySet) {
	out := NewPropertySet().
		Declare(property.EffectFrameRate, KindDouble, 25.0).
		Declare(property.EffectPreMultiplication, KindString, types.ImagePreMultiplied.String()).
		Declare(property.ClipFieldOrder, KindString, types.FieldNone.String()).
		Declare(property.ClipContinuousSamples, KindInt, 0).
		Declare(property.EffectFrameVarying, KindInt, 0)
	st := c.Call(types.ActionGetClipPreferences, inst, nil, out)

	return st, out
}

// GetTimeDomain sends the time domain action
func (c *Client) GetTimeDomain(inst *Effect) (types.Status, types.RangeD) {
	out := NewPropertySet().Declare(property.EffectFrameRange, KindDouble, 0.0, 0.0)
	st := c.Call(types.ActionGetTimeDomain, inst, nil, out)

	v := out.Values(property.EffectFrameRange)
	r := types.RangeD{}
	if len(v) == 2 {
		r.Min, _ = v[0].(float64)
		r.Max, _ = v[1].(float64)
	}

	return st, r
}

// InstanceChanged sends the instance changed action
func (c *Client) InstanceChanged(inst *Effect, ch ChangeRequest) types.Status {
	in := NewPropertySet().
		Declare(property.Type, KindString, ch.Type).
		Declare(property.Name, KindString, ch.Name).
		Declare(property.ChangeReason, KindString, ch.Reason.String()).
		Declare(property.Time, KindDouble, ch.Time).
		Declare(property.EffectRenderScale, KindDouble, ch.Scale.X, ch.Scale.Y)

	return c.Call(types.ActionInstanceChanged, inst, in, nil)
}

// BeginInstanceChanged sends the begin instance changed action
func (c *Client) BeginInstanceChanged(inst *Effect, reason types.ChangeReason) types.Status {
	in := NewPropertySet().Declare(property.ChangeReason, KindString, reason.String())
	return c.Call(types.ActionBeginInstanceChanged, inst, in, nil)
}

// EndInstanceChanged sends the end instance changed action
func (c *Client) EndInstanceChanged(inst *Effect, reason types.ChangeReason) types.Status {
	in := NewPropertySet().Declare(property.ChangeReason, KindString, reason.String())
	return c.Call(types.ActionEndInstanceChanged, inst, in, nil)
}

// PurgeCaches sends the purge caches action
func (c *Client) PurgeCaches(inst *Effect) types.Status {
	return c.Call(types.ActionPurgeCaches, inst, nil, nil)
}

// SyncPrivateData sends the sync private data action
func (c *Client) SyncPrivateData(inst *Effect) types.Status {
	return c.Call(types.ActionSyncPrivateData, inst, nil, nil)
}

// BeginEdit sends the begin instance edit action
func (c *Client) BeginEdit(inst *Effect) types.Status {
	return c.Call(types.ActionBeginInstanceEdit, inst, nil, nil)
}

// EndEdit sends the end instance edit action
func (c *Client) EndEdit(inst *Effect) types.Status {
	return c.Call(types.ActionEndInstanceEdit, inst, nil, nil)
}

func rectD(v []interface{}) types.RectD {
	f := [4]float64{}
	for i := 0; i < len(v) && i < 4; i++ {
		f[i], _ = v[i].(float64)
	}

	return types.RectD{X1: f[0], Y1: f[1], X2: f[2], Y2: f[3]}
}
