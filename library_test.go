package ofxsupport_test

import (
	"fmt"
	"testing"

	"github.com/jumppad-labs/ofxsupport"
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/hostsim"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testPlugin struct {
	clips []string

	loads          int
	unloads        int
	describes      int
	contextDescs   int
	loadErr        error
	nilInstance    bool
	typedNil       bool
	lastDescriptor *ofxsupport.ImageEffectDescriptor

	setup    func(e *testEffect)
	instance *testEffect
}

func (p *testPlugin) ID() ofxsupport.PluginID {
	return ofxsupport.PluginID{Identifier: "test.effect", VersionMajor: 1, VersionMinor: 2}
}

func (p *testPlugin) Load() error {
	p.loads++
	return p.loadErr
}

func (p *testPlugin) Unload() {
	p.unloads++
}

func (p *testPlugin) Describe(desc *ofxsupport.ImageEffectDescriptor) error {
	p.describes++
	p.lastDescriptor = desc

	if err := desc.SetLabels("Test", "Test", "Test Effect"); err != nil {
		return err
	}

	return desc.AddSupportedContext(types.ContextFilter)
}

func (p *testPlugin) DescribeInContext(desc *ofxsupport.ImageEffectDescriptor, ctx types.Context) error {
	p.contextDescs++

	for _, n := range append([]string{hostsim.OutputClipName}, p.clips...) {
		c, err := desc.DefineClip(n)
		if err != nil {
			return err
		}

		if err := c.AddSupportedComponent(types.ComponentRGBA); err != nil {
			return err
		}
	}

	return nil
}

func (p *testPlugin) CreateInstance(base *ofxsupport.EffectBase) (ofxsupport.ImageEffect, error) {
	if p.nilInstance {
		return nil, nil
	}

	if p.typedNil {
		return (*testEffect)(nil), nil
	}

	e := &testEffect{EffectBase: base}
	if p.setup != nil {
		p.setup(e)
	}

	p.instance = e
	return e, nil
}

type testEffect struct {
	*ofxsupport.EffectBase
	mock.Mock

	rois      map[string]types.RectD
	roiOrder  []string
	frames    []types.RangeD
	identity  string
	noClip    bool
	destroyed bool
}

func (e *testEffect) Render(args ofxsupport.RenderArguments) error {
	return e.Called(args).Error(0)
}

func (e *testEffect) IsIdentity(args ofxsupport.RenderArguments, id *ofxsupport.Identity) (bool, error) {
	if e.noClip {
		return true, nil
	}

	if e.identity == "" {
		return false, nil
	}

	id.Clip = e.identity
	return true, nil
}

func (e *testEffect) GetRegionsOfInterest(args ofxsupport.RegionsOfInterestArguments, rois ofxsupport.RegionOfInterestSetter) error {
	for _, n := range e.roiOrder {
		rois.SetRegionOfInterest(n, e.rois[n])
	}

	return nil
}

func (e *testEffect) GetFramesNeeded(args ofxsupport.FramesNeededArguments, frames ofxsupport.FramesNeededSetter) error {
	for _, r := range e.frames {
		frames.SetFramesNeeded("Source", r)
	}

	return nil
}

func (e *testEffect) ChangedParam(args ofxsupport.InstanceChangedArguments, name string) error {
	return e.Called(args.Reason, name).Error(0)
}

func (e *testEffect) Destroy() error {
	e.destroyed = true
	return nil
}

type testEnv struct {
	lib    *ofxsupport.Library
	client *hostsim.Client
	host   *hostsim.Host
	log    *logger.TestLogger
	plugin *testPlugin
}

func setupLibrary(t *testing.T, c *hostsim.Config, p *testPlugin) *testEnv {
	if p == nil {
		p = &testPlugin{clips: []string{"Source"}}
	}

	env := setupLibraryFor(t, c, p)
	env.plugin = p

	return env
}

func setupLibraryFor(t *testing.T, c *hostsim.Config, p ofxsupport.Plugin) *testEnv {
	l := logger.NewTestLogger(t)
	o := ofxsupport.DefaultOptions()
	o.Logger = l

	lib := ofxsupport.New(p, o)
	h := hostsim.New(c, l)

	return &testEnv{
		lib:    lib,
		client: hostsim.NewClient(h, lib.GetPlugin(0), l),
		host:   h,
		log:    l,
	}
}

// setupInstance loads the plugin and creates the instance "main" in the
// filter context
func setupInstance(t *testing.T, env *testEnv) *hostsim.Effect {
	require.Equal(t, types.StatOK, env.client.Load())

	_, st := env.client.Describe()
	require.Equal(t, types.StatOK, st)
	require.Equal(t, types.StatOK, env.client.DescribeInContext(types.ContextFilter))

	inst, st := env.client.CreateInstance("main", types.ContextFilter)
	require.Equal(t, types.StatOK, st)

	return inst
}

func renderIn(field string) *hostsim.PropertySet {
	return hostsim.NewPropertySet().
		Declare(property.Time, hostsim.KindDouble, 1.0).
		Declare(property.EffectRenderScale, hostsim.KindDouble, 1.0, 1.0).
		Declare(property.EffectRenderWindow, hostsim.KindInt, 0, 0, 64, 64).
		Declare(property.EffectFieldToRender, hostsim.KindString, field)
}

func TestActionsListsEveryAction(t *testing.T) {
	a := ofxsupport.Actions()

	require.Len(t, a, 22)
	require.Contains(t, a, types.ActionLoad)
	require.Contains(t, a, types.ActionEndInstanceEdit)
	require.IsIncreasing(t, a)
}

func TestUnknownActionRepliesDefault(t *testing.T) {
	env := setupLibrary(t, nil, nil)

	require.Equal(t, types.StatReplyDefault, env.lib.MainEntry("OfxActionBogus", nil, nil, nil))
	require.Equal(t, 1, env.log.Count("ERROR", "unknown action"))

	require.Equal(t, types.StatReplyDefault, env.lib.MainEntry("", nil, nil, nil))
	require.Equal(t, 1, env.log.Count("ERROR", "null action"))
}

func TestGetPluginReturnsRecordForAnyIndex(t *testing.T) {
	env := setupLibrary(t, nil, nil)

	require.Equal(t, 1, env.lib.PluginCount())

	p := env.lib.GetPlugin(3)
	require.Equal(t, "test.effect", p.Identifier)
	require.Equal(t, 1, p.VersionMajor)
	require.Equal(t, 2, p.VersionMinor)
	require.Equal(t, 1, env.log.Count("ERROR", "plugin that does not exist"))
}

func TestLoadNegotiatesSuites(t *testing.T) {
	env := setupLibrary(t, nil, nil)

	require.Equal(t, types.StatOK, env.client.Load())
	require.Equal(t, 1, env.lib.LoadCount())
	require.Equal(t, 1, env.plugin.loads)
	require.NotNil(t, env.lib.Tables())
	require.Equal(t, "hostsim", env.lib.HostDescription().HostName)
}

func TestSecondLoadDoesNotRenegotiate(t *testing.T) {
	env := setupLibrary(t, nil, nil)

	require.Equal(t, types.StatOK, env.client.Load())
	tables := env.lib.Tables()

	require.Equal(t, types.StatOK, env.client.Load())
	require.Equal(t, 2, env.lib.LoadCount())
	require.Equal(t, 1, env.plugin.loads)
	require.Same(t, tables, env.lib.Tables())
	require.Equal(t, 1, env.log.Count("ERROR", "without a matching unload"))

	require.Equal(t, types.StatOK, env.client.Unload())
	require.NotNil(t, env.lib.Tables())
	require.Equal(t, 0, env.plugin.unloads)

	require.Equal(t, types.StatOK, env.client.Unload())
	require.Nil(t, env.lib.Tables())
	require.Equal(t, 1, env.plugin.unloads)
}

func TestLoadWithoutHostFailsWhileLoaded(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	require.Equal(t, types.StatOK, env.client.Load())

	env.lib.SetHost(nil)

	require.Equal(t, types.StatErrBadHandle, env.client.Load())
	require.Equal(t, 1, env.lib.LoadCount())
	require.Equal(t, 1, env.plugin.loads)
	require.Equal(t, 0, env.log.Count("ERROR", "without a matching unload"))
}

func TestUnloadWithoutLoadIsLogged(t *testing.T) {
	env := setupLibrary(t, nil, nil)

	require.Equal(t, types.StatOK, env.client.Unload())
	require.Equal(t, 0, env.lib.LoadCount())
	require.Equal(t, 0, env.plugin.unloads)
	require.Equal(t, 1, env.log.Count("ERROR", "without a corresponding load"))
}

func TestLoadWithMissingSuiteFails(t *testing.T) {
	c := hostsim.DefaultConfig("thin")
	c.Withhold = []string{"OfxMemorySuite"}
	env := setupLibrary(t, c, nil)

	require.Equal(t, types.StatErrMissingHostFeature, env.client.Load())
	require.Equal(t, 0, env.lib.LoadCount())
	require.Equal(t, 0, env.plugin.loads)
	require.Nil(t, env.lib.Tables())
}

func TestLoadWithUnknownHostPropertyFails(t *testing.T) {
	c := hostsim.DefaultConfig("old")
	c.Omit = []string{property.HostMaxPages}
	env := setupLibrary(t, c, nil)

	require.Equal(t, types.StatErrMissingHostFeature, env.client.Load())
	require.Equal(t, 0, env.lib.LoadCount())
}

func TestPluginLoadFailureRollsBack(t *testing.T) {
	env := setupLibrary(t, nil, &testPlugin{loadErr: fmt.Errorf("no license")})

	require.Equal(t, types.StatFailed, env.client.Load())
	require.Equal(t, 0, env.lib.LoadCount())
	require.Nil(t, env.lib.Tables())
}

func TestActionBeforeLoadIsFatal(t *testing.T) {
	env := setupLibrary(t, nil, nil)

	_, st := env.client.Describe()
	require.Equal(t, types.StatErrFatal, st)
}

func TestDescribeInContextDescribesFirst(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	setupInstance(t, env)

	require.Equal(t, 2, env.plugin.describes)
	require.Equal(t, 1, env.plugin.contextDescs)
	require.Equal(t, []string{hostsim.OutputClipName, "Source"}, env.client.Descriptor().ClipNames())
	require.Equal(t, []interface{}{"Test Effect"}, env.client.Descriptor().Props.Values(property.LongLabel))
}

func TestDescribeInContextWithBadContextFails(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	require.Equal(t, types.StatOK, env.client.Load())

	desc, _ := env.client.Describe()
	in := hostsim.NewPropertySet().Declare(property.EffectContext, hostsim.KindString, "OfxImageEffectContextBogus")

	require.Equal(t, types.StatFailed, env.client.Call(types.ActionDescribeInContext, desc, in, nil))
	require.Equal(t, 0, env.plugin.contextDescs)
}

func TestCreateInstancePublishesAndDestroyClears(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	inst := setupInstance(t, env)

	e := env.plugin.instance
	require.NotNil(t, e)
	require.Same(t, e, inst.Props.Values(property.InstanceData)[0])
	require.Equal(t, types.ContextFilter, e.Context())
	require.Same(t, env.lib.HostDescription(), e.HostDescription())

	require.Equal(t, types.StatOK, env.client.DestroyInstance("main"))
	require.True(t, e.destroyed)
	require.Equal(t, []interface{}{nil}, inst.Props.Values(property.InstanceData))

	// a destroyed handle no longer resolves
	require.Equal(t, types.StatErrBadHandle, env.client.Call(types.ActionPurgeCaches, inst, nil, nil))
}

func TestCreateInstanceWithNilInstanceFails(t *testing.T) {
	env := setupLibrary(t, nil, &testPlugin{nilInstance: true})
	require.Equal(t, types.StatOK, env.client.Load())

	_, st := env.client.CreateInstance("main", types.ContextFilter)
	require.Equal(t, types.StatFailed, st)
}

func TestCreateInstanceWithTypedNilInstanceFails(t *testing.T) {
	env := setupLibrary(t, nil, &testPlugin{typedNil: true})
	require.Equal(t, types.StatOK, env.client.Load())

	inst, st := env.client.CreateInstance("main", types.ContextFilter)
	require.Equal(t, types.StatFailed, st)
	require.Equal(t, []interface{}{nil}, inst.Props.Values(property.InstanceData))
}

func TestRenderCallsInstance(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.On("Render", mock.Anything).Return(nil)
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	st := env.client.Render(inst, hostsim.RenderRequest{
		Time:   3,
		Scale:  types.PointD{X: 0.5, Y: 0.5},
		Window: types.RectI{X1: 0, Y1: 0, X2: 100, Y2: 50},
		Field:  types.FieldLower,
	})
	require.Equal(t, types.StatOK, st)

	p.instance.AssertCalled(t, "Render", ofxsupport.RenderArguments{
		Time:          3,
		RenderScale:   types.PointD{X: 0.5, Y: 0.5},
		RenderWindow:  types.RectI{X1: 0, Y1: 0, X2: 100, Y2: 50},
		FieldToRender: types.FieldLower,
	})
}

func TestNullRequiredHandleFailsWithoutCallingHandler(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.On("Render", mock.Anything).Return(nil)
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	require.Equal(t, types.StatErrBadHandle, env.client.Call(types.ActionRender, inst, nil, nil))
	require.Equal(t, types.StatErrBadHandle, env.client.Call(types.ActionRender, nil, renderIn("OfxImageFieldNone"), nil))

	// a typed nil is a null handle
	var none *hostsim.Effect
	require.Equal(t, types.StatErrBadHandle, env.lib.MainEntry(types.ActionRender, none, renderIn("OfxImageFieldNone"), nil))

	p.instance.AssertNotCalled(t, "Render", mock.Anything)
	require.Equal(t, 3, env.log.Count("ERROR", "pointer passed to action is null"))
}

func TestForbiddenPointerIsOnlyWarned(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	require.Equal(t, types.StatOK, env.client.Load())

	require.Equal(t, types.StatOK, env.lib.MainEntry(types.ActionUnload, hostsim.NewPropertySet(), nil, nil))
	require.Equal(t, 0, env.lib.LoadCount())
	require.Equal(t, 1, env.log.Count("WARN", "pointer passed to action is not null"))
}

func TestUnknownFieldToRenderFailsWithValueError(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.On("Render", mock.Anything).Return(nil)
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	require.Equal(t, types.StatErrValue, env.client.Call(types.ActionRender, inst, renderIn("OfxImageFieldSideways"), nil))
	require.Equal(t, 1, env.log.Count("ERROR", "unknown field to render"))
	p.instance.AssertNotCalled(t, "Render", mock.Anything)
}

func TestRenderErrorsMapToStatus(t *testing.T) {
	tt := []struct {
		name   string
		err    error
		status types.Status
	}{
		{"memory", fmt.Errorf("scratch buffer: %w", errors.ErrMemory), types.StatErrMemory},
		{"suite", errors.NewSuiteError(types.StatErrImageFormat, "bad image"), types.StatErrImageFormat},
		{"opaque", fmt.Errorf("boom"), types.StatFailed},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
				e.On("Render", mock.Anything).Return(tc.err)
			}}
			env := setupLibrary(t, nil, p)
			inst := setupInstance(t, env)

			require.Equal(t, tc.status, env.client.Render(inst, hostsim.RenderRequest{}))
		})
	}
}

func TestRenderPanicIsRecovered(t *testing.T) {
	tt := []struct {
		name   string
		value  interface{}
		status types.Status
	}{
		{"string", "boom", types.StatFailed},
		{"memory", errors.ErrMemory, types.StatErrMemory},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
				e.On("Render", mock.Anything).Run(func(mock.Arguments) { panic(tc.value) }).Return(nil)
			}}
			env := setupLibrary(t, nil, p)
			inst := setupInstance(t, env)

			require.Equal(t, tc.status, env.client.Render(inst, hostsim.RenderRequest{}))
			require.Equal(t, 1, env.log.Count("ERROR", "handler panic"))
		})
	}
}

func TestMemoryFailureFromHostSuite(t *testing.T) {
	c := hostsim.DefaultConfig("small")
	c.MemoryLimit = 16

	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.On("Render", mock.Anything).Return(nil).Run(func(mock.Arguments) {
			m, err := e.Memory()
			if err != nil {
				panic(err)
			}

			if _, err := m.Alloc(1024, e.Handle()); err != nil {
				panic(err)
			}
		})
	}}
	env := setupLibrary(t, c, p)
	inst := setupInstance(t, env)

	require.Equal(t, types.StatErrMemory, env.client.Render(inst, hostsim.RenderRequest{}))
	require.Equal(t, 0, env.host.Allocated())
}

func TestIsIdentityWritesClipAndTime(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.identity = "Source"
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	st, name, tm := env.client.IsIdentity(inst, hostsim.RenderRequest{Time: 7.5})
	require.Equal(t, types.StatOK, st)
	require.Equal(t, "Source", name)
	require.Equal(t, 7.5, tm)
}

func identityOut(t float64) *hostsim.PropertySet {
	return hostsim.NewPropertySet().
		Declare(property.Name, hostsim.KindString, "").
		Declare(property.Time, hostsim.KindDouble, t)
}

func TestIsIdentityDeclinedRepliesDefault(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	inst := setupInstance(t, env)

	st, name, tm := env.client.IsIdentity(inst, hostsim.RenderRequest{Time: 2})
	require.Equal(t, types.StatReplyDefault, st)
	require.Equal(t, "", name)
	require.Equal(t, 2.0, tm)

	out := identityOut(4)
	before := out.Snapshot()
	require.Equal(t, types.StatReplyDefault, env.client.Call(types.ActionIsIdentity, inst, renderIn("OfxImageFieldNone"), out))
	require.Empty(t, cmpSnapshots(before, out.Snapshot()))
}

func TestIsIdentityWithoutClipRepliesDefault(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.noClip = true
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	out := identityOut(4)
	before := out.Snapshot()
	require.Equal(t, types.StatReplyDefault, env.client.Call(types.ActionIsIdentity, inst, renderIn("OfxImageFieldNone"), out))
	require.Empty(t, cmpSnapshots(before, out.Snapshot()))
	require.Equal(t, 1, env.log.Count("ERROR", "did not name a clip"))
}

func TestRegionsOfInterestWritesEveryDeclaredClip(t *testing.T) {
	src := types.RectD{X1: 0, Y1: 0, X2: 100, Y2: 100}
	matte := types.RectD{X1: 10, Y1: 20, X2: 30, Y2: 40}

	p := &testPlugin{clips: []string{"Source", "Matte"}, setup: func(e *testEffect) {
		e.roiOrder = []string{"Source", "Matte"}
		e.rois = map[string]types.RectD{"Source": src, "Matte": matte}
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	st, rois := env.client.GetRegionsOfInterest(inst, 1, types.PointD{X: 1, Y: 1}, types.RectD{X2: 50, Y2: 50})
	require.Equal(t, types.StatOK, st)
	require.Equal(t, src, rois["Source"])
	require.Equal(t, matte, rois["Matte"])
}

func TestRegionsOfInterestWithoutRegionsLeavesOutUntouched(t *testing.T) {
	env := setupLibrary(t, nil, &testPlugin{clips: []string{"Source"}})
	inst := setupInstance(t, env)

	in := hostsim.NewPropertySet().
		Declare(property.Time, hostsim.KindDouble, 1.0).
		Declare(property.EffectRenderScale, hostsim.KindDouble, 1.0, 1.0).
		Declare(property.EffectRegionOfInterest, hostsim.KindDouble, 0.0, 0.0, 8.0, 8.0)
	out := hostsim.NewPropertySet().
		Declare(property.PerClip(property.ClipRoIPrefix, "Source"), hostsim.KindDouble, 0.0, 0.0, 8.0, 8.0)

	before := out.Snapshot()
	require.Equal(t, types.StatReplyDefault, env.client.Call(types.ActionGetRegionsOfInterest, inst, in, out))
	require.Empty(t, cmpSnapshots(before, out.Snapshot()))
}

func TestFramesNeededFlattensRanges(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.frames = []types.RangeD{{Min: 1, Max: 5}, {Min: 10, Max: 12}}
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	st, frames := env.client.GetFramesNeeded(inst, 3)
	require.Equal(t, types.StatOK, st)
	require.Equal(t, []types.RangeD{{Min: 1, Max: 5}, {Min: 10, Max: 12}}, frames["Source"])
}

func TestFramesNeededWithoutRangesRepliesDefault(t *testing.T) {
	env := setupLibrary(t, nil, &testPlugin{clips: []string{"Source"}})
	inst := setupInstance(t, env)

	in := hostsim.NewPropertySet().Declare(property.Time, hostsim.KindDouble, 3.0)
	out := hostsim.NewPropertySet().
		Declare(property.PerClip(property.ClipFrameRangePrefix, "Source"), hostsim.KindDouble, 3.0, 3.0)

	before := out.Snapshot()
	require.Equal(t, types.StatReplyDefault, env.client.Call(types.ActionGetFramesNeeded, inst, in, out))
	require.Empty(t, cmpSnapshots(before, out.Snapshot()))
}

func TestInstanceChangedDispatchesOnType(t *testing.T) {
	p := &testPlugin{clips: []string{"Source"}, setup: func(e *testEffect) {
		e.On("ChangedParam", types.ChangeUserEdited, "width").Return(nil)
	}}
	env := setupLibrary(t, nil, p)
	inst := setupInstance(t, env)

	st := env.client.InstanceChanged(inst, hostsim.ChangeRequest{
		Type:   property.TypeParameter,
		Name:   "width",
		Reason: types.ChangeUserEdited,
		Scale:  types.PointD{X: 1, Y: 1},
	})
	require.Equal(t, types.StatOK, st)
	p.instance.AssertExpectations(t)

	st = env.client.InstanceChanged(inst, hostsim.ChangeRequest{
		Type:   "OfxTypeBogus",
		Name:   "width",
		Reason: types.ChangeUserEdited,
		Scale:  types.PointD{X: 1, Y: 1},
	})
	require.Equal(t, types.StatReplyDefault, st)
	require.Equal(t, 1, env.log.Count("ERROR", "unknown object type"))
}

func TestTimeDomainOutsideGeneralContextIsLogged(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	inst := setupInstance(t, env)

	st, _ := env.client.GetTimeDomain(inst)
	require.Equal(t, types.StatReplyDefault, st)
	require.Equal(t, 1, env.log.Count("ERROR", "not in the general context"))
}

func TestInstanceActionsWithDefaults(t *testing.T) {
	env := setupLibrary(t, nil, nil)
	inst := setupInstance(t, env)

	require.Equal(t, types.StatOK, env.client.PurgeCaches(inst))
	require.Equal(t, types.StatOK, env.client.SyncPrivateData(inst))
	require.Equal(t, types.StatOK, env.client.BeginEdit(inst))
	require.Equal(t, types.StatOK, env.client.EndEdit(inst))
	require.Equal(t, types.StatOK, env.client.BeginInstanceChanged(inst, types.ChangePluginEdited))
	require.Equal(t, types.StatOK, env.client.EndInstanceChanged(inst, types.ChangeTime))
	require.Equal(t, types.StatOK, env.client.BeginSequenceRender(inst, hostsim.SequenceRequest{Range: types.RangeD{Min: 1, Max: 10}, Step: 1}))
	require.Equal(t, types.StatOK, env.client.EndSequenceRender(inst, hostsim.SequenceRequest{Range: types.RangeD{Min: 1, Max: 10}, Step: 1}))

	st, _ := env.client.GetRegionOfDefinition(inst, 1, types.PointD{X: 1, Y: 1})
	require.Equal(t, types.StatReplyDefault, st)

	st, _ = env.client.GetClipPreferences(inst)
	require.Equal(t, types.StatReplyDefault, st)
}
