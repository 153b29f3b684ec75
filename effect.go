package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
)

// PluginID identifies the plugin to the host
type PluginID struct {
	Identifier   string
	VersionMajor int
	VersionMinor int
}

// Plugin is implemented by the plugin author, a library serves exactly one
// plugin
type Plugin interface {
	ID() PluginID
	// Load is called once the suites have been negotiated
	Load() error
	// Unload is called before the suites are released
	Unload()
	Describe(desc *ImageEffectDescriptor) error
	DescribeInContext(desc *ImageEffectDescriptor, ctx types.Context) error
	// CreateInstance returns the instance for base, the returned value is
	// published on the instance handle by the library
	CreateInstance(base *EffectBase) (ImageEffect, error)
}

// ImageEffect is a live plugin instance. Embedding *EffectBase provides a
// default for every method except Render.
type ImageEffect interface {
	Context() types.Context

	Render(args RenderArguments) error
	BeginSequenceRender(args SequenceRenderArguments) error
	EndSequenceRender(args SequenceRenderArguments) error

	// IsIdentity returns true if the output at args.Time is the clip and
	// time set in identity, identity.Time is preset to args.Time
	IsIdentity(args RenderArguments, identity *Identity) (bool, error)
	// GetRegionOfDefinition returns true if rod was set
	GetRegionOfDefinition(args RegionOfDefinitionArguments, rod *types.RectD) (bool, error)
	GetRegionsOfInterest(args RegionsOfInterestArguments, rois RegionOfInterestSetter) error
	GetFramesNeeded(args FramesNeededArguments, frames FramesNeededSetter) error
	GetClipPreferences(prefs ClipPreferencesSetter) error
	// GetTimeDomain returns true if rng was set, only general context
	// effects are asked
	GetTimeDomain(rng *types.RangeD) (bool, error)

	PurgeCaches() error
	SyncPrivateData() error

	BeginChanged(reason types.ChangeReason) error
	EndChanged(reason types.ChangeReason) error
	ChangedParam(args InstanceChangedArguments, name string) error
	ChangedClip(args InstanceChangedArguments, name string) error

	BeginEdit() error
	EndEdit() error

	// Destroy releases the instance, no further action is sent for it
	Destroy() error
}

// Identity is the clip and time an identity effect passes through
type Identity struct {
	Clip string
	Time float64
}

// Clip is an instance's view of one of its clips
type Clip struct {
	Name   string
	Handle suite.ClipHandle
	Props  *property.Set
}

// EffectBase holds the instance handle and the library's suites, plugin
// instances embed it
type EffectBase struct {
	lib     *Library
	handle  suite.EffectHandle
	props   *property.Set
	context types.Context
}

// Handle returns the instance handle
func (e *EffectBase) Handle() suite.EffectHandle {
	return e.handle
}

// Props returns the instance property set
func (e *EffectBase) Props() *property.Set {
	return e.props
}

// Context returns the context the instance was created for
func (e *EffectBase) Context() types.Context {
	return e.context
}

// HostDescription returns the capabilities of the host running the instance
func (e *EffectBase) HostDescription() *suite.HostDescription {
	return e.lib.HostDescription()
}

// Tables returns the negotiated suites
func (e *EffectBase) Tables() *suite.Tables {
	return e.lib.Tables()
}

// IsInteractive returns true when the instance is running in an interactive
// session
func (e *EffectBase) IsInteractive() (bool, error) {
	v, err := e.props.GetIntDefault(property.IsInteractive, 0, 0)
	return v != 0, err
}

// FetchClip returns the named clip of the instance
func (e *EffectBase) FetchClip(name string) (*Clip, error) {
	t, err := e.lib.requireTables()
	if err != nil {
		return nil, err
	}

	h, props, st := t.Effect.ClipGetHandle(e.handle, name)
	if err := errors.FromStatus(st); err != nil {
		return nil, err
	}

	return &Clip{Name: name, Handle: h, Props: property.NewSet(t.Property, props)}, nil
}

// ParamSet returns the parameter set handle of the instance
func (e *EffectBase) ParamSet() (suite.ParamSetHandle, error) {
	t, err := e.lib.requireTables()
	if err != nil {
		return nil, err
	}

	ps, st := t.Effect.GetParamSet(e.handle)
	return ps, errors.FromStatus(st)
}

// AbortRender returns true if the host wants the current render stopped
func (e *EffectBase) AbortRender() bool {
	t := e.lib.Tables()
	if t == nil {
		return false
	}

	return t.Effect.AbortRender(e.handle)
}

// SendMessage posts a message to the user about this instance
func (e *EffectBase) SendMessage(messageType, id, format string, args ...interface{}) types.Status {
	return e.lib.Tables().SendMessage(e.handle, messageType, id, format, args...)
}

// Memory returns an allocator bound to the host's memory suite
func (e *EffectBase) Memory() (*suite.Memory, error) {
	t, err := e.lib.requireTables()
	if err != nil {
		return nil, err
	}

	return suite.NewMemory(t.Memory), nil
}

// MultiThread runs fn on n host threads, n <= 0 lets the host decide
func (e *EffectBase) MultiThread(fn suite.ThreadFunc, n int) error {
	t, err := e.lib.requireTables()
	if err != nil {
		return err
	}

	return errors.FromStatus(t.Thread.MultiThread(fn, n))
}

// BeginSequenceRender does nothing by default.
func (e *EffectBase) BeginSequenceRender(args SequenceRenderArguments) error {
	return nil
}

// EndSequenceRender does nothing by default.
func (e *EffectBase) EndSequenceRender(args SequenceRenderArguments) error {
	return nil
}

// IsIdentity reports that the effect is never an identity by default.
func (e *EffectBase) IsIdentity(args RenderArguments, identity *Identity) (bool, error) {
	return false, nil
}

// GetRegionOfDefinition leaves the host's region of definition in place.
func (e *EffectBase) GetRegionOfDefinition(args RegionOfDefinitionArguments, rod *types.RectD) (bool, error) {
	return false, nil
}

// GetRegionsOfInterest declares no regions, so the host defaults apply.
func (e *EffectBase) GetRegionsOfInterest(args RegionsOfInterestArguments, rois RegionOfInterestSetter) error {
	return nil
}

// GetFramesNeeded declares no frame ranges, so the host defaults apply.
func (e *EffectBase) GetFramesNeeded(args FramesNeededArguments, frames FramesNeededSetter) error {
	return nil
}

// GetClipPreferences keeps every host preference.
func (e *EffectBase) GetClipPreferences(prefs ClipPreferencesSetter) error {
	return nil
}

// GetTimeDomain leaves the time domain to the host.
func (e *EffectBase) GetTimeDomain(rng *types.RangeD) (bool, error) {
	return false, nil
}

// PurgeCaches does nothing by default.
func (e *EffectBase) PurgeCaches() error { return nil }

// SyncPrivateData does nothing by default.
func (e *EffectBase) SyncPrivateData() error { return nil }

// BeginEdit does nothing by default.
func (e *EffectBase) BeginEdit() error { return nil }

// EndEdit does nothing by default.
func (e *EffectBase) EndEdit() error { return nil }

// Destroy releases nothing by default.
func (e *EffectBase) Destroy() error { return nil }

// BeginChanged does nothing by default.
func (e *EffectBase) BeginChanged(reason types.ChangeReason) error {
	return nil
}

// EndChanged does nothing by default.
func (e *EffectBase) EndChanged(reason types.ChangeReason) error {
	return nil
}

// ChangedParam ignores parameter changes by default.
func (e *EffectBase) ChangedParam(args InstanceChangedArguments, name string) error {
	return nil
}

// ChangedClip ignores clip changes by default.
func (e *EffectBase) ChangedClip(args InstanceChangedArguments, name string) error {
	return nil
}
