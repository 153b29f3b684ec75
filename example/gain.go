// Package example is a small gain effect built on ofxsupport, it is used by
// ofxprobe and shows how a plugin embeds EffectBase.
package example

import (
	"fmt"
	"sync/atomic"

	"github.com/jumppad-labs/ofxsupport"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
)

const (
	Identifier = "net.jumppad.gain"

	SourceClip = "Source"
	MatteClip  = "Matte"
	OutputClip = "Output"
)

// Gain multiplies the source clip by a constant, a matte limits the
// effect in the general context
type Gain struct {
	// Gain is the multiplier, 1 makes the effect an identity
	Gain float64
	// Border is the number of pixels around the render window read from
	// the source at full resolution
	Border float64
	// Temporal averages the frames either side of the current frame
	Temporal bool

	loaded int
}

// New returns a Gain plugin
func New(gain float64) *Gain {
	return &Gain{Gain: gain}
}

func (g *Gain) ID() ofxsupport.PluginID {
	return ofxsupport.PluginID{Identifier: Identifier, VersionMajor: 1, VersionMinor: 0}
}

func (g *Gain) Load() error {
	g.loaded++
	return nil
}

func (g *Gain) Unload() {
	g.loaded--
}

// Loaded returns true between the load and unload actions
func (g *Gain) Loaded() bool {
	return g.loaded > 0
}

func (g *Gain) Describe(desc *ofxsupport.ImageEffectDescriptor) error {
	steps := []func() error{
		func() error { return desc.SetLabels("Gain", "Gain", "Gain with optional matte") },
		func() error { return desc.SetPluginGrouping("Color") },
		func() error { return desc.AddSupportedContext(types.ContextFilter) },
		func() error { return desc.AddSupportedContext(types.ContextGeneral) },
		func() error { return desc.AddSupportedBitDepth(types.BitDepthByte) },
		func() error { return desc.AddSupportedBitDepth(types.BitDepthFloat) },
		func() error { return desc.SetSupportsTiles(true) },
		func() error { return desc.SetTemporalClipAccess(g.Temporal) },
		func() error { return desc.SetRenderThreadSafety(types.RenderFullySafe) },
		func() error { return desc.SetHostFrameThreading(false) },
	}

	for _, s := range steps {
		if err := s(); err != nil {
			return err
		}
	}

	return nil
}

func (g *Gain) DescribeInContext(desc *ofxsupport.ImageEffectDescriptor, ctx types.Context) error {
	src, err := desc.DefineClip(SourceClip)
	if err != nil {
		return err
	}

	if err := src.AddSupportedComponent(types.ComponentRGBA); err != nil {
		return err
	}

	if err := src.SetTemporalClipAccess(g.Temporal); err != nil {
		return err
	}

	out, err := desc.DefineClip(OutputClip)
	if err != nil {
		return err
	}

	if err := out.AddSupportedComponent(types.ComponentRGBA); err != nil {
		return err
	}

	if ctx != types.ContextGeneral {
		return nil
	}

	matte, err := desc.DefineClip(MatteClip)
	if err != nil {
		return err
	}

	if err := matte.AddSupportedComponent(types.ComponentAlpha); err != nil {
		return err
	}

	if err := matte.SetOptional(true); err != nil {
		return err
	}

	return matte.SetIsMask(true)
}

func (g *Gain) CreateInstance(base *ofxsupport.EffectBase) (ofxsupport.ImageEffect, error) {
	src, err := base.FetchClip(SourceClip)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch source clip: %w", err)
	}

	e := &GainEffect{EffectBase: base, plugin: g, source: src}

	if base.Context() == types.ContextGeneral {
		if e.matte, err = base.FetchClip(MatteClip); err != nil {
			return nil, fmt.Errorf("unable to fetch matte clip: %w", err)
		}
	}

	return e, nil
}

// GainEffect is a live gain instance
type GainEffect struct {
	*ofxsupport.EffectBase

	plugin *Gain
	source *ofxsupport.Clip
	matte  *ofxsupport.Clip

	rows      atomic.Int64
	sequences int
}

// InSequence returns true between begin and end sequence render
func (e *GainEffect) InSequence() bool {
	return e.sequences > 0
}

// RowsRendered returns the number of rows processed by every render so far
func (e *GainEffect) RowsRendered() int64 {
	return e.rows.Load()
}

// Render splits the render window into bands, one per host thread, using a
// scratch row per band allocated from the host
func (e *GainEffect) Render(args ofxsupport.RenderArguments) error {
	if args.RenderWindow.Empty() {
		return nil
	}

	mem, err := e.Memory()
	if err != nil {
		return err
	}

	// four float channels per pixel
	scratch, err := mem.Alloc(args.RenderWindow.Width()*4*4, e.Handle())
	if err != nil {
		return err
	}
	defer mem.Free(scratch)

	height := args.RenderWindow.Height()

	var aborted atomic.Bool
	err = e.MultiThread(func(index, count int) {
		for y := index; y < height; y += count {
			if e.AbortRender() {
				aborted.Store(true)
				return
			}

			e.rows.Add(1)
		}
	}, 0)
	if err != nil {
		return err
	}

	if aborted.Load() {
		e.SendMessage(suite.MessageLog, "", "render of frame %g aborted", args.Time)
	}

	return nil
}

func (e *GainEffect) BeginSequenceRender(args ofxsupport.SequenceRenderArguments) error {
	e.sequences++
	return nil
}

func (e *GainEffect) EndSequenceRender(args ofxsupport.SequenceRenderArguments) error {
	e.sequences--
	return nil
}

func (e *GainEffect) IsIdentity(args ofxsupport.RenderArguments, id *ofxsupport.Identity) (bool, error) {
	if e.plugin.Gain != 1 {
		return false, nil
	}

	id.Clip = SourceClip
	return true, nil
}

func (e *GainEffect) GetRegionsOfInterest(args ofxsupport.RegionsOfInterestArguments, rois ofxsupport.RegionOfInterestSetter) error {
	if e.plugin.Border == 0 && e.matte == nil {
		return nil
	}

	bx := e.plugin.Border * args.RenderScale.X
	by := e.plugin.Border * args.RenderScale.Y

	roi := args.RegionOfInterest
	rois.SetRegionOfInterest(SourceClip, types.RectD{X1: roi.X1 - bx, Y1: roi.Y1 - by, X2: roi.X2 + bx, Y2: roi.Y2 + by})

	if e.matte != nil {
		rois.SetRegionOfInterest(MatteClip, roi)
	}

	return nil
}

func (e *GainEffect) GetFramesNeeded(args ofxsupport.FramesNeededArguments, frames ofxsupport.FramesNeededSetter) error {
	if !e.plugin.Temporal {
		return nil
	}

	frames.SetFramesNeeded(SourceClip, types.RangeD{Min: args.Time - 1, Max: args.Time + 1})
	return nil
}

func (e *GainEffect) GetClipPreferences(prefs ofxsupport.ClipPreferencesSetter) error {
	prefs.SetOutputPreMultiplication(types.ImagePreMultiplied)

	if e.matte != nil {
		prefs.SetClipComponents(MatteClip, types.ComponentAlpha)
	}

	return nil
}

func (e *GainEffect) ChangedParam(args ofxsupport.InstanceChangedArguments, name string) error {
	if st := e.SendMessage(suite.MessageLog, "", "parameter %s changed at %g", name, args.Time); st != types.StatOK {
		return fmt.Errorf("unable to post message: %s", st)
	}

	return nil
}
