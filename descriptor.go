package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
)

// ImageEffectDescriptor describes the plugin to the host during the describe
// actions, it is only valid for the call it was passed to
type ImageEffectDescriptor struct {
	lib    *Library
	handle suite.EffectHandle
	props  *property.Set

	contexts    int
	pixelDepths int
}

func newImageEffectDescriptor(l *Library, h suite.EffectHandle, props *property.Set) *ImageEffectDescriptor {
	return &ImageEffectDescriptor{lib: l, handle: h, props: props}
}

// Props returns the descriptor's property set
func (d *ImageEffectDescriptor) Props() *property.Set {
	return d.props
}

// SetLabels sets the label shown by the host in its menus
func (d *ImageEffectDescriptor) SetLabels(label, shortLabel, longLabel string) error {
	if err := d.props.SetString(property.Label, label, 0); err != nil {
		return err
	}

	if err := d.props.SetString(property.ShortLabel, shortLabel, 0); err != nil {
		return err
	}

	return d.props.SetString(property.LongLabel, longLabel, 0)
}

// SetPluginGrouping sets the menu group, i.e. "Transform/Crop"
func (d *ImageEffectDescriptor) SetPluginGrouping(group string) error {
	return d.props.SetString(property.EffectPluginGrouping, group, 0)
}

// AddSupportedContext adds ctx to the contexts the plugin can be used in
func (d *ImageEffectDescriptor) AddSupportedContext(ctx types.Context) error {
	if err := d.props.SetString(property.EffectSupportedContexts, ctx.String(), d.contexts); err != nil {
		return err
	}

	d.contexts++
	return nil
}

// AddSupportedBitDepth adds depth to the pixel depths the plugin can process
func (d *ImageEffectDescriptor) AddSupportedBitDepth(depth types.BitDepth) error {
	if err := d.props.SetString(property.EffectSupportedPixelDepths, depth.String(), d.pixelDepths); err != nil {
		return err
	}

	d.pixelDepths++
	return nil
}

// SetSingleInstance restricts the host to one instance of the plugin
func (d *ImageEffectDescriptor) SetSingleInstance(v bool) error {
	return d.props.SetBool(property.EffectSingleInstance, v, 0)
}

// SetHostFrameThreading asks the host to render frames on its own threads
func (d *ImageEffectDescriptor) SetHostFrameThreading(v bool) error {
	return d.props.SetBool(property.EffectHostFrameThreading, v, 0)
}

// SetSupportsMultiResolution declares support for clips of differing
// resolutions
func (d *ImageEffectDescriptor) SetSupportsMultiResolution(v bool) error {
	return d.props.SetBool(property.EffectSupportsMultiRes, v, 0)
}

// SetSupportsTiles declares support for rendering tiles
func (d *ImageEffectDescriptor) SetSupportsTiles(v bool) error {
	return d.props.SetBool(property.EffectSupportsTiles, v, 0)
}

// SetTemporalClipAccess declares the plugin fetches frames other than the
// current one
func (d *ImageEffectDescriptor) SetTemporalClipAccess(v bool) error {
	return d.props.SetBool(property.EffectTemporalClipAccess, v, 0)
}

// SetSupportsMultipleClipDepths declares support for clips of differing
// pixel depths
func (d *ImageEffectDescriptor) SetSupportsMultipleClipDepths(v bool) error {
	return d.props.SetBool(property.EffectSupportsMultiDepths, v, 0)
}

// SetSupportsMultipleClipPARs declares support for clips of differing pixel
// aspect ratios
func (d *ImageEffectDescriptor) SetSupportsMultipleClipPARs(v bool) error {
	return d.props.SetBool(property.EffectSupportsMultiPARs, v, 0)
}

// SetRenderThreadSafety declares how many renders may run at once
func (d *ImageEffectDescriptor) SetRenderThreadSafety(s types.RenderThreadSafety) error {
	return d.props.SetString(property.EffectRenderThreadSafety, s.String(), 0)
}

// SetSupportsOverlays declares that the plugin draws overlays, hosts without
// overlay support ignore it
func (d *ImageEffectDescriptor) SetSupportsOverlays(v bool) error {
	if desc := d.lib.HostDescription(); desc != nil && !desc.SupportsOverlays {
		d.lib.log.Warn("host does not support overlays", "host", desc.HostName)
	}

	return d.props.SetBool(property.EffectSupportsOverlays, v, 0)
}

// DefineClip defines a clip on the effect, name is used verbatim
func (d *ImageEffectDescriptor) DefineClip(name string) (*ClipDescriptor, error) {
	t, err := d.lib.requireTables()
	if err != nil {
		return nil, err
	}

	h, st := t.Effect.ClipDefine(d.handle, name)
	if err := errors.FromStatus(st); err != nil {
		return nil, err
	}

	return &ClipDescriptor{name: name, props: property.NewSet(t.Property, h)}, nil
}

// ClipDescriptor describes a clip during describe in context
type ClipDescriptor struct {
	name  string
	props *property.Set

	components int
}

// Name returns the clip name
func (c *ClipDescriptor) Name() string {
	return c.name
}

// Props returns the clip descriptor's property set
func (c *ClipDescriptor) Props() *property.Set {
	return c.props
}

// AddSupportedComponent adds comps to the pixel components the clip accepts
func (c *ClipDescriptor) AddSupportedComponent(comps types.Components) error {
	if err := c.props.SetString(property.EffectSupportedComponents, comps.String(), c.components); err != nil {
		return err
	}

	c.components++
	return nil
}

// SetOptional marks the clip as not needing to be connected
func (c *ClipDescriptor) SetOptional(v bool) error {
	return c.props.SetBool(property.ClipOptional, v, 0)
}

// SetIsMask marks the clip as a mask input
func (c *ClipDescriptor) SetIsMask(v bool) error {
	return c.props.SetBool(property.ClipIsMask, v, 0)
}

// SetSupportsTiles declares the clip accepts tiled images
func (c *ClipDescriptor) SetSupportsTiles(v bool) error {
	return c.props.SetBool(property.EffectSupportsTiles, v, 0)
}

// SetTemporalClipAccess declares the plugin fetches other frames from the
// clip
func (c *ClipDescriptor) SetTemporalClipAccess(v bool) error {
	return c.props.SetBool(property.EffectTemporalClipAccess, v, 0)
}
