package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// ClipPreferencesSetter records the clip preferences an effect asks the host
// for, anything not set is left to the host
type ClipPreferencesSetter interface {
	SetClipComponents(clip string, c types.Components)
	SetClipBitDepth(clip string, d types.BitDepth)
	SetPixelAspectRatio(clip string, par float64)
	SetOutputFrameRate(rate float64)
	SetOutputPreMultiplication(p types.PreMultiplication)
	SetOutputFielding(f types.Field)
	SetOutputHasContinuousSamples(v bool)
	SetOutputFrameVarying(v bool)
}

type clipPreference struct {
	name  string
	value interface{}
}

// clipPreferences is created for a single clip preferences action, values
// are kept in the order they were set
type clipPreferences struct {
	prefs []clipPreference
}

func (c *clipPreferences) set(name string, value interface{}) {
	for i := range c.prefs {
		if c.prefs[i].name == name {
			c.prefs[i].value = value
			return
		}
	}

	c.prefs = append(c.prefs, clipPreference{name: name, value: value})
}

func (c *clipPreferences) SetClipComponents(clip string, comps types.Components) {
	c.set(property.PerClip(property.ClipComponentsPrefix, clip), comps.String())
}

func (c *clipPreferences) SetClipBitDepth(clip string, d types.BitDepth) {
	c.set(property.PerClip(property.ClipDepthPrefix, clip), d.String())
}

func (c *clipPreferences) SetPixelAspectRatio(clip string, par float64) {
	c.set(property.PerClip(property.ClipPARPrefix, clip), par)
}

func (c *clipPreferences) SetOutputFrameRate(rate float64) {
	c.set(property.EffectFrameRate, rate)
}

func (c *clipPreferences) SetOutputPreMultiplication(p types.PreMultiplication) {
	c.set(property.EffectPreMultiplication, p.String())
}

func (c *clipPreferences) SetOutputFielding(f types.Field) {
	c.set(property.ClipFieldOrder, f.String())
}

func (c *clipPreferences) SetOutputHasContinuousSamples(v bool) {
	c.set(property.ClipContinuousSamples, v)
}

func (c *clipPreferences) SetOutputFrameVarying(v bool) {
	c.set(property.EffectFrameVarying, v)
}

// write sets every recorded preference, returns false when nothing was set
func (c *clipPreferences) write(out *property.Set) (bool, error) {
	for _, p := range c.prefs {
		var err error

		switch v := p.value.(type) {
		case string:
			err = out.SetString(p.name, v, 0)
		case float64:
			err = out.SetDouble(p.name, v, 0)
		case bool:
			err = out.SetBool(p.name, v, 0)
		}

		if err != nil {
			return false, err
		}
	}

	return len(c.prefs) > 0, nil
}
