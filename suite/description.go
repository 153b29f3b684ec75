package suite

import (
	"github.com/jumppad-labs/ofxsupport/property"
)

// HostDescription is a snapshot of the host's capabilities, taken once when
// the plugin is loaded
type HostDescription struct {
	HostName                   string
	HostIsBackground           bool
	SupportsOverlays           bool
	SupportsMultiResolution    bool
	SupportsTiles              bool
	TemporalClipAccess         bool
	SupportsMultipleClipDepths bool
	SupportsMultipleClipPARs   bool
	SupportsSetableFrameRate   bool
	SupportsSetableFielding    bool
	SupportsStringAnimation    bool
	SupportsCustomInteract     bool
	SupportsChoiceAnimation    bool
	SupportsBooleanAnimation   bool
	SupportsCustomAnimation    bool
	MaxParameters              int
	MaxPages                   int
	PageRowCount               int
	PageColumnCount            int
}

// FetchHostDescription reads every capability from the host property set,
// all of them are mandatory
func FetchHostDescription(props *property.Set) (*HostDescription, error) {
	d := &HostDescription{}
	var err error

	if d.HostName, err = props.GetString(property.Name, 0); err != nil {
		return nil, err
	}

	bools := []struct {
		name string
		dest *bool
	}{
		{property.HostIsBackground, &d.HostIsBackground},
		{property.EffectSupportsOverlays, &d.SupportsOverlays},
		{property.EffectSupportsMultiRes, &d.SupportsMultiResolution},
		{property.EffectSupportsTiles, &d.SupportsTiles},
		{property.EffectTemporalClipAccess, &d.TemporalClipAccess},
		{property.EffectSupportsMultiDepths, &d.SupportsMultipleClipDepths},
		{property.EffectSupportsMultiPARs, &d.SupportsMultipleClipPARs},
		{property.EffectSetableFrameRate, &d.SupportsSetableFrameRate},
		{property.EffectSetableFielding, &d.SupportsSetableFielding},
		{property.HostSupportsStringAnimation, &d.SupportsStringAnimation},
		{property.HostSupportsCustomInteract, &d.SupportsCustomInteract},
		{property.HostSupportsChoiceAnimation, &d.SupportsChoiceAnimation},
		{property.HostSupportsBooleanAnimation, &d.SupportsBooleanAnimation},
		{property.HostSupportsCustomAnimation, &d.SupportsCustomAnimation},
	}

	for _, b := range bools {
		if *b.dest, err = props.GetBool(b.name, 0); err != nil {
			return nil, err
		}
	}

	if d.MaxParameters, err = props.GetInt(property.HostMaxParameters, 0); err != nil {
		return nil, err
	}

	if d.MaxPages, err = props.GetInt(property.HostMaxPages, 0); err != nil {
		return nil, err
	}

	if d.PageRowCount, err = props.GetInt(property.HostPageRowColumnCount, 0); err != nil {
		return nil, err
	}

	if d.PageColumnCount, err = props.GetInt(property.HostPageRowColumnCount, 1); err != nil {
		return nil, err
	}

	return d, nil
}
