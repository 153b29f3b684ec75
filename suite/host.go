package suite

import (
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// ImageEffectPluginAPI is the API name every image effect plugin reports
const ImageEffectPluginAPI = "OfxImageEffectPluginAPI"

// Host is what the host hands the plugin before loading it
type Host struct {
	// Props is the host's own property set describing its capabilities
	Props property.Handle
	// FetchSuite returns the named function table or nil if the host does not
	// provide it at that version
	FetchSuite func(name string, version int) interface{}
}

// EntryFunc is the plugin's main entry point
type EntryFunc func(action string, handle interface{}, inArgs, outArgs property.Handle) types.Status

// Plugin is the record a plugin exports to the host
type Plugin struct {
	API          string
	APIVersion   int
	Identifier   string
	VersionMajor int
	VersionMinor int
	SetHost      func(h *Host)
	MainEntry    EntryFunc
}
