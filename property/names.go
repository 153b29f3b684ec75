package property

// Generic properties
const (
	Name          = "OfxPropName"
	Label         = "OfxPropLabel"
	ShortLabel    = "OfxPropShortLabel"
	LongLabel     = "OfxPropLongLabel"
	Type          = "OfxPropType"
	Time          = "OfxPropTime"
	IsInteractive = "OfxPropIsInteractive"
	InstanceData  = "OfxPropInstanceData"
	ChangeReason  = "OfxPropChangeReason"
	APIVersion    = "OfxPropAPIVersion"
)

// Values of the Type property
const (
	TypeImageEffectHost     = "OfxTypeImageEffectHost"
	TypeImageEffect         = "OfxTypeImageEffect"
	TypeImageEffectInstance = "OfxTypeImageEffectInstance"
	TypeParameter           = "OfxTypeParameter"
	TypeClip                = "OfxTypeClip"
)

// Image effect properties
const (
	EffectContext              = "OfxImageEffectPropContext"
	EffectSupportedContexts    = "OfxImageEffectPropSupportedContexts"
	EffectSupportedPixelDepths = "OfxImageEffectPropSupportedPixelDepths"
	EffectSupportedComponents  = "OfxImageEffectPropSupportedComponents"
	EffectPluginGrouping       = "OfxImageEffectPluginPropGrouping"
	EffectSingleInstance       = "OfxImageEffectPluginPropSingleInstance"
	EffectHostFrameThreading   = "OfxImageEffectPluginPropHostFrameThreading"
	EffectRenderThreadSafety   = "OfxImageEffectPluginRenderThreadSafety"
	EffectSupportsMultiRes     = "OfxImageEffectPropSupportsMultiResolution"
	EffectSupportsTiles        = "OfxImageEffectPropSupportsTiles"
	EffectTemporalClipAccess   = "OfxImageEffectPropTemporalClipAccess"
	EffectSupportsMultiDepths  = "OfxImageEffectPropSupportsMultipleClipDepths"
	EffectSupportsMultiPARs    = "OfxImageEffectPropSupportsMultipleClipPARs"
	EffectSupportsOverlays     = "OfxImageEffectPropSupportsOverlays"
	EffectSetableFrameRate     = "OfxImageEffectPropSetableFrameRate"
	EffectSetableFielding      = "OfxImageEffectPropSetableFielding"
	EffectRenderScale          = "OfxImageEffectPropRenderScale"
	EffectRenderWindow         = "OfxImageEffectPropRenderWindow"
	EffectFieldToRender        = "OfxImageEffectPropFieldToRender"
	EffectFrameRange           = "OfxImageEffectPropFrameRange"
	EffectFrameStep            = "OfxImageEffectPropFrameStep"
	EffectFrameRate            = "OfxImageEffectPropFrameRate"
	EffectFrameVarying         = "OfxImageEffectFrameVarying"
	EffectPreMultiplication    = "OfxImageEffectPropPreMultiplication"
	EffectRegionOfDefinition   = "OfxImageEffectPropRegionOfDefinition"
	EffectRegionOfInterest     = "OfxImageEffectPropRegionOfInterest"
)

// Clip properties
const (
	ClipOptional          = "OfxImageClipPropOptional"
	ClipIsMask            = "OfxImageClipPropIsMask"
	ClipFieldOrder        = "OfxImageClipPropFieldOrder"
	ClipContinuousSamples = "OfxImageClipPropContinuousSamples"
)

// Prefixes of properties that are written once per named clip, the clip name
// is appended verbatim
const (
	ClipRoIPrefix        = "OfxImageClipPropRoI_"
	ClipFrameRangePrefix = "OfxImageClipPropFrameRange_"
	ClipComponentsPrefix = "OfxImageClipPropComponents_"
	ClipDepthPrefix      = "OfxImageClipPropDepth_"
	ClipPARPrefix        = "OfxImageClipPropPAR_"
)

// Host properties
const (
	HostIsBackground             = "OfxImageEffectHostPropIsBackground"
	HostSupportsStringAnimation  = "OfxParamHostPropSupportsStringAnimation"
	HostSupportsCustomInteract   = "OfxParamHostPropSupportsCustomInteract"
	HostSupportsChoiceAnimation  = "OfxParamHostPropSupportsChoiceAnimation"
	HostSupportsBooleanAnimation = "OfxParamHostPropSupportsBooleanAnimation"
	HostSupportsCustomAnimation  = "OfxParamHostPropSupportsCustomAnimation"
	HostMaxParameters            = "OfxParamHostPropMaxParameters"
	HostMaxPages                 = "OfxParamHostPropMaxPages"
	HostPageRowColumnCount       = "OfxParamHostPropPageRowColumnCount"
)

// PerClip builds the per clip property name for prefix and clip, the clip
// name is used as given by the host
func PerClip(prefix, clip string) string {
	return prefix + clip
}
