package types

// Actions a host may pass to a plugin's main entry point
const (
	ActionLoad                   = "OfxActionLoad"
	ActionUnload                 = "OfxActionUnload"
	ActionDescribe               = "OfxActionDescribe"
	ActionDescribeInContext      = "OfxImageEffectActionDescribeInContext"
	ActionCreateInstance         = "OfxActionCreateInstance"
	ActionDestroyInstance        = "OfxActionDestroyInstance"
	ActionRender                 = "OfxImageEffectActionRender"
	ActionBeginSequenceRender    = "OfxImageEffectActionBeginSequenceRender"
	ActionEndSequenceRender      = "OfxImageEffectActionEndSequenceRender"
	ActionIsIdentity             = "OfxImageEffectActionIsIdentity"
	ActionGetRegionOfDefinition  = "OfxImageEffectActionGetRegionOfDefinition"
	ActionGetRegionsOfInterest   = "OfxImageEffectActionGetRegionsOfInterest"
	ActionGetFramesNeeded        = "OfxImageEffectActionGetFramesNeeded"
	ActionGetClipPreferences     = "OfxImageEffectActionGetClipPreferences"
	ActionGetTimeDomain          = "OfxImageEffectActionGetTimeDomain"
	ActionPurgeCaches            = "OfxActionPurgeCaches"
	ActionSyncPrivateData        = "OfxActionSyncPrivateData"
	ActionInstanceChanged        = "OfxActionInstanceChanged"
	ActionBeginInstanceChanged   = "OfxActionBeginInstanceChanged"
	ActionEndInstanceChanged     = "OfxActionEndInstanceChanged"
	ActionBeginInstanceEdit      = "OfxActionBeginInstanceEdit"
	ActionEndInstanceEdit        = "OfxActionEndInstanceEdit"
)
