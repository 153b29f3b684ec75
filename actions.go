package ofxsupport

import (
	"sort"

	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// presence is whether a pointer passed to the main entry may be null
type presence int

const (
	// optional pointers are not checked
	optional presence = iota
	// required pointers fail the action with a bad handle status when null
	required
	// forbidden pointers should be null, a non null value is only logged
	forbidden
)

// policy is the presence rule for the handle, inArgs and outArgs of an action
type policy struct {
	handle presence
	in     presence
	out    presence
}

// call is a single main entry invocation
type call struct {
	action string
	handle interface{}
	in     property.Handle
	out    property.Handle
}

// handler runs an action, returning false means the plugin declined to act
// and the host is told to apply its default
type handler func(l *Library, c *call) (bool, error)

type action struct {
	policy  policy
	handler handler
}

// actions is the closed table of actions the library understands
var actions = map[string]action{
	types.ActionLoad:                  {policy{optional, optional, optional}, loadAction},
	types.ActionUnload:                {policy{forbidden, forbidden, forbidden}, unloadAction},
	types.ActionDescribe:              {policy{required, forbidden, forbidden}, describeAction},
	types.ActionDescribeInContext:     {policy{required, required, forbidden}, describeInContextAction},
	types.ActionCreateInstance:        {policy{required, forbidden, forbidden}, createInstanceAction},
	types.ActionDestroyInstance:       {policy{required, forbidden, forbidden}, destroyInstanceAction},
	types.ActionRender:                {policy{required, required, forbidden}, renderAction},
	types.ActionBeginSequenceRender:   {policy{required, required, forbidden}, beginSequenceRenderAction},
	types.ActionEndSequenceRender:     {policy{required, required, forbidden}, endSequenceRenderAction},
	types.ActionIsIdentity:            {policy{required, required, required}, isIdentityAction},
	types.ActionGetRegionOfDefinition: {policy{required, required, required}, regionOfDefinitionAction},
	types.ActionGetRegionsOfInterest:  {policy{required, required, required}, regionsOfInterestAction},
	types.ActionGetFramesNeeded:       {policy{required, required, required}, framesNeededAction},
	types.ActionGetClipPreferences:    {policy{required, forbidden, required}, clipPreferencesAction},
	types.ActionPurgeCaches:           {policy{required, forbidden, forbidden}, purgeCachesAction},
	types.ActionSyncPrivateData:       {policy{required, forbidden, forbidden}, syncPrivateDataAction},
	types.ActionGetTimeDomain:         {policy{required, forbidden, required}, timeDomainAction},
	types.ActionInstanceChanged:       {policy{required, required, forbidden}, instanceChangedAction},
	types.ActionBeginInstanceChanged:  {policy{required, required, forbidden}, beginInstanceChangedAction},
	types.ActionEndInstanceChanged:    {policy{required, required, forbidden}, endInstanceChangedAction},
	types.ActionBeginInstanceEdit:     {policy{required, forbidden, forbidden}, beginInstanceEditAction},
	types.ActionEndInstanceEdit:       {policy{required, forbidden, forbidden}, endInstanceEditAction},
}

// Actions returns the sorted names of every action the library handles
func Actions() []string {
	names := make([]string, 0, len(actions))
	for n := range actions {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
