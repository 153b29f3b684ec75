package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

func loadAction(l *Library, c *call) (bool, error) {
	return true, l.load()
}

func unloadAction(l *Library, c *call) (bool, error) {
	l.unload()
	return true, nil
}

// describeAction validates the descriptor before handing it to the plugin
func describeAction(l *Library, c *call) (bool, error) {
	props, err := l.effectProps(c.handle)
	if err != nil {
		return false, err
	}

	desc := newImageEffectDescriptor(l, c.handle, props)

	if v := l.validator(); v != nil {
		l.logValidation(v.ValidateDescriptor(props.Handle()))
	}

	return true, l.plugin.Describe(desc)
}

// describeInContextAction runs the general describe again before the
// context specific describe, as hosts may skip the describe action
func describeInContextAction(l *Library, c *call) (bool, error) {
	props, err := l.effectProps(c.handle)
	if err != nil {
		return false, err
	}

	desc := newImageEffectDescriptor(l, c.handle, props)
	if err := l.plugin.Describe(desc); err != nil {
		return false, err
	}

	in, err := l.propertySet(c.in)
	if err != nil {
		return false, err
	}

	ctx, err := contextFrom(in)
	if err != nil {
		return false, err
	}

	if v := l.validator(); v != nil {
		l.logValidation(v.ValidateDescriptor(props.Handle()))
	}

	return true, l.plugin.DescribeInContext(desc, ctx)
}

func contextFrom(props *property.Set) (types.Context, error) {
	str, err := props.GetString(property.EffectContext, 0)
	if err != nil {
		return types.ContextNone, err
	}

	ctx, err := types.ContextFromString(str)
	if err != nil {
		return types.ContextNone, errors.NewBadArgumentError(err)
	}

	return ctx, nil
}

// createInstanceAction builds the instance and publishes it on the handle,
// an instance that can not be published is destroyed again
func createInstanceAction(l *Library, c *call) (bool, error) {
	props, err := l.effectProps(c.handle)
	if err != nil {
		return false, err
	}

	ctx, err := contextFrom(props)
	if err != nil {
		return false, err
	}

	if v := l.validator(); v != nil {
		l.logValidation(v.ValidateInstance(props.Handle()))
	}

	base := &EffectBase{lib: l, handle: c.handle, props: props, context: ctx}

	inst, err := l.plugin.CreateInstance(base)
	if err != nil {
		return false, err
	}

	if nullify(inst) == nil {
		return false, errors.NewSuiteError(types.StatFailed, "plugin returned a nil instance")
	}

	if err := publishInstance(props, inst); err != nil {
		if derr := inst.Destroy(); derr != nil {
			l.log.Error("unable to destroy unpublished instance", "error", derr)
		}

		return false, err
	}

	return true, nil
}

func destroyInstanceAction(l *Library, c *call) (bool, error) {
	props, err := l.effectProps(c.handle)
	if err != nil {
		return false, err
	}

	inst, err := instanceFromProps(props, l)
	if err != nil {
		return false, err
	}

	if err := inst.Destroy(); err != nil {
		return false, err
	}

	return true, unpublishInstance(props)
}

// withInstance resolves the instance and the in arguments every instance
// action needs
func withInstance(l *Library, c *call) (ImageEffect, *property.Set, error) {
	inst, err := l.resolveInstance(c.handle)
	if err != nil {
		return nil, nil, err
	}

	var in *property.Set
	if c.in != nil {
		if in, err = l.propertySet(c.in); err != nil {
			return nil, nil, err
		}
	}

	return inst, in, nil
}

func renderAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getRenderArguments(in, l.log)
	if err != nil {
		return false, err
	}

	return true, inst.Render(args)
}

func beginSequenceRenderAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getSequenceRenderArguments(in)
	if err != nil {
		return false, err
	}

	return true, inst.BeginSequenceRender(args)
}

func endSequenceRenderAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getSequenceRenderArguments(in)
	if err != nil {
		return false, err
	}

	return true, inst.EndSequenceRender(args)
}

func isIdentityAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getRenderArguments(in, l.log)
	if err != nil {
		return false, err
	}

	id := &Identity{Time: args.Time}

	ok, err := inst.IsIdentity(args, id)
	if err != nil || !ok {
		return false, err
	}

	if id.Clip == "" {
		l.log.Error("identity effect did not name a clip to pass through")
		return false, nil
	}

	out, err := l.propertySet(c.out)
	if err != nil {
		return false, err
	}

	return true, writeIdentity(out, *id)
}

func regionOfDefinitionAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getRegionOfDefinitionArguments(in)
	if err != nil {
		return false, err
	}

	rod := &types.RectD{}

	ok, err := inst.GetRegionOfDefinition(args, rod)
	if err != nil || !ok {
		return false, err
	}

	out, err := l.propertySet(c.out)
	if err != nil {
		return false, err
	}

	return true, writeRegionOfDefinition(out, *rod)
}

func regionsOfInterestAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getRegionsOfInterestArguments(in)
	if err != nil {
		return false, err
	}

	rois := newRegionsOfInterest()
	if err := inst.GetRegionsOfInterest(args, rois); err != nil {
		return false, err
	}

	out, err := l.propertySet(c.out)
	if err != nil {
		return false, err
	}

	return rois.write(out)
}

func framesNeededAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	args, err := getFramesNeededArguments(in)
	if err != nil {
		return false, err
	}

	frames := newFramesNeeded()
	if err := inst.GetFramesNeeded(args, frames); err != nil {
		return false, err
	}

	out, err := l.propertySet(c.out)
	if err != nil {
		return false, err
	}

	return frames.write(out)
}

func clipPreferencesAction(l *Library, c *call) (bool, error) {
	inst, _, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	prefs := &clipPreferences{}
	if err := inst.GetClipPreferences(prefs); err != nil {
		return false, err
	}

	out, err := l.propertySet(c.out)
	if err != nil {
		return false, err
	}

	return prefs.write(out)
}

// timeDomainAction is only meaningful for general context effects, other
// contexts are logged and still asked
func timeDomainAction(l *Library, c *call) (bool, error) {
	inst, _, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	if inst.Context() != types.ContextGeneral {
		l.log.Error("time domain requested from an effect that is not in the general context", "context", inst.Context().String())
	}

	rng := &types.RangeD{}

	ok, err := inst.GetTimeDomain(rng)
	if err != nil || !ok {
		return false, err
	}

	out, err := l.propertySet(c.out)
	if err != nil {
		return false, err
	}

	return true, writeTimeDomain(out, *rng)
}

func purgeCachesAction(l *Library, c *call) (bool, error) {
	inst, _, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	return true, inst.PurgeCaches()
}

func syncPrivateDataAction(l *Library, c *call) (bool, error) {
	inst, _, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	return true, inst.SyncPrivateData()
}

// instanceChangedAction calls ChangedParam or ChangedClip depending on the
// type of the changed object, any other type is declined
func instanceChangedAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	typ, err := in.GetString(property.Type, 0)
	if err != nil {
		return false, err
	}

	name, err := in.GetString(property.Name, 0)
	if err != nil {
		return false, err
	}

	args, err := getInstanceChangedArguments(in)
	if err != nil {
		return false, err
	}

	switch typ {
	case property.TypeParameter:
		return true, inst.ChangedParam(args, name)
	case property.TypeClip:
		return true, inst.ChangedClip(args, name)
	}

	l.log.Error("instance changed with unknown object type", "type", typ, "name", name)
	return false, nil
}

func beginInstanceChangedAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	reason, err := getChangeReason(in)
	if err != nil {
		return false, err
	}

	return true, inst.BeginChanged(reason)
}

func endInstanceChangedAction(l *Library, c *call) (bool, error) {
	inst, in, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	reason, err := getChangeReason(in)
	if err != nil {
		return false, err
	}

	return true, inst.EndChanged(reason)
}

func beginInstanceEditAction(l *Library, c *call) (bool, error) {
	inst, _, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	return true, inst.BeginEdit()
}

func endInstanceEditAction(l *Library, c *call) (bool, error) {
	inst, _, err := withInstance(l, c)
	if err != nil {
		return false, err
	}

	return true, inst.EndEdit()
}
