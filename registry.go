package ofxsupport

import (
	"fmt"

	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
)

// resolveInstance recovers the instance published on the handle's
// InstanceData property. The instance is only borrowed for the current
// call.
func (l *Library) resolveInstance(h suite.EffectHandle) (ImageEffect, error) {
	props, err := l.effectProps(h)
	if err != nil {
		return nil, err
	}

	return instanceFromProps(props, l)
}

func instanceFromProps(props *property.Set, l *Library) (ImageEffect, error) {
	p, err := props.GetPointer(property.InstanceData, 0)
	if err != nil {
		return nil, err
	}

	if p == nil {
		l.log.Error("instance data on effect instance properties is null")
		return nil, errors.NewSuiteError(types.StatErrBadHandle, "instance data is null")
	}

	inst, ok := p.(ImageEffect)
	if !ok {
		l.log.Error("instance data on effect instance properties is not an image effect", "type", fmt.Sprintf("%T", p))
		return nil, errors.NewSuiteError(types.StatErrBadHandle, "instance data has type %T", p)
	}

	return inst, nil
}

// publishInstance stores inst on the handle's properties so later actions
// can resolve it
func publishInstance(props *property.Set, inst ImageEffect) error {
	return props.SetPointer(property.InstanceData, inst, 0)
}

// unpublishInstance clears the instance pointer, a handle that was cleared
// no longer resolves
func unpublishInstance(props *property.Set) error {
	return props.SetPointer(property.InstanceData, nil, 0)
}
