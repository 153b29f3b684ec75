package validation

import (
	"fmt"

	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// Property set names used in issues
const (
	SetHost       = "host"
	SetDescriptor = "descriptor"
	SetInstance   = "instance"
	SetInArgs     = "inArgs"
	SetOutArgs    = "outArgs"
)

// Validator checks property sets reached through a property suite
type Validator struct {
	rules *Rules
	suite property.Suite
}

// New creates a validator using rules, when rules is nil the built in table
// is used
func New(s property.Suite, rules *Rules) (*Validator, error) {
	if rules == nil {
		var err error
		if rules, err = DefaultRules(); err != nil {
			return nil, err
		}
	}

	return &Validator{rules: rules, suite: s}, nil
}

// Rules returns the rule table in use
func (v *Validator) Rules() *Rules {
	return v.rules
}

// ValidateHost checks the host's own property set
func (v *Validator) ValidateHost(h property.Handle) *errors.ValidationError {
	ve := errors.NewValidationError("host")
	v.validateSet(ve, SetHost, v.rules.Host, h)
	return ve
}

// ValidateDescriptor checks an effect descriptor's property set
func (v *Validator) ValidateDescriptor(h property.Handle) *errors.ValidationError {
	ve := errors.NewValidationError("descriptor")
	v.validateSet(ve, SetDescriptor, v.rules.Descriptor, h)
	return ve
}

// ValidateInstance checks an effect instance's property set
func (v *Validator) ValidateInstance(h property.Handle) *errors.ValidationError {
	ve := errors.NewValidationError("instance")
	v.validateSet(ve, SetInstance, v.rules.Instance, h)
	return ve
}

// ValidateActionArguments checks the in and out arguments of action, null
// handles and actions without rules are not checked
func (v *Validator) ValidateActionArguments(action string, in, out property.Handle) *errors.ValidationError {
	ve := errors.NewValidationError(action)

	a := v.rules.Action(action)
	if a == nil {
		return ve
	}

	v.validateSet(ve, SetInArgs, a.In, in)
	v.validateSet(ve, SetOutArgs, a.Out, out)

	return ve
}

func (v *Validator) validateSet(ve *errors.ValidationError, set string, rules *SetRules, h property.Handle) {
	if rules == nil || h == nil || v.suite == nil {
		return
	}

	for _, r := range rules.Properties {
		v.validateProperty(ve, set, r, h)
	}
}

func (v *Validator) validateProperty(ve *errors.ValidationError, set string, r PropertyRule, h property.Handle) {
	dim, st := v.suite.GetDimension(h, r.Name)
	switch st {
	case types.StatOK:
	case types.StatErrUnknown:
		if !r.Optional {
			ve.AppendIssue(set, r.Name, errors.ValidationLevelError, "property is unknown to the host")
		}
		return
	default:
		ve.AppendIssue(set, r.Name, errors.ValidationLevelError, "unable to fetch dimension, status %s", st)
		return
	}

	if r.Dimension > 0 && dim != r.Dimension {
		ve.AppendIssue(set, r.Name, errors.ValidationLevelWarning, "expected dimension %d got %d", r.Dimension, dim)
	}

	for i := 0; i < dim; i++ {
		if err := v.validateValue(r, h, i); err != nil {
			ve.AppendIssue(set, r.Name, errors.ValidationLevelError, "index %d: %s", i, err)
		}
	}
}

func (v *Validator) validateValue(r PropertyRule, h property.Handle, index int) error {
	switch r.Type {
	case TypeString:
		s, st := v.suite.GetString(h, r.Name, index)
		if st != types.StatOK {
			return fmt.Errorf("unable to fetch %s value, status %s", r.Type, st)
		}

		if r.hasValues() && !r.allowsString(s) {
			return fmt.Errorf("value %q is not permitted", s)
		}
	case TypeInt:
		n, st := v.suite.GetInt(h, r.Name, index)
		if st != types.StatOK {
			return fmt.Errorf("unable to fetch %s value, status %s", r.Type, st)
		}

		if r.hasValues() && !r.allowsNumber(float64(n)) {
			return fmt.Errorf("value %d is not permitted", n)
		}
	case TypeDouble:
		d, st := v.suite.GetDouble(h, r.Name, index)
		if st != types.StatOK {
			return fmt.Errorf("unable to fetch %s value, status %s", r.Type, st)
		}

		if r.hasValues() && !r.allowsNumber(d) {
			return fmt.Errorf("value %g is not permitted", d)
		}
	case TypePointer:
		if _, st := v.suite.GetPointer(h, r.Name, index); st != types.StatOK {
			return fmt.Errorf("unable to fetch %s value, status %s", r.Type, st)
		}
	}

	return nil
}
