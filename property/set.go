package property

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/types"
)

// Set gives typed access to one property handle. It holds no state besides
// the handle, every call is a round trip to the host as the other side may
// change values between calls.
type Set struct {
	suite  Suite
	handle Handle
}

// NewSet wraps h, a nil suite is a programming error as the suites are
// negotiated before any action that reads properties can run
func NewSet(s Suite, h Handle) *Set {
	if s == nil {
		panic("property: property suite has not been fetched")
	}

	return &Set{suite: s, handle: h}
}

// Handle returns the wrapped handle
func (p *Set) Handle() Handle {
	return p.handle
}

// IsNull returns true when the wrapped handle is the null handle
func (p *Set) IsNull() bool {
	return p.handle == nil
}

// check converts a suite status to an error, when useDefault is true a value
// missing at the requested index is reported as errUseDefault
func check(st types.Status, name string, useDefault bool) error {
	switch st {
	case types.StatOK, types.StatReplyYes, types.StatReplyNo, types.StatReplyDefault:
		return nil
	case types.StatErrBadIndex:
		if useDefault {
			return errUseDefault
		}
	case types.StatErrMemory:
		return errors.ErrMemory
	case types.StatErrUnknown:
		return errors.NewPropertyUnknownError(name)
	}

	return errors.NewSuiteError(st, "property %s", name)
}

var errUseDefault = errors.NewSuiteError(types.StatErrBadIndex, "use default")

func get[T any](value T, st types.Status, name string, def *T) (T, error) {
	err := check(st, name, def != nil)
	if err == errUseDefault {
		return *def, nil
	}

	if err != nil {
		var zero T
		return zero, err
	}

	return value, nil
}

// GetString returns the string at name[index]
func (p *Set) GetString(name string, index int) (string, error) {
	v, st := p.suite.GetString(p.handle, name, index)
	return get(v, st, name, nil)
}

// GetStringDefault returns the string at name[index] or def when the host
// holds no value at that index
func (p *Set) GetStringDefault(name string, index int, def string) (string, error) {
	v, st := p.suite.GetString(p.handle, name, index)
	return get(v, st, name, &def)
}

// GetInt returns the int at name[index]
func (p *Set) GetInt(name string, index int) (int, error) {
	v, st := p.suite.GetInt(p.handle, name, index)
	return get(v, st, name, nil)
}

// GetIntDefault returns the int at name[index] or def
func (p *Set) GetIntDefault(name string, index int, def int) (int, error) {
	v, st := p.suite.GetInt(p.handle, name, index)
	return get(v, st, name, &def)
}

// GetBool reads an int property and treats any non zero value as true
func (p *Set) GetBool(name string, index int) (bool, error) {
	v, err := p.GetInt(name, index)
	return v != 0, err
}

// GetDouble returns the double at name[index]
func (p *Set) GetDouble(name string, index int) (float64, error) {
	v, st := p.suite.GetDouble(p.handle, name, index)
	return get(v, st, name, nil)
}

// GetDoubleDefault returns the double at name[index] or def
func (p *Set) GetDoubleDefault(name string, index int, def float64) (float64, error) {
	v, st := p.suite.GetDouble(p.handle, name, index)
	return get(v, st, name, &def)
}

// GetPointer returns the opaque pointer at name[index]
func (p *Set) GetPointer(name string, index int) (interface{}, error) {
	v, st := p.suite.GetPointer(p.handle, name, index)
	return get(v, st, name, nil)
}

// GetPointerDefault returns the opaque pointer at name[index] or def
func (p *Set) GetPointerDefault(name string, index int, def interface{}) (interface{}, error) {
	v, st := p.suite.GetPointer(p.handle, name, index)
	return get(v, st, name, &def)
}

// SetString sets name[index] to value
func (p *Set) SetString(name string, value string, index int) error {
	return check(p.suite.SetString(p.handle, name, index, value), name, false)
}

// SetInt sets name[index] to value
func (p *Set) SetInt(name string, value int, index int) error {
	return check(p.suite.SetInt(p.handle, name, index, value), name, false)
}

// SetBool sets name[index] to 1 or 0
func (p *Set) SetBool(name string, value bool, index int) error {
	v := 0
	if value {
		v = 1
	}

	return p.SetInt(name, v, index)
}

// SetDouble sets name[index] to value
func (p *Set) SetDouble(name string, value float64, index int) error {
	return check(p.suite.SetDouble(p.handle, name, index, value), name, false)
}

// SetPointer sets name[index] to the opaque value
func (p *Set) SetPointer(name string, value interface{}, index int) error {
	return check(p.suite.SetPointer(p.handle, name, index, value), name, false)
}

// Dimension returns the number of values name holds
func (p *Set) Dimension(name string) (int, error) {
	d, st := p.suite.GetDimension(p.handle, name)
	if err := check(st, name, false); err != nil {
		return 0, err
	}

	return d, nil
}

// Reset returns name to its default value
func (p *Set) Reset(name string) error {
	return check(p.suite.Reset(p.handle, name), name, false)
}
