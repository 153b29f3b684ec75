// Package property wraps the host's property suite with typed accessors that
// translate suite statuses into errors.
package property

import "github.com/jumppad-labs/ofxsupport/types"

// Handle is an opaque, host owned property set. A nil Handle is the null
// handle. It is only valid for the duration of the call that supplied it.
type Handle interface{}

// Suite is the host's property function table, every value lives at a
// (name, index) pair on a handle
type Suite interface {
	SetPointer(h Handle, name string, index int, value interface{}) types.Status
	SetString(h Handle, name string, index int, value string) types.Status
	SetDouble(h Handle, name string, index int, value float64) types.Status
	SetInt(h Handle, name string, index int, value int) types.Status

	GetPointer(h Handle, name string, index int) (interface{}, types.Status)
	GetString(h Handle, name string, index int) (string, types.Status)
	GetDouble(h Handle, name string, index int) (float64, types.Status)
	GetInt(h Handle, name string, index int) (int, types.Status)

	// Reset returns the property to its default value
	Reset(h Handle, name string) types.Status
	// GetDimension returns the number of values held by the property
	GetDimension(h Handle, name string) (int, types.Status)
}
