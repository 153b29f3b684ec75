package errors

import (
	"errors"
	"fmt"

	"github.com/jumppad-labs/ofxsupport/types"
)

// Kind discriminates the failures that cross the plugin boundary, each kind
// maps to exactly one way of computing the status returned to the host
type Kind int

const (
	// KindSuite carries a status code that is returned to the host verbatim
	KindSuite Kind = iota
	// KindHostInadequate means the host lacks a mandatory feature or suite
	KindHostInadequate
	// KindPropertyUnknown means the host does not know a property we need
	KindPropertyUnknown
	// KindMemory means an allocation failed
	KindMemory
	// KindBadArgument is a malformed protocol value
	KindBadArgument
)

func (k Kind) String() string {
	switch k {
	case KindSuite:
		return "suite"
	case KindHostInadequate:
		return "host inadequate"
	case KindPropertyUnknown:
		return "property unknown to host"
	case KindMemory:
		return "memory"
	case KindBadArgument:
		return "bad argument"
	}

	return "unknown"
}

// Error is the single error type used across the support library
type Error struct {
	Kind    Kind
	Status  types.Status
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Kind == KindSuite {
		msg = fmt.Sprintf("%s status %s", msg, e.Status)
	}

	if e.Message != "" {
		msg = msg + ": " + e.Message
	}

	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrMemory is returned whenever an allocation style call fails
var ErrMemory = &Error{Kind: KindMemory, Status: types.StatErrMemory, Message: "out of memory"}

// NewSuiteError creates an error that carries the given status to the host
func NewSuiteError(st types.Status, format string, args ...interface{}) *Error {
	return &Error{Kind: KindSuite, Status: st, Message: fmt.Sprintf(format, args...)}
}

// NewHostInadequateError creates an error for a missing host feature
func NewHostInadequateError(feature string) *Error {
	return &Error{Kind: KindHostInadequate, Status: types.StatErrMissingHostFeature, Message: feature}
}

// NewPropertyUnknownError creates an error for a property the host does not know
func NewPropertyUnknownError(name string) *Error {
	return &Error{Kind: KindPropertyUnknown, Status: types.StatErrMissingHostFeature, Message: name}
}

// NewBadArgumentError wraps a malformed protocol value
func NewBadArgumentError(err error) *Error {
	return &Error{Kind: KindBadArgument, Status: types.StatFailed, Err: err}
}

// FromStatus converts the status returned by a suite call into an error, the
// success and reply statuses return nil
func FromStatus(st types.Status) error {
	switch st {
	case types.StatOK, types.StatReplyYes, types.StatReplyNo, types.StatReplyDefault:
		return nil
	case types.StatErrMemory:
		return ErrMemory
	}

	return &Error{Kind: KindSuite, Status: st}
}

// StatusFor returns the status the host must see for err
func StatusFor(err error) types.Status {
	if err == nil {
		return types.StatOK
	}

	var e *Error
	if !errors.As(err, &e) {
		return types.StatFailed
	}

	switch e.Kind {
	case KindSuite:
		return e.Status
	case KindHostInadequate, KindPropertyUnknown:
		return types.StatErrMissingHostFeature
	case KindMemory:
		return types.StatErrMemory
	}

	return types.StatFailed
}

// IsKind returns true if err or any error it wraps is an *Error of kind k
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}

	return false
}

// HasStatus returns true if err is a suite error carrying st
func HasStatus(err error, st types.Status) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindSuite && e.Status == st
	}

	return false
}
