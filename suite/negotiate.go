package suite

import (
	"fmt"

	"github.com/hashicorp/errwrap"
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
)

// suite versions requested from the host
const (
	imageEffectSuiteVersion = 1
	propertySuiteVersion    = 1
	parameterSuiteVersion   = 1
	memorySuiteVersion      = 1
	multiThreadSuiteVersion = 1
	messageSuiteVersion     = 1
	interactSuiteVersion    = 1
)

// fetch asks the host for the named suite and asserts it to T, a nil
// result or a table of the wrong shape means the host is inadequate
func fetch[T any](h *Host, name string, version int, l logger.Logger) (T, error) {
	var zero T

	v := h.FetchSuite(name, version)
	if v == nil {
		l.Error("host does not provide mandatory suite", "suite", name, "version", version)
		return zero, errors.NewHostInadequateError(name)
	}

	t, ok := v.(T)
	if !ok {
		l.Error("host suite has unexpected shape", "suite", name, "type", fmt.Sprintf("%T", v))
		return zero, errors.NewHostInadequateError(name)
	}

	return t, nil
}

// Negotiate fetches every mandatory suite from the host and snapshots the
// host description. The interact suite is only fetched, and is then
// mandatory, when the host supports overlays or custom interacts.
func Negotiate(h *Host, l logger.Logger) (*Tables, *HostDescription, error) {
	if l == nil {
		l = logger.NopLogger{}
	}

	if h == nil || h.FetchSuite == nil {
		return nil, nil, errors.NewHostInadequateError("host pointer has not been set")
	}

	t := &Tables{}
	var err error

	if t.Effect, err = fetch[ImageEffectSuite](h, ImageEffectSuiteName, imageEffectSuiteVersion, l); err != nil {
		return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
	}

	if t.Property, err = fetch[property.Suite](h, PropertySuiteName, propertySuiteVersion, l); err != nil {
		return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
	}

	if t.Param, err = fetch[ParameterSuite](h, ParameterSuiteName, parameterSuiteVersion, l); err != nil {
		return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
	}

	if t.Memory, err = fetch[MemorySuite](h, MemorySuiteName, memorySuiteVersion, l); err != nil {
		return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
	}

	if t.Thread, err = fetch[MultiThreadSuite](h, MultiThreadSuiteName, multiThreadSuiteVersion, l); err != nil {
		return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
	}

	if t.Message, err = fetch[MessageSuite](h, MessageSuiteName, messageSuiteVersion, l); err != nil {
		return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
	}

	desc, err := FetchHostDescription(property.NewSet(t.Property, h.Props))
	if err != nil {
		return nil, nil, errwrap.Wrapf("unable to read host description: {{err}}", err)
	}

	if desc.SupportsOverlays || desc.SupportsCustomInteract {
		if t.Interact, err = fetch[InteractSuite](h, InteractSuiteName, interactSuiteVersion, l); err != nil {
			return nil, nil, errwrap.Wrapf("unable to negotiate suites: {{err}}", err)
		}
	}

	return t, desc, nil
}
