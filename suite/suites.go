// Package suite defines the function tables a host hands to a plugin and the
// negotiation that fetches them when the plugin is loaded.
package suite

import (
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// Suite names as requested from the host
const (
	ImageEffectSuiteName = "OfxImageEffectSuite"
	PropertySuiteName    = "OfxPropertySuite"
	ParameterSuiteName   = "OfxParameterSuite"
	MemorySuiteName      = "OfxMemorySuite"
	MultiThreadSuiteName = "OfxMultiThreadSuite"
	MessageSuiteName     = "OfxMessageSuite"
	InteractSuiteName    = "OfxInteractSuite"
)

// Message types understood by the message suite
const (
	MessageFatal    = "OfxMessageFatal"
	MessageError    = "OfxMessageError"
	MessageMessage  = "OfxMessageMessage"
	MessageLog      = "OfxMessageLog"
	MessageQuestion = "OfxMessageQuestion"
)

// Opaque host handles
type (
	EffectHandle   interface{}
	ParamSetHandle interface{}
	ParamHandle    interface{}
	ClipHandle     interface{}
	InteractHandle interface{}
)

// ImageEffectSuite is the host's image effect function table
type ImageEffectSuite interface {
	GetPropertySet(h EffectHandle) (property.Handle, types.Status)
	GetParamSet(h EffectHandle) (ParamSetHandle, types.Status)
	ClipDefine(h EffectHandle, name string) (property.Handle, types.Status)
	ClipGetHandle(h EffectHandle, name string) (ClipHandle, property.Handle, types.Status)
	AbortRender(h EffectHandle) bool
}

// ParameterSuite is the host's parameter function table, parameter
// definitions themselves belong to the plugin
type ParameterSuite interface {
	ParamDefine(ps ParamSetHandle, paramType, name string) (property.Handle, types.Status)
	ParamGetHandle(ps ParamSetHandle, name string) (ParamHandle, property.Handle, types.Status)
	ParamSetGetPropertySet(ps ParamSetHandle) (property.Handle, types.Status)
}

// MemorySuite allocates memory on behalf of the plugin
type MemorySuite interface {
	MemoryAlloc(handle interface{}, nBytes int) ([]byte, types.Status)
	MemoryFree(data []byte) types.Status
}

// ThreadFunc is run once per thread by MultiThread
type ThreadFunc func(index, count int)

// MultiThreadSuite runs work on host managed threads
type MultiThreadSuite interface {
	MultiThread(fn ThreadFunc, nThreads int) types.Status
	MultiThreadNumCPUs() (int, types.Status)
}

// MessageSuite posts messages to the user
type MessageSuite interface {
	Message(handle interface{}, messageType, messageID, message string) types.Status
}

// InteractSuite is only fetched for hosts that support overlays or custom
// interacts
type InteractSuite interface {
	InteractSwapBuffers(h InteractHandle) types.Status
	InteractRedraw(h InteractHandle) types.Status
	InteractGetPropertySet(h InteractHandle) (property.Handle, types.Status)
}

// Tables holds every negotiated function table, Interact is nil when the
// host has no interaction support
type Tables struct {
	Effect   ImageEffectSuite
	Property property.Suite
	Param    ParameterSuite
	Memory   MemorySuite
	Thread   MultiThreadSuite
	Message  MessageSuite
	Interact InteractSuite
}
