package types

import "fmt"

// ErrInvalidEnum is returned when a protocol string does not map to one of
// the known enumerants
type ErrInvalidEnum struct {
	Kind  string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.Kind, e.Value)
}

// NewInvalidEnumError creates an ErrInvalidEnum
func NewInvalidEnumError(kind, value string) *ErrInvalidEnum {
	return &ErrInvalidEnum{Kind: kind, Value: value}
}

// enumMap is a bidirectional mapping between an enum and its protocol string
type enumMap[T comparable] struct {
	kind     string
	toString map[T]string
	fromStr  map[string]T
}

func newEnumMap[T comparable](kind string, values map[T]string) enumMap[T] {
	m := enumMap[T]{
		kind:     kind,
		toString: values,
		fromStr:  make(map[string]T, len(values)),
	}

	for k, v := range values {
		m.fromStr[v] = k
	}

	return m
}

func (m enumMap[T]) str(v T) string {
	return m.toString[v]
}

func (m enumMap[T]) parse(s string) (T, error) {
	if v, ok := m.fromStr[s]; ok {
		return v, nil
	}

	var zero T
	return zero, NewInvalidEnumError(m.kind, s)
}

// Context is the context an effect is described in or instantiated for
type Context int

const (
	ContextNone Context = iota
	ContextGenerator
	ContextFilter
	ContextTransition
	ContextPaint
	ContextGeneral
	ContextRetimer
)

var contexts = newEnumMap("image effect context", map[Context]string{
	ContextGenerator:  "OfxImageEffectContextGenerator",
	ContextFilter:     "OfxImageEffectContextFilter",
	ContextTransition: "OfxImageEffectContextTransition",
	ContextPaint:      "OfxImageEffectContextPaint",
	ContextGeneral:    "OfxImageEffectContextGeneral",
	ContextRetimer:    "OfxImageEffectContextRetimer",
})

func (c Context) String() string { return contexts.str(c) }

// ContextFromString maps a context property value to a Context
func ContextFromString(s string) (Context, error) { return contexts.parse(s) }

// Field is the video field to render
type Field int

const (
	FieldNone Field = iota
	FieldBoth
	FieldLower
	FieldUpper
)

var fields = newEnumMap("field", map[Field]string{
	FieldNone:  "OfxImageFieldNone",
	FieldBoth:  "OfxImageFieldBoth",
	FieldLower: "OfxImageFieldLower",
	FieldUpper: "OfxImageFieldUpper",
})

func (f Field) String() string { return fields.str(f) }

// FieldFromString maps a field property value to a Field
func FieldFromString(s string) (Field, error) { return fields.parse(s) }

// ChangeReason is why an instance changed
type ChangeReason int

const (
	ChangeUserEdited ChangeReason = iota
	ChangePluginEdited
	ChangeTime
)

var changeReasons = newEnumMap("change reason", map[ChangeReason]string{
	ChangeUserEdited:   "OfxChangeUserEdited",
	ChangePluginEdited: "OfxChangePluginEdited",
	ChangeTime:         "OfxChangeTime",
})

func (c ChangeReason) String() string { return changeReasons.str(c) }

// ChangeReasonFromString maps a change reason property value
func ChangeReasonFromString(s string) (ChangeReason, error) { return changeReasons.parse(s) }

// BitDepth is a pixel depth
type BitDepth int

const (
	BitDepthNone BitDepth = iota
	BitDepthByte
	BitDepthShort
	BitDepthFloat
)

var bitDepths = newEnumMap("bit depth", map[BitDepth]string{
	BitDepthNone:  "OfxBitDepthNone",
	BitDepthByte:  "OfxBitDepthByte",
	BitDepthShort: "OfxBitDepthShort",
	BitDepthFloat: "OfxBitDepthFloat",
})

func (b BitDepth) String() string { return bitDepths.str(b) }

// BitDepthFromString maps a pixel depth property value
func BitDepthFromString(s string) (BitDepth, error) { return bitDepths.parse(s) }

// Components are the pixel components of an image
type Components int

const (
	ComponentNone Components = iota
	ComponentRGBA
	ComponentAlpha
)

var components = newEnumMap("pixel components", map[Components]string{
	ComponentNone:  "OfxImageComponentNone",
	ComponentRGBA:  "OfxImageComponentRGBA",
	ComponentAlpha: "OfxImageComponentAlpha",
})

func (c Components) String() string { return components.str(c) }

// ComponentsFromString maps a pixel components property value
func ComponentsFromString(s string) (Components, error) { return components.parse(s) }

// PreMultiplication is the premultiplication state of an image
type PreMultiplication int

const (
	ImageOpaque PreMultiplication = iota
	ImagePreMultiplied
	ImageUnPreMultiplied
)

var preMults = newEnumMap("premultiplication", map[PreMultiplication]string{
	ImageOpaque:          "OfxImageOpaque",
	ImagePreMultiplied:   "OfxImagePreMultiplied",
	ImageUnPreMultiplied: "OfxImageUnPreMultiplied",
})

func (p PreMultiplication) String() string { return preMults.str(p) }

// PreMultiplicationFromString maps a premultiplication property value
func PreMultiplicationFromString(s string) (PreMultiplication, error) { return preMults.parse(s) }

// RenderThreadSafety is how many render calls an effect can take at once
type RenderThreadSafety int

const (
	RenderUnsafe RenderThreadSafety = iota
	RenderInstanceSafe
	RenderFullySafe
)

var threadSafeties = newEnumMap("render thread safety", map[RenderThreadSafety]string{
	RenderUnsafe:       "OfxImageEffectRenderUnsafe",
	RenderInstanceSafe: "OfxImageEffectRenderInstanceSafe",
	RenderFullySafe:    "OfxImageEffectRenderFullySafe",
})

func (r RenderThreadSafety) String() string { return threadSafeties.str(r) }

// RenderThreadSafetyFromString maps a render thread safety property value
func RenderThreadSafetyFromString(s string) (RenderThreadSafety, error) {
	return threadSafeties.parse(s)
}
