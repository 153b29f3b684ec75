package hostsim

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
	"golang.org/x/sync/errgroup"
)

// Message is a message posted by a plugin through the message suite
type Message struct {
	Handle interface{}
	Type   string
	ID     string
	Text   string
}

// Clip is a simulated clip, descriptors and instances each hold their own
type Clip struct {
	Name  string
	Props *PropertySet
}

// Param is a simulated parameter
type Param struct {
	Name  string
	Type  string
	Props *PropertySet
}

// ParamSet is the simulated parameter set of an effect
type ParamSet struct {
	ID    string
	Props *PropertySet

	mu     sync.Mutex
	params map[string]*Param
	order  []string
}

func newParamSet() *ParamSet {
	return &ParamSet{
		ID:     uuid.NewString(),
		Props:  NewPropertySet(),
		params: map[string]*Param{},
	}
}

// Param returns the named parameter or nil
func (p *ParamSet) Param(name string) *Param {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.params[name]
}

// Names returns the parameter names in definition order
func (p *ParamSet) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.order)
}

// Effect is a simulated effect handle, used both for descriptors and
// instances
type Effect struct {
	ID     string
	Props  *PropertySet
	Params *ParamSet

	mu        sync.Mutex
	clips     map[string]*Clip
	clipOrder []string
	aborted   bool
}

func newEffect(typ string) *Effect {
	e := &Effect{
		ID:     uuid.NewString(),
		Props:  NewPropertySet(),
		Params: newParamSet(),
		clips:  map[string]*Clip{},
	}

	e.Props.Declare(property.Type, KindString, typ)

	return e
}

func (e *Effect) defineClip(name string) *Clip {
	e.mu.Lock()
	defer e.mu.Unlock()

	if c, ok := e.clips[name]; ok {
		return c
	}

	c := &Clip{Name: name, Props: NewPropertySet()}
	c.Props.Declare(property.Type, KindString, property.TypeClip)
	c.Props.Declare(property.Name, KindString, name)

	e.clips[name] = c
	e.clipOrder = append(e.clipOrder, name)

	return c
}

// Clip returns the named clip or nil
func (e *Effect) Clip(name string) *Clip {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.clips[name]
}

// ClipNames returns the clip names in definition order
func (e *Effect) ClipNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.clipOrder)
}

// InputClipNames returns every clip except the output clip
func (e *Effect) InputClipNames() []string {
	names := []string{}
	for _, n := range e.ClipNames() {
		if n != OutputClipName {
			names = append(names, n)
		}
	}

	return names
}

// Abort makes AbortRender return true for this effect
func (e *Effect) Abort() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.aborted = true
}

// OutputClipName is the name every image effect uses for its output clip
const OutputClipName = "Output"

// Host is a simulated host, it provides every suite a plugin can ask for
// unless the configuration withholds it
type Host struct {
	Config *Config
	Props  *PropertySet

	log logger.Logger

	mu        sync.Mutex
	messages  []Message
	allocated int
	redraws   int
}

// New creates a host from the given config, a nil config creates a host
// with the default capabilities
func New(c *Config, l logger.Logger) *Host {
	if c == nil {
		c = DefaultConfig("hostsim")
	}

	if l == nil {
		l = logger.NopLogger{}
	}

	h := &Host{
		Config: c,
		Props:  NewPropertySet(),
		log:    l,
	}

	h.declareProps()

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func (h *Host) declareProps() {
	c := h.Config

	declare := func(name string, kind Kind, values ...interface{}) {
		if slices.Contains(c.Omit, name) {
			return
		}

		h.Props.Declare(name, kind, values...)
	}

	declare(property.Type, KindString, property.TypeImageEffectHost)
	declare(property.Name, KindString, c.Name)
	declare(property.Label, KindString, c.Name)
	declare(property.APIVersion, KindInt, 1, 4)

	declare(property.HostIsBackground, KindInt, boolInt(c.IsBackground))
	declare(property.EffectSupportsOverlays, KindInt, boolInt(c.SupportsOverlays))
	declare(property.EffectSupportsMultiRes, KindInt, boolInt(c.SupportsMultiResolution))
	declare(property.EffectSupportsTiles, KindInt, boolInt(c.SupportsTiles))
	declare(property.EffectTemporalClipAccess, KindInt, boolInt(c.TemporalClipAccess))
	declare(property.EffectSupportsMultiDepths, KindInt, boolInt(c.MultipleClipDepths))
	declare(property.EffectSupportsMultiPARs, KindInt, boolInt(c.MultipleClipPARs))
	declare(property.EffectSetableFrameRate, KindInt, boolInt(c.SetableFrameRate))
	declare(property.EffectSetableFielding, KindInt, boolInt(c.SetableFielding))
	declare(property.HostSupportsStringAnimation, KindInt, boolInt(c.StringAnimation))
	declare(property.HostSupportsCustomInteract, KindInt, boolInt(c.CustomInteract))
	declare(property.HostSupportsChoiceAnimation, KindInt, boolInt(c.ChoiceAnimation))
	declare(property.HostSupportsBooleanAnimation, KindInt, boolInt(c.BooleanAnimation))
	declare(property.HostSupportsCustomAnimation, KindInt, boolInt(c.CustomAnimation))
	declare(property.HostMaxParameters, KindInt, c.MaxParameters)
	declare(property.HostMaxPages, KindInt, c.MaxPages)
	declare(property.HostPageRowColumnCount, KindInt, c.PageRows, c.PageColumns)

	declare(property.EffectSupportedContexts, KindString,
		types.ContextFilter.String(),
		types.ContextGeneral.String(),
		types.ContextGenerator.String(),
	)
	declare(property.EffectSupportedComponents, KindString,
		types.ComponentRGBA.String(),
		types.ComponentAlpha.String(),
	)
	declare(property.EffectSupportedPixelDepths, KindString,
		types.BitDepthByte.String(),
		types.BitDepthShort.String(),
		types.BitDepthFloat.String(),
	)
}

// Suite returns the host record handed to the plugin's SetHost
func (h *Host) Suite() *suite.Host {
	return &suite.Host{
		Props:      h.Props,
		FetchSuite: h.fetchSuite,
	}
}

func (h *Host) fetchSuite(name string, version int) interface{} {
	if slices.Contains(h.Config.Withhold, name) {
		h.log.Debug("withholding suite", "suite", name, "version", version)
		return nil
	}

	switch name {
	case suite.ImageEffectSuiteName:
		return &effectSuite{}
	case suite.PropertySuiteName:
		return Store{}
	case suite.ParameterSuiteName:
		return &paramSuite{}
	case suite.MemorySuiteName:
		return &memorySuite{h}
	case suite.MultiThreadSuiteName:
		return &threadSuite{h}
	case suite.MessageSuiteName:
		return &messageSuite{h}
	case suite.InteractSuiteName:
		return &interactSuite{h}
	}

	h.log.Debug("unknown suite requested", "suite", name, "version", version)
	return nil
}

// NewDescriptor creates an effect descriptor handle
func (h *Host) NewDescriptor() *Effect {
	return newEffect(property.TypeImageEffect)
}

// NewInstance creates an instance handle for the given descriptor in ctx,
// the instance gets its own copy of every clip the descriptor defined
func (h *Host) NewInstance(desc *Effect, ctx types.Context) *Effect {
	e := newEffect(property.TypeImageEffectInstance)
	e.Props.Declare(property.EffectContext, KindString, ctx.String())
	e.Props.Declare(property.InstanceData, KindPointer, nil)
	e.Props.Declare(property.IsInteractive, KindInt, 0)

	if desc != nil {
		for _, n := range desc.ClipNames() {
			e.defineClip(n)
		}
	}

	return e
}

// Messages returns every message posted so far
func (h *Host) Messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.messages)
}

// Allocated returns the number of bytes currently allocated through the
// memory suite
func (h *Host) Allocated() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.allocated
}

// Redraws returns the number of redraw requests made through the interact
// suite
func (h *Host) Redraws() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.redraws
}

type effectSuite struct{}

func toEffect(h suite.EffectHandle) (*Effect, bool) {
	e, ok := h.(*Effect)
	return e, ok && e != nil
}

func (s *effectSuite) GetPropertySet(h suite.EffectHandle) (property.Handle, types.Status) {
	e, ok := toEffect(h)
	if !ok {
		return nil, types.StatErrBadHandle
	}

	return e.Props, types.StatOK
}

func (s *effectSuite) GetParamSet(h suite.EffectHandle) (suite.ParamSetHandle, types.Status) {
	e, ok := toEffect(h)
	if !ok {
		return nil, types.StatErrBadHandle
	}

	return e.Params, types.StatOK
}

func (s *effectSuite) ClipDefine(h suite.EffectHandle, name string) (property.Handle, types.Status) {
	e, ok := toEffect(h)
	if !ok {
		return nil, types.StatErrBadHandle
	}

	return e.defineClip(name).Props, types.StatOK
}

func (s *effectSuite) ClipGetHandle(h suite.EffectHandle, name string) (suite.ClipHandle, property.Handle, types.Status) {
	e, ok := toEffect(h)
	if !ok {
		return nil, nil, types.StatErrBadHandle
	}

	c := e.Clip(name)
	if c == nil {
		return nil, nil, types.StatErrUnknown
	}

	return c, c.Props, types.StatOK
}

func (s *effectSuite) AbortRender(h suite.EffectHandle) bool {
	e, ok := toEffect(h)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.aborted
}

type paramSuite struct{}

func toParamSet(h suite.ParamSetHandle) (*ParamSet, bool) {
	p, ok := h.(*ParamSet)
	return p, ok && p != nil
}

func (s *paramSuite) ParamDefine(ps suite.ParamSetHandle, paramType, name string) (property.Handle, types.Status) {
	p, ok := toParamSet(ps)
	if !ok {
		return nil, types.StatErrBadHandle
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.params[name]; ok {
		return nil, types.StatErrExists
	}

	param := &Param{Name: name, Type: paramType, Props: NewPropertySet()}
	param.Props.Declare(property.Type, KindString, property.TypeParameter)
	param.Props.Declare(property.Name, KindString, name)

	p.params[name] = param
	p.order = append(p.order, name)

	return param.Props, types.StatOK
}

func (s *paramSuite) ParamGetHandle(ps suite.ParamSetHandle, name string) (suite.ParamHandle, property.Handle, types.Status) {
	p, ok := toParamSet(ps)
	if !ok {
		return nil, nil, types.StatErrBadHandle
	}

	param := p.Param(name)
	if param == nil {
		return nil, nil, types.StatErrUnknown
	}

	return param, param.Props, types.StatOK
}

func (s *paramSuite) ParamSetGetPropertySet(ps suite.ParamSetHandle) (property.Handle, types.Status) {
	p, ok := toParamSet(ps)
	if !ok {
		return nil, types.StatErrBadHandle
	}

	return p.Props, types.StatOK
}

type memorySuite struct {
	h *Host
}

func (s *memorySuite) MemoryAlloc(handle interface{}, nBytes int) ([]byte, types.Status) {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if nBytes < 0 {
		return nil, types.StatErrValue
	}

	limit := s.h.Config.MemoryLimit
	if limit > 0 && s.h.allocated+nBytes > limit {
		s.h.log.Debug("memory limit reached", "requested", nBytes, "allocated", s.h.allocated, "limit", limit)
		return nil, types.StatErrMemory
	}

	s.h.allocated += nBytes
	return make([]byte, nBytes), types.StatOK
}

func (s *memorySuite) MemoryFree(data []byte) types.Status {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	s.h.allocated -= len(data)
	if s.h.allocated < 0 {
		s.h.allocated = 0
	}

	return types.StatOK
}

type threadSuite struct {
	h *Host
}

func (s *threadSuite) MultiThread(fn suite.ThreadFunc, nThreads int) types.Status {
	if fn == nil {
		return types.StatErrValue
	}

	if nThreads <= 0 {
		nThreads = s.h.Config.Threads
	}

	g := errgroup.Group{}
	for i := 0; i < nThreads; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("thread %d panicked: %v", i, r)
				}
			}()

			fn(i, nThreads)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.h.log.Error("multi thread function failed", "error", err)
		return types.StatFailed
	}

	return types.StatOK
}

func (s *threadSuite) MultiThreadNumCPUs() (int, types.Status) {
	return s.h.Config.Threads, types.StatOK
}

type messageSuite struct {
	h *Host
}

func (s *messageSuite) Message(handle interface{}, messageType, messageID, message string) types.Status {
	s.h.mu.Lock()
	s.h.messages = append(s.h.messages, Message{Handle: handle, Type: messageType, ID: messageID, Text: message})
	s.h.mu.Unlock()

	s.h.log.Info("plugin message", "type", messageType, "id", messageID, "message", message)

	if messageType == suite.MessageQuestion {
		return types.StatReplyYes
	}

	return types.StatOK
}

type interactSuite struct {
	h *Host
}

func (s *interactSuite) InteractSwapBuffers(h suite.InteractHandle) types.Status {
	return types.StatOK
}

func (s *interactSuite) InteractRedraw(h suite.InteractHandle) types.Status {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	s.h.redraws++
	return types.StatOK
}

func (s *interactSuite) InteractGetPropertySet(h suite.InteractHandle) (property.Handle, types.Status) {
	ps, ok := h.(*PropertySet)
	if !ok || ps == nil {
		return nil, types.StatErrBadHandle
	}

	return ps, types.StatOK
}
