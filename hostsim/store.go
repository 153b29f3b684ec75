// Package hostsim is an in-process, in-memory host used to drive plugins
// built on the support library without a real application.
package hostsim

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// Kind is the type of value a simulated property holds
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindDouble
	KindPointer
)

type entry struct {
	kind     Kind
	values   []interface{}
	defaults []interface{}
}

// PropertySet is a simulated property handle. Properties must be declared
// before they can be read, reading an undeclared property reports that the
// host does not know it.
type PropertySet struct {
	ID string

	mu       sync.RWMutex
	props    map[string]*entry
	failures map[string]types.Status
	strict   bool
}

// NewPropertySet creates an empty, lenient property set, setting an
// undeclared property declares it
func NewPropertySet() *PropertySet {
	return &PropertySet{
		ID:       uuid.NewString(),
		props:    map[string]*entry{},
		failures: map[string]types.Status{},
	}
}

// NewStrictPropertySet creates a property set that rejects writes to
// undeclared properties as unknown
func NewStrictPropertySet() *PropertySet {
	ps := NewPropertySet()
	ps.strict = true
	return ps
}

// Declare adds a property with the given default values, any existing
// property with the same name is replaced
func (ps *PropertySet) Declare(name string, kind Kind, values ...interface{}) *PropertySet {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.props[name] = &entry{
		kind:     kind,
		values:   append([]interface{}(nil), values...),
		defaults: append([]interface{}(nil), values...),
	}

	return ps
}

// FailWith makes every access to name return st until cleared with StatOK
func (ps *PropertySet) FailWith(name string, st types.Status) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if st == types.StatOK {
		delete(ps.failures, name)
		return
	}

	ps.failures[name] = st
}

// Has returns true if name is declared
func (ps *PropertySet) Has(name string) bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	_, ok := ps.props[name]
	return ok
}

// Values returns a copy of the values of name
func (ps *PropertySet) Values(name string) []interface{} {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	e, ok := ps.props[name]
	if !ok {
		return nil
	}

	return append([]interface{}(nil), e.values...)
}

// Names returns the declared property names in sorted order
func (ps *PropertySet) Names() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	names := make([]string, 0, len(ps.props))
	for n := range ps.props {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Snapshot returns every property and its values, pointer values are
// omitted as they are not comparable
func (ps *PropertySet) Snapshot() map[string][]interface{} {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	s := map[string][]interface{}{}
	for n, e := range ps.props {
		if e.kind == KindPointer {
			continue
		}
		s[n] = append([]interface{}(nil), e.values...)
	}

	return s
}

func (ps *PropertySet) set(name string, kind Kind, index int, v interface{}) types.Status {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if st, ok := ps.failures[name]; ok {
		return st
	}

	e, ok := ps.props[name]
	if !ok {
		if ps.strict {
			return types.StatErrUnknown
		}

		e = &entry{kind: kind}
		ps.props[name] = e
	}

	if e.kind != kind {
		return types.StatErrValue
	}

	switch {
	case index < 0 || index > len(e.values):
		return types.StatErrBadIndex
	case index == len(e.values):
		e.values = append(e.values, v)
	default:
		e.values[index] = v
	}

	return types.StatOK
}

func (ps *PropertySet) get(name string, kind Kind, index int) (interface{}, types.Status) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if st, ok := ps.failures[name]; ok {
		return nil, st
	}

	e, ok := ps.props[name]
	if !ok {
		return nil, types.StatErrUnknown
	}

	if e.kind != kind {
		return nil, types.StatErrValue
	}

	if index < 0 || index >= len(e.values) {
		return nil, types.StatErrBadIndex
	}

	return e.values[index], types.StatOK
}

// Store is the simulated property suite
type Store struct{}

var _ property.Suite = Store{}

func toSet(h property.Handle) (*PropertySet, bool) {
	ps, ok := h.(*PropertySet)
	return ps, ok && ps != nil
}

func (Store) SetPointer(h property.Handle, name string, index int, value interface{}) types.Status {
	ps, ok := toSet(h)
	if !ok {
		return types.StatErrBadHandle
	}
	return ps.set(name, KindPointer, index, value)
}

func (Store) SetString(h property.Handle, name string, index int, value string) types.Status {
	ps, ok := toSet(h)
	if !ok {
		return types.StatErrBadHandle
	}
	return ps.set(name, KindString, index, value)
}

func (Store) SetDouble(h property.Handle, name string, index int, value float64) types.Status {
	ps, ok := toSet(h)
	if !ok {
		return types.StatErrBadHandle
	}
	return ps.set(name, KindDouble, index, value)
}

func (Store) SetInt(h property.Handle, name string, index int, value int) types.Status {
	ps, ok := toSet(h)
	if !ok {
		return types.StatErrBadHandle
	}
	return ps.set(name, KindInt, index, value)
}

func (Store) GetPointer(h property.Handle, name string, index int) (interface{}, types.Status) {
	ps, ok := toSet(h)
	if !ok {
		return nil, types.StatErrBadHandle
	}
	return ps.get(name, KindPointer, index)
}

func (Store) GetString(h property.Handle, name string, index int) (string, types.Status) {
	ps, ok := toSet(h)
	if !ok {
		return "", types.StatErrBadHandle
	}
	v, st := ps.get(name, KindString, index)
	s, _ := v.(string)
	return s, st
}

func (Store) GetDouble(h property.Handle, name string, index int) (float64, types.Status) {
	ps, ok := toSet(h)
	if !ok {
		return 0, types.StatErrBadHandle
	}
	v, st := ps.get(name, KindDouble, index)
	d, _ := v.(float64)
	return d, st
}

func (Store) GetInt(h property.Handle, name string, index int) (int, types.Status) {
	ps, ok := toSet(h)
	if !ok {
		return 0, types.StatErrBadHandle
	}
	v, st := ps.get(name, KindInt, index)
	i, _ := v.(int)
	return i, st
}

func (Store) Reset(h property.Handle, name string) types.Status {
	ps, ok := toSet(h)
	if !ok {
		return types.StatErrBadHandle
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	e, ok := ps.props[name]
	if !ok {
		return types.StatErrUnknown
	}

	e.values = append([]interface{}(nil), e.defaults...)
	return types.StatOK
}

func (Store) GetDimension(h property.Handle, name string) (int, types.Status) {
	ps, ok := toSet(h)
	if !ok {
		return 0, types.StatErrBadHandle
	}

	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if st, ok := ps.failures[name]; ok {
		return 0, st
	}

	e, ok := ps.props[name]
	if !ok {
		return 0, types.StatErrUnknown
	}

	return len(e.values), types.StatOK
}
