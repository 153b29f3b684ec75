// Package ofxsupport adapts the flat image effect plugin protocol, a single
// entry point taking an action name and opaque handles, to typed calls on a
// Plugin and its ImageEffect instances.
package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/suite"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/jumppad-labs/ofxsupport/validation"
)

// pluginAPIVersion is the version of the image effect API implemented
const pluginAPIVersion = 1

// session is everything established by the first load and released by the
// last unload
type session struct {
	tables      *suite.Tables
	description *suite.HostDescription
	validator   *validation.Validator
}

// Library is the context shared by every action sent to one plugin. The
// load and unload actions are the synchronization boundary, nothing here is
// locked.
type Library struct {
	plugin  Plugin
	options *Options
	log     logger.Logger

	host      *suite.Host
	loadCount int
	session   *session
}

// New creates a library serving p, nil options use DefaultOptions
func New(p Plugin, o *Options) *Library {
	if o == nil {
		o = DefaultOptions()
	}

	l := o.Logger
	if l == nil {
		l = logger.NopLogger{}
	}

	return &Library{
		plugin:  p,
		options: o,
		log:     l,
	}
}

// PluginCount is the number of plugins the library exports
func (l *Library) PluginCount() int {
	return 1
}

// GetPlugin returns the exported plugin record, there is only plugin 0 but
// the record is returned whatever the host asks for
func (l *Library) GetPlugin(n int) *suite.Plugin {
	if n != 0 {
		l.log.Error("host asked for a plugin that does not exist, there is only one plugin", "requested", n)
	}

	id := l.plugin.ID()

	return &suite.Plugin{
		API:          suite.ImageEffectPluginAPI,
		APIVersion:   pluginAPIVersion,
		Identifier:   id.Identifier,
		VersionMajor: id.VersionMajor,
		VersionMinor: id.VersionMinor,
		SetHost:      l.SetHost,
		MainEntry:    l.MainEntry,
	}
}

// SetHost records the host, it is called before the load action
func (l *Library) SetHost(h *suite.Host) {
	l.host = h
}

// LoadCount returns the number of unmatched load actions
func (l *Library) LoadCount() int {
	return l.loadCount
}

// Tables returns the negotiated suites or nil when the plugin is not loaded
func (l *Library) Tables() *suite.Tables {
	if l.session == nil {
		return nil
	}

	return l.session.tables
}

// HostDescription returns the host capabilities snapshot or nil when the
// plugin is not loaded
func (l *Library) HostDescription() *suite.HostDescription {
	if l.session == nil {
		return nil
	}

	return l.session.description
}

func (l *Library) requireTables() (*suite.Tables, error) {
	if l.session == nil {
		return nil, errors.NewSuiteError(types.StatErrFatal, "suites have not been fetched, the plugin is not loaded")
	}

	return l.session.tables, nil
}

func (l *Library) validator() *validation.Validator {
	if l.session == nil {
		return nil
	}

	return l.session.validator
}

// load negotiates the suites on the first load only, further loads are an
// imbalance and reuse the existing session
func (l *Library) load() error {
	if l.host == nil {
		return errors.NewSuiteError(types.StatErrBadHandle, "host pointer has not been set")
	}

	l.loadCount++

	if l.loadCount != 1 {
		l.log.Error("load action called again without a matching unload", "load_count", l.loadCount)
		return nil
	}

	tables, desc, err := suite.Negotiate(l.host, l.log)
	if err != nil {
		l.loadCount = 0
		return err
	}

	s := &session{tables: tables, description: desc}

	if l.options.Validate {
		v, err := validation.New(tables.Property, l.options.Rules)
		if err != nil {
			// the rule table is advisory, a broken table disables validation
			l.log.Error("unable to create property validator", "error", err)
		} else {
			s.validator = v
			l.logValidation(v.ValidateHost(l.host.Props))
		}
	}

	l.session = s

	if err := l.plugin.Load(); err != nil {
		l.session = nil
		l.loadCount = 0
		return err
	}

	l.log.Debug("plugin loaded", "host", desc.HostName, "interact", tables.Interact != nil)

	return nil
}

// unload releases the session when the count returns to zero, an unload
// without a load is logged and otherwise ignored
func (l *Library) unload() {
	if l.loadCount == 0 {
		l.log.Error("unload action called without a corresponding load action")
		return
	}

	l.loadCount--
	if l.loadCount != 0 {
		l.log.Debug("unload action leaves plugin loaded", "load_count", l.loadCount)
		return
	}

	l.plugin.Unload()
	l.session = nil
}

func (l *Library) logValidation(ve *errors.ValidationError) {
	if !ve.HasIssues() {
		return
	}

	for _, i := range ve.Issues {
		l.log.Warn("property validation", "subject", ve.Subject, "set", i.Set, "property", i.Property, "level", i.Level, "issue", i.Message)
	}
}

func (l *Library) propertySet(h property.Handle) (*property.Set, error) {
	t, err := l.requireTables()
	if err != nil {
		return nil, err
	}

	return property.NewSet(t.Property, h), nil
}

// effectProps returns the property set of an effect handle
func (l *Library) effectProps(h suite.EffectHandle) (*property.Set, error) {
	t, err := l.requireTables()
	if err != nil {
		return nil, err
	}

	ph, st := t.Effect.GetPropertySet(h)
	if err := errors.FromStatus(st); err != nil {
		return nil, err
	}

	return property.NewSet(t.Property, ph), nil
}
