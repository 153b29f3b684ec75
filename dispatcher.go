package ofxsupport

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// MainEntry is the plugin's single entry point. Every failure is returned
// as a status, nothing raised by a handler crosses back into the host.
func (l *Library) MainEntry(action string, handle interface{}, in, out property.Handle) (st types.Status) {
	l.log.Debug("start main entry", "action", action)
	defer func() {
		l.log.Debug("stop main entry", "action", action, "status", st)
	}()

	if action == "" {
		l.log.Error("main entry called with a null action")
		return types.StatReplyDefault
	}

	a, ok := actions[action]
	if !ok {
		l.log.Error("main entry called with an unknown action", "action", action)
		return types.StatReplyDefault
	}

	c := &call{
		action: action,
		handle: nullify(handle),
		in:     nullify(in),
		out:    nullify(out),
	}

	return l.dispatch(a, c)
}

// dispatch is the single point where errors and panics become a status
func (l *Library) dispatch(a action, c *call) (st types.Status) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			st = types.StatFailed
			if err, ok := r.(error); ok {
				st = errors.StatusFor(err)
			}

			l.log.Error("handler panic", "action", c.action, "panic", fmt.Sprintf("%v", r), "status", st, "stack", string(stack[:n]))
		}
	}()

	did, err := l.run(a, c)
	if err != nil {
		st = errors.StatusFor(err)
		l.log.Error("action failed", "action", c.action, "status", st, "error", err)

		return st
	}

	if !did {
		return types.StatReplyDefault
	}

	return types.StatOK
}

func (l *Library) run(a action, c *call) (bool, error) {
	if err := l.checkHandles(a.policy, c); err != nil {
		return false, err
	}

	return a.handler(l, c)
}

// checkHandles enforces the presence policy of the action. Validation
// issues are logged before a null required pointer fails the call.
func (l *Library) checkHandles(p policy, c *call) error {
	pointers := []struct {
		name     string
		presence presence
		null     bool
	}{
		{"handle", p.handle, c.handle == nil},
		{"inArgs", p.in, c.in == nil},
		{"outArgs", p.out, c.out == nil},
	}

	for _, ptr := range pointers {
		switch {
		case ptr.presence == required && ptr.null:
			l.log.Error("pointer passed to action is null", "action", c.action, "pointer", ptr.name)
		case ptr.presence == forbidden && !ptr.null:
			l.log.Warn("pointer passed to action is not null", "action", c.action, "pointer", ptr.name)
		}
	}

	if v := l.validator(); v != nil {
		l.logValidation(v.ValidateActionArguments(c.action, c.in, c.out))
	}

	for _, ptr := range pointers {
		if ptr.presence == required && ptr.null {
			return errors.NewSuiteError(types.StatErrBadHandle, "%s passed to %s is null", ptr.name, c.action)
		}
	}

	return nil
}

// nullify turns a typed nil held in an interface into a true nil
func nullify(v interface{}) interface{} {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
	}

	return v
}
