package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/validation"
)

// Options configures a Library
type Options struct {
	// Logger receives every diagnostic, nothing logged is ever seen by the
	// host
	Logger logger.Logger
	// Validate enables the advisory property checks made at load, describe,
	// create and on every action's arguments
	Validate bool
	// Rules replaces the built in validation rule table
	Rules *validation.Rules
}

// DefaultOptions returns Options with validation enabled and logging
// discarded
func DefaultOptions() *Options {
	return &Options{
		Logger:   logger.NopLogger{},
		Validate: true,
	}
}
