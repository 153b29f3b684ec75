package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/mitchellh/go-wordwrap"
)

// ConfigFileError is returned when an HCL rule table or host description can
// not be parsed or decoded
type ConfigFileError struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

// Error pretty prints the error message as a string
func (c *ConfigFileError) Error() string {
	err := strings.Builder{}
	err.WriteString(fmt.Sprintf("Error: %s:%d,%d\n", c.Filename, c.Line, c.Column))

	for _, l := range strings.Split(wordwrap.WrapString(c.Message, 80), "\n") {
		err.WriteString("  " + l + "\n")
	}

	return strings.TrimSuffix(err.String(), "\n")
}

// NewConfigFileErrorFromHCLDiags returns the first error diagnostic as a
// ConfigFileError, nil if diags has no errors
func NewConfigFileErrorFromHCLDiags(diags hcl.Diagnostics, filename string) *ConfigFileError {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}

		ce := &ConfigFileError{
			Filename: filename,
			Message:  d.Summary,
		}

		if d.Detail != "" {
			ce.Message = fmt.Sprintf("%s; %s", d.Summary, d.Detail)
		}

		if d.Subject != nil {
			ce.Line = d.Subject.Start.Line
			ce.Column = d.Subject.Start.Column
		}

		return ce
	}

	return nil
}
