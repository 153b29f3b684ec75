package errors

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const ValidationLevelError = "error"
const ValidationLevelWarning = "warning"

// ValidationIssue is a single mismatch between a property set and the rules
type ValidationIssue struct {
	// Set names the property set the issue was found in, i.e. "inArgs"
	Set      string
	Property string
	Level    string
	Message  string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s.%s: %s", v.Level, v.Set, v.Property, v.Message)
}

// ValidationError is the set of issues found while validating property sets
// against the rule tables, validation is advisory so these are logged rather
// than returned to the host
type ValidationError struct {
	// Subject is what was validated, i.e. an action name
	Subject string
	Issues  []ValidationIssue
}

func NewValidationError(subject string) *ValidationError {
	return &ValidationError{
		Subject: subject,
		Issues:  []ValidationIssue{},
	}
}

// AppendIssue adds a new issue to the list
func (v *ValidationError) AppendIssue(set, property, level, format string, args ...interface{}) {
	v.Issues = append(v.Issues, ValidationIssue{
		Set:      set,
		Property: property,
		Level:    level,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge appends all issues from other
func (v *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}

	v.Issues = append(v.Issues, other.Issues...)
}

// HasIssues returns true when at least one issue was recorded
func (v *ValidationError) HasIssues() bool {
	return v != nil && len(v.Issues) > 0
}

// Error pretty prints the issues, one per wrapped paragraph
func (v *ValidationError) Error() string {
	err := strings.Builder{}
	err.WriteString(fmt.Sprintf("validation of %s found %d issue(s):\n", v.Subject, len(v.Issues)))

	for _, i := range v.Issues {
		lines := strings.Split(wordwrap.WrapString(i.String(), 80), "\n")
		err.WriteString("  " + lines[0] + "\n")
		for _, l := range lines[1:] {
			err.WriteString("    " + l + "\n")
		}
	}

	return strings.TrimSuffix(err.String(), "\n")
}
