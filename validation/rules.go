// Package validation checks property sets crossing the plugin boundary
// against a table of rules. Validation is advisory, issues are reported to
// the caller to log and never alter a status.
package validation

import (
	_ "embed"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/zclconf/go-cty/cty"
)

//go:embed rules.hcl
var defaultRules []byte

// Value types a property rule can require
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeDouble  = "double"
	TypePointer = "pointer"
)

// PropertyRule describes a single property
type PropertyRule struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
	// Dimension is the number of values the property must hold, 0 accepts
	// any dimension
	Dimension int  `hcl:"dimension,optional"`
	Optional  bool `hcl:"optional,optional"`
	// Values enumerates the permitted values, every index is checked
	Values cty.Value `hcl:"values,optional"`
}

// SetRules is the list of rules for one property set
type SetRules struct {
	Properties []PropertyRule `hcl:"property,block"`
}

// ActionRules holds the rules for an action's in and out arguments
type ActionRules struct {
	Name string    `hcl:"name,label"`
	In   *SetRules `hcl:"in,block"`
	Out  *SetRules `hcl:"out,block"`
}

// Rules is a complete rule table
type Rules struct {
	Host       *SetRules     `hcl:"host,block"`
	Descriptor *SetRules     `hcl:"descriptor,block"`
	Instance   *SetRules     `hcl:"instance,block"`
	Actions    []ActionRules `hcl:"action,block"`

	actions map[string]*ActionRules
}

// DefaultRules returns the built in rule table
func DefaultRules() (*Rules, error) {
	return ParseRules(defaultRules, "rules.hcl")
}

// ParseRules parses a rule table from HCL source
func ParseRules(src []byte, filename string) (*Rules, error) {
	p := hclparse.NewParser()

	f, diags := p.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.NewConfigFileErrorFromHCLDiags(diags, filename)
	}

	r := &Rules{}
	if diags := gohcl.DecodeBody(f.Body, nil, r); diags.HasErrors() {
		return nil, errors.NewConfigFileErrorFromHCLDiags(diags, filename)
	}

	r.actions = map[string]*ActionRules{}
	for i := range r.Actions {
		a := &r.Actions[i]
		if _, ok := r.actions[a.Name]; ok {
			return nil, &errors.ConfigFileError{Filename: filename, Message: fmt.Sprintf("duplicate rules for action %q", a.Name)}
		}

		r.actions[a.Name] = a
	}

	for _, s := range r.sets() {
		for _, pr := range s.Properties {
			if err := pr.check(); err != nil {
				return nil, &errors.ConfigFileError{Filename: filename, Message: err.Error()}
			}
		}
	}

	return r, nil
}

// Action returns the rules for the named action or nil
func (r *Rules) Action(name string) *ActionRules {
	return r.actions[name]
}

func (r *Rules) sets() []*SetRules {
	sets := []*SetRules{}
	for _, s := range []*SetRules{r.Host, r.Descriptor, r.Instance} {
		if s != nil {
			sets = append(sets, s)
		}
	}

	for _, a := range r.Actions {
		if a.In != nil {
			sets = append(sets, a.In)
		}

		if a.Out != nil {
			sets = append(sets, a.Out)
		}
	}

	return sets
}

func (p PropertyRule) check() error {
	switch p.Type {
	case TypeString, TypeInt, TypeDouble, TypePointer:
	default:
		return fmt.Errorf("property %s has unknown type %q", p.Name, p.Type)
	}

	if p.Dimension < 0 {
		return fmt.Errorf("property %s has negative dimension", p.Name)
	}

	if !p.hasValues() {
		return nil
	}

	if !p.Values.CanIterateElements() {
		return fmt.Errorf("property %s values must be a list", p.Name)
	}

	for it := p.Values.ElementIterator(); it.Next(); {
		_, v := it.Element()

		switch {
		case p.Type == TypeString && v.Type() == cty.String:
		case (p.Type == TypeInt || p.Type == TypeDouble) && v.Type() == cty.Number:
		default:
			return fmt.Errorf("property %s has value of type %s, expected %s", p.Name, v.Type().FriendlyName(), p.Type)
		}
	}

	return nil
}

func (p PropertyRule) hasValues() bool {
	return !p.Values.IsNull() && p.Values.IsKnown()
}

// allowsString returns true if s is one of the permitted values
func (p PropertyRule) allowsString(s string) bool {
	for it := p.Values.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.AsString() == s {
			return true
		}
	}

	return false
}

// allowsNumber returns true if n is one of the permitted values
func (p PropertyRule) allowsNumber(n float64) bool {
	target := big.NewFloat(n)

	for it := p.Values.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.AsBigFloat().Cmp(target) == 0 {
			return true
		}
	}

	return false
}
