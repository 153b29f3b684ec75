package hostsim

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jumppad-labs/ofxsupport/errors"
)

// Config describes the capabilities of a simulated host
//
//	host "nuke_like" {
//	  supports_overlays = true
//	  withhold          = ["OfxInteractSuite"]
//	  memory_limit      = 1048576
//	}
type Config struct {
	Name string `hcl:"name,label"`

	IsBackground            bool `hcl:"is_background,optional"`
	SupportsOverlays        bool `hcl:"supports_overlays,optional"`
	SupportsMultiResolution bool `hcl:"supports_multi_resolution,optional" default:"true"`
	SupportsTiles           bool `hcl:"supports_tiles,optional" default:"true"`
	TemporalClipAccess      bool `hcl:"temporal_clip_access,optional"`
	MultipleClipDepths      bool `hcl:"multiple_clip_depths,optional"`
	MultipleClipPARs        bool `hcl:"multiple_clip_pars,optional"`
	SetableFrameRate        bool `hcl:"setable_frame_rate,optional"`
	SetableFielding         bool `hcl:"setable_fielding,optional"`
	StringAnimation         bool `hcl:"string_animation,optional"`
	ChoiceAnimation         bool `hcl:"choice_animation,optional"`
	BooleanAnimation        bool `hcl:"boolean_animation,optional"`
	CustomAnimation         bool `hcl:"custom_animation,optional"`
	CustomInteract          bool `hcl:"custom_interact,optional"`

	MaxParameters int `hcl:"max_parameters,optional" default:"-1"`
	MaxPages      int `hcl:"max_pages,optional"`
	PageRows      int `hcl:"page_rows,optional"`
	PageColumns   int `hcl:"page_columns,optional"`

	// Threads is the number of threads the multi thread suite reports
	Threads int `hcl:"threads,optional" default:"4"`
	// MemoryLimit is the number of bytes the memory suite will hand out before
	// failing, 0 means unlimited
	MemoryLimit int `hcl:"memory_limit,optional"`

	// Withhold lists suites the host will not provide
	Withhold []string `hcl:"withhold,optional"`
	// Omit lists host properties the host does not know
	Omit []string `hcl:"omit_properties,optional"`
}

type hostBlock struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type configFile struct {
	Hosts []hostBlock `hcl:"host,block"`
}

// DefaultConfig returns the configuration of a capable host
func DefaultConfig(name string) *Config {
	c := &Config{Name: name}
	defaults.Set(c)

	return c
}

// ParseConfigFile parses every host block in the given file
func ParseConfigFile(path string) ([]*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read host config: %w", err)
	}

	return ParseConfig(src, path)
}

// ParseConfig parses every host block in src, attributes that are not set
// take their default values
func ParseConfig(src []byte, filename string) ([]*Config, error) {
	p := hclparse.NewParser()

	f, diags := p.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.NewConfigFileErrorFromHCLDiags(diags, filename)
	}

	cf := &configFile{}
	if diags := gohcl.DecodeBody(f.Body, nil, cf); diags.HasErrors() {
		return nil, errors.NewConfigFileErrorFromHCLDiags(diags, filename)
	}

	configs := []*Config{}
	for _, hb := range cf.Hosts {
		c := &Config{}

		// defaults first so decoded attributes override them
		defaults.Set(c)

		if diags := gohcl.DecodeBody(hb.Remain, nil, c); diags.HasErrors() {
			return nil, errors.NewConfigFileErrorFromHCLDiags(diags, filename)
		}

		c.Name = hb.Name
		configs = append(configs, c)
	}

	return configs, nil
}
