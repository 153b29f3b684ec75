package hostsim

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/errwrap"
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/silas/dag"
)

// StepFunc is the work done by a single lifecycle step
type StepFunc func(c *Client) error

// Step is a named vertex in a lifecycle plan
type Step struct {
	Name string
	Run  StepFunc
}

// String is used by the graph when it reports errors
func (s *Step) String() string {
	return s.Name
}

// PlanError holds every step failure of a plan run
type PlanError struct {
	Errors []error
}

func (p *PlanError) Error() string {
	msgs := []string{}
	for _, e := range p.Errors {
		msgs = append(msgs, e.Error())
	}

	return fmt.Sprintf("lifecycle failed: %s", strings.Join(msgs, "; "))
}

// Plan is a set of lifecycle steps ordered by their dependencies, steps
// that do not depend on each other run in parallel
type Plan struct {
	mu    sync.Mutex
	graph *dag.AcyclicGraph
	root  *Step
	steps map[string]*Step
}

// NewPlan creates a plan whose root step is root, every step that does not
// name a dependency runs after it
func NewPlan(root string, fn StepFunc) *Plan {
	r := &Step{Name: root, Run: fn}

	p := &Plan{
		graph: &dag.AcyclicGraph{},
		root:  r,
		steps: map[string]*Step{root: r},
	}

	p.graph.Add(r)

	return p
}

// Add adds a step that runs after every step named in after
func (p *Plan) Add(name string, fn StepFunc, after ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.steps[name]; ok {
		return fmt.Errorf("step %q is already defined", name)
	}

	deps := []*Step{}
	for _, a := range after {
		d, ok := p.steps[a]
		if !ok {
			return fmt.Errorf("step %q depends on unknown step %q", name, a)
		}

		deps = append(deps, d)
	}

	if len(deps) == 0 {
		deps = append(deps, p.root)
	}

	s := &Step{Name: name, Run: fn}
	p.steps[name] = s
	p.graph.Add(s)

	for _, d := range deps {
		p.graph.Connect(dag.BasicEdge(d, s))
	}

	return nil
}

// Run walks the plan, a failed step stops every step that depends on it and
// no further steps are started once any step has failed
func (p *Plan) Run(c *Client) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.graph.TransitiveReduction()

	if err := p.graph.Validate(); err != nil {
		return fmt.Errorf("unable to validate lifecycle plan: %w", err)
	}

	hasError := atomic.Bool{}

	w := dag.Walker{}
	w.Callback = func(v dag.Vertex) (diags dag.Diagnostics) {
		s, ok := v.(*Step)
		if !ok || s.Run == nil {
			return nil
		}

		if hasError.Load() {
			return nil
		}

		if err := s.Run(c); err != nil {
			hasError.Store(true)
			return diags.Append(fmt.Errorf("step %s: %w", s.Name, err))
		}

		return nil
	}

	w.Update(p.graph)

	diags := w.Wait()
	if diags.HasErrors() {
		return &PlanError{Errors: diags.Err().(errwrap.Wrapper).WrappedErrors()}
	}

	return nil
}

// statusError converts an action status to a step error
func statusError(action string, st types.Status) error {
	if err := errors.FromStatus(st); err != nil {
		return fmt.Errorf("%s returned %s: %w", action, st, err)
	}

	return nil
}

// StandardPlan is the lifecycle a host runs to render frames through one
// instance in ctx: load, describe, create, clip preferences, a sequence of
// renders and the matching teardown
func StandardPlan(ctx types.Context, frames []float64, req RenderRequest) *Plan {
	const instance = "main"

	seq := SequenceRequest{Step: 1, Scale: req.Scale}
	if len(frames) > 0 {
		seq.Range = types.RangeD{Min: frames[0], Max: frames[0]}
		for _, f := range frames {
			seq.Range.Min = min(seq.Range.Min, f)
			seq.Range.Max = max(seq.Range.Max, f)
		}
	}

	p := NewPlan("load", func(c *Client) error {
		return statusError(types.ActionLoad, c.Load())
	})

	p.Add("describe", func(c *Client) error {
		_, st := c.Describe()
		return statusError(types.ActionDescribe, st)
	})

	p.Add("describe_in_context", func(c *Client) error {
		return statusError(types.ActionDescribeInContext, c.DescribeInContext(ctx))
	}, "describe")

	p.Add("create_instance", func(c *Client) error {
		_, st := c.CreateInstance(instance, ctx)
		return statusError(types.ActionCreateInstance, st)
	}, "describe_in_context")

	p.Add("clip_preferences", func(c *Client) error {
		st, _ := c.GetClipPreferences(c.Instance(instance))
		return statusError(types.ActionGetClipPreferences, st)
	}, "create_instance")

	p.Add("begin_sequence", func(c *Client) error {
		return statusError(types.ActionBeginSequenceRender, c.BeginSequenceRender(c.Instance(instance), seq))
	}, "clip_preferences")

	renders := []string{}
	for _, f := range frames {
		name := fmt.Sprintf("render_%g", f)
		r := req
		r.Time = f

		if err := p.Add(name, func(c *Client) error {
			return statusError(types.ActionRender, c.Render(c.Instance(instance), r))
		}, "begin_sequence"); err != nil {
			// duplicate frames are rendered once
			continue
		}

		renders = append(renders, name)
	}

	if len(renders) == 0 {
		renders = append(renders, "begin_sequence")
	}

	p.Add("end_sequence", func(c *Client) error {
		return statusError(types.ActionEndSequenceRender, c.EndSequenceRender(c.Instance(instance), seq))
	}, renders...)

	p.Add("destroy_instance", func(c *Client) error {
		return statusError(types.ActionDestroyInstance, c.DestroyInstance(instance))
	}, "end_sequence")

	p.Add("unload", func(c *Client) error {
		return statusError(types.ActionUnload, c.Unload())
	}, "destroy_instance")

	return p
}
