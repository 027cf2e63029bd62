// Package tools holds the built-in tool suite the agent can dispatch to.
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/vedantparmar12/multi-agent-creator/internal/metrics"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the uniform outcome of a tool execution. Tool-level failures
// (bad args, missing files) come back as an error status, not a Go error;
// the error return is reserved for infrastructure problems.
type Result struct {
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Err    string `json:"error,omitempty"`
}

func errResult(format string, args ...any) *Result {
	return &Result{Status: StatusError, Err: fmt.Sprintf(format, args...)}
}

func okResult(output string) *Result {
	return &Result{Status: StatusSuccess, Output: output}
}

type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args map[string]any) (*Result, error)
}

// Registry maps tool names to implementations.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range ts {
		r.Register(t)
	}
	return r
}

func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Execute dispatches by name and records the outcome.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (*Result, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	res, err := t.Execute(ctx, args)
	outcome := "ok"
	if err != nil || (res != nil && res.Status == StatusError) {
		outcome = "error"
	}
	metrics.ToolExecs.Inc(map[string]string{"tool": name, "outcome": outcome})
	return res, err
}

// Descriptions renders a sorted "name: description" list for prompts.
func (r *Registry) Descriptions() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = fmt.Sprintf("%s: %s", name, r.tools[name].Description())
	}
	return out
}
