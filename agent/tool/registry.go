package tool

import (
	"context"
	"fmt"
	"strings"
)

// Handler is a text-in/text-out tool function. Returned errors never reach
// the agent loop: the registry rewrites them into observation strings.
type Handler func(ctx context.Context, input string) (string, error)

// Tool is one named action available to an agent loop. Final marks the
// designated terminal action that ends a run.
type Tool struct {
	Name    string
	Desc    string
	Final   bool
	Handler Handler
}

// Registry is a fixed, ordered name -> tool mapping. Registries are built
// once at process start and never mutated.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	byName := make(map[string]Tool, len(tools))
	for _, t := range tools {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("tool name is empty")
		}
		if t.Handler == nil {
			return nil, fmt.Errorf("tool %s has no handler", name)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("duplicate tool name %s", name)
		}
		byName[name] = t
	}
	return &Registry{tools: tools, byName: byName}, nil
}

func MustNewRegistry(tools ...Tool) *Registry {
	r, err := NewRegistry(tools...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		names = append(names, t.Name)
	}
	return names
}

// Catalog renders the action space for a system prompt, one
// "- Name: Description" line per tool in registration order.
func (r *Registry) Catalog() string {
	lines := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		lines = append(lines, fmt.Sprintf("- %s: %s", t.Name, t.Desc))
	}
	return strings.Join(lines, "\n")
}

// Execute runs one tool through the safe wrapper. An unknown tool name is
// itself an observation, not an error: the loop feeds it back to the model.
func (r *Registry) Execute(ctx context.Context, name, input string) string {
	t, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("[Tool Error] unknown tool %q", name)
	}
	return Safe(t.Handler)(ctx, input)
}

// SafeHandler is a tool function with failures already rendered to text.
type SafeHandler func(ctx context.Context, input string) string

// Safe wraps a handler so that any returned error or panic becomes a
// "[Tool Error] " observation string. This is the one resilience mechanism
// between tools and the agent loop.
func Safe(h Handler) SafeHandler {
	return func(ctx context.Context, input string) (out string) {
		defer func() {
			if rec := recover(); rec != nil {
				out = fmt.Sprintf("[Tool Error] %v", rec)
			}
		}()

		result, err := h(ctx, input)
		if err != nil {
			return fmt.Sprintf("[Tool Error] %s", err)
		}
		return result
	}
}
