// ABOUTME: Callable tool descriptor: name, description, input schema, handler
// ABOUTME: Invocation timing and dispatch belong to the host, not this package

package promptapi

import (
	"context"
	"fmt"
)

// ToolFunc is the invocation handle of a tool. The host may call it
// synchronously or from its own goroutine; a result produced asynchronously
// upstream collapses to an ordinary blocking call under ctx.
type ToolFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool describes a function the model may ask the host to invoke during a
// turn. When and whether it runs is entirely the host's decision.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	InputSchema *Schema `json:"inputSchema"`

	// Execute is never serialized; a host receives it in-process.
	Execute ToolFunc `json:"-"`
}

// Validate checks the descriptor's structure. The input schema must be an
// object schema so the model's arguments map onto named parameters.
func (t Tool) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool missing name")
	}
	if t.Execute == nil {
		return fmt.Errorf("tool %q missing execute handler", t.Name)
	}
	if t.InputSchema == nil {
		return fmt.Errorf("tool %q missing input schema", t.Name)
	}
	if err := t.InputSchema.Validate(); err != nil {
		return fmt.Errorf("tool %q input schema: %w", t.Name, err)
	}
	if t.InputSchema.Type != SchemaObject {
		return fmt.Errorf("tool %q input schema must be an object, got %q", t.Name, t.InputSchema.Type)
	}
	return nil
}
