// ABOUTME: Session-creation and per-request option bundles, all fields optional
// ABOUTME: Validation checks only what is present; a zero bundle is valid

package promptapi

import (
	"fmt"

	"golang.org/x/text/language"
)

// Params reports the host's sampling parameter ranges and defaults.
type Params struct {
	DefaultTopK        int     `json:"defaultTopK"`
	MaxTopK            int     `json:"maxTopK"`
	DefaultTemperature float64 `json:"defaultTemperature"`
	MaxTemperature     float64 `json:"maxTemperature"`
}

// Expected describes an input or output kind a session should be prepared
// for, with optional BCP-47 language tags.
type Expected struct {
	Type      ContentType `json:"type"`
	Languages []string    `json:"languages,omitempty"`
}

// Validate checks the kind tag and parses each language tag.
func (e Expected) Validate() error {
	if !e.Type.Valid() {
		return fmt.Errorf("unknown content type %q", e.Type)
	}
	for _, tag := range e.Languages {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("language %q: %w", tag, err)
		}
	}
	return nil
}

// CreateOptions is the configuration bundle accepted by Create. Every field
// is optional: the zero value (or a nil pointer) is a valid argument and the
// host fills in its defaults. Semantic enforcement beyond structure — say,
// rejecting an input kind the model cannot handle — is the host's.
type CreateOptions struct {
	// TopK and Temperature must be supplied together or not at all.
	TopK        *int     `json:"topK,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`

	// InitialPrompts seed the conversation. A system message, if any, must
	// come first.
	InitialPrompts []Message `json:"initialPrompts,omitempty"`

	Tools []Tool `json:"tools,omitempty"`

	ExpectedInputs  []Expected `json:"expectedInputs,omitempty"`
	ExpectedOutputs []Expected `json:"expectedOutputs,omitempty"`
}

// Validate checks the structural contract of whatever fields are set.
// A nil receiver is valid.
func (o *CreateOptions) Validate() error {
	if o == nil {
		return nil
	}
	if (o.TopK == nil) != (o.Temperature == nil) {
		return fmt.Errorf("topK and temperature must be specified together")
	}
	if o.TopK != nil && *o.TopK < 1 {
		return fmt.Errorf("topK must be at least 1, got %d", *o.TopK)
	}
	if o.Temperature != nil && *o.Temperature < 0 {
		return fmt.Errorf("temperature must be non-negative, got %g", *o.Temperature)
	}
	for i, msg := range o.InitialPrompts {
		if err := msg.Validate(); err != nil {
			return fmt.Errorf("initial prompt %d: %w", i, err)
		}
		if msg.Role == RoleSystem && i != 0 {
			return fmt.Errorf("initial prompt %d: system prompt must come first", i)
		}
	}
	seen := make(map[string]bool, len(o.Tools))
	for _, tool := range o.Tools {
		if err := tool.Validate(); err != nil {
			return err
		}
		if seen[tool.Name] {
			return fmt.Errorf("duplicate tool %q", tool.Name)
		}
		seen[tool.Name] = true
	}
	for _, e := range o.ExpectedInputs {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("expected input: %w", err)
		}
	}
	for _, e := range o.ExpectedOutputs {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("expected output: %w", err)
		}
	}
	return nil
}

// PromptOptions carries per-request options. Cancellation is the method's
// context.Context rather than a field here.
type PromptOptions struct {
	// ResponseConstraint restricts the produced output to a structured
	// shape. Enforcement lives in the host.
	ResponseConstraint *Schema `json:"responseConstraint,omitempty"`

	// OmitResponseConstraint asks the host not to restate the constraint
	// inside the prompt it builds. Meaningless without a constraint.
	OmitResponseConstraint bool `json:"omitResponseConstraint,omitempty"`
}

// Validate checks the constraint shape if one is present. A nil receiver is
// valid.
func (o *PromptOptions) Validate() error {
	if o == nil {
		return nil
	}
	if o.ResponseConstraint != nil {
		if err := o.ResponseConstraint.ValidateConstraint(); err != nil {
			return err
		}
	} else if o.OmitResponseConstraint {
		return fmt.Errorf("omitResponseConstraint set without a response constraint")
	}
	return nil
}
