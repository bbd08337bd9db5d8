// ABOUTME: Restricted JSON Schema dialect for tool inputs and response constraints
// ABOUTME: Fixed type-tag set; structural validation only, no instance checking

package promptapi

import (
	"fmt"
	"slices"
)

// SchemaType is the closed set of type tags the dialect accepts.
type SchemaType string

const (
	SchemaObject  SchemaType = "object"
	SchemaArray   SchemaType = "array"
	SchemaString  SchemaType = "string"
	SchemaNumber  SchemaType = "number"
	SchemaInteger SchemaType = "integer"
	SchemaBoolean SchemaType = "boolean"
	SchemaNull    SchemaType = "null"
)

// Valid reports whether t is one of the defined type tags.
func (t SchemaType) Valid() bool {
	switch t {
	case SchemaObject, SchemaArray, SchemaString, SchemaNumber,
		SchemaInteger, SchemaBoolean, SchemaNull:
		return true
	}
	return false
}

// Schema is the restricted JSON-Schema-like structure accepted for tool input
// shapes and response constraints. It is a structural description only: this
// package never evaluates instances against it — constraint enforcement is
// the host's responsibility.
type Schema struct {
	Type        SchemaType `json:"type"`
	Description string     `json:"description,omitempty"`

	// Object keywords.
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	// AdditionalProperties is the closed/open flag for objects. Nil means
	// the host default (open).
	AdditionalProperties *bool `json:"additionalProperties,omitempty"`

	// Array keyword.
	Items *Schema `json:"items,omitempty"`

	// Enum restricts a string schema to a fixed value set.
	Enum []string `json:"enum,omitempty"`
}

// Validate checks the schema's structure recursively: known type tags,
// object/array keywords attached to the right type, and every required name
// present in properties.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("schema is nil")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("unknown schema type %q", s.Type)
	}
	if s.Type != SchemaObject {
		if len(s.Properties) > 0 || len(s.Required) > 0 || s.AdditionalProperties != nil {
			return fmt.Errorf("object keywords on %q schema", s.Type)
		}
	}
	if s.Type != SchemaArray && s.Items != nil {
		return fmt.Errorf("items on %q schema", s.Type)
	}
	if s.Type != SchemaString && len(s.Enum) > 0 {
		return fmt.Errorf("enum on %q schema", s.Type)
	}
	for _, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			return fmt.Errorf("required field %q not in properties", name)
		}
	}
	for name, prop := range s.Properties {
		if err := prop.Validate(); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
	}
	if s.Items != nil {
		if err := s.Items.Validate(); err != nil {
			return fmt.Errorf("items: %w", err)
		}
	}
	return nil
}

// ValidateConstraint checks the stricter shape required of a response
// constraint: an object schema that declares both its properties and its
// required field list. A constraint lacking either fails.
func (s *Schema) ValidateConstraint() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Type != SchemaObject {
		return fmt.Errorf("response constraint must be an object schema, got %q", s.Type)
	}
	if s.Properties == nil {
		return fmt.Errorf("response constraint missing properties")
	}
	if s.Required == nil {
		return fmt.Errorf("response constraint missing required")
	}
	return nil
}

// RequiredContains reports whether name is in the schema's required list.
func (s *Schema) RequiredContains(name string) bool {
	return slices.Contains(s.Required, name)
}
