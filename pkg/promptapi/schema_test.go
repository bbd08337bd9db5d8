// ABOUTME: Tests for the restricted schema dialect and constraint validation
// ABOUTME: Constraints must be object schemas carrying properties and required

package promptapi

import "testing"

func validConstraint() *Schema {
	return &Schema{
		Type: SchemaObject,
		Properties: map[string]*Schema{
			"rating": {Type: SchemaInteger},
			"mood":   {Type: SchemaString, Enum: []string{"happy", "sad"}},
		},
		Required: []string{"rating"},
	}
}

func TestSchemaValidate_OK(t *testing.T) {
	t.Parallel()

	s := &Schema{
		Type: SchemaObject,
		Properties: map[string]*Schema{
			"tags":  {Type: SchemaArray, Items: &Schema{Type: SchemaString}},
			"count": {Type: SchemaNumber, Description: "how many"},
		},
		Required: []string{"tags", "count"},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSchemaValidate_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		s    *Schema
	}{
		{"nil schema", nil},
		{"unknown type", &Schema{Type: "tuple"}},
		{"required not in properties", &Schema{
			Type:       SchemaObject,
			Properties: map[string]*Schema{"a": {Type: SchemaString}},
			Required:   []string{"b"},
		}},
		{"items on object", &Schema{Type: SchemaObject, Items: &Schema{Type: SchemaString}}},
		{"properties on string", &Schema{Type: SchemaString, Properties: map[string]*Schema{"a": {Type: SchemaString}}}},
		{"enum on integer", &Schema{Type: SchemaInteger, Enum: []string{"1"}}},
		{"bad nested property", &Schema{
			Type:       SchemaObject,
			Properties: map[string]*Schema{"a": {Type: "blob"}},
		}},
	}
	for _, tc := range cases {
		if err := tc.s.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}

func TestValidateConstraint_OK(t *testing.T) {
	t.Parallel()

	if err := validConstraint().ValidateConstraint(); err != nil {
		t.Fatalf("ValidateConstraint: %v", err)
	}
}

func TestValidateConstraint_MissingRequired(t *testing.T) {
	t.Parallel()

	s := validConstraint()
	s.Required = nil
	if err := s.ValidateConstraint(); err == nil {
		t.Fatal("expected error for constraint without required")
	}
}

func TestValidateConstraint_MissingProperties(t *testing.T) {
	t.Parallel()

	s := &Schema{Type: SchemaObject, Required: []string{}}
	if err := s.ValidateConstraint(); err == nil {
		t.Fatal("expected error for constraint without properties")
	}
}

func TestValidateConstraint_NonObject(t *testing.T) {
	t.Parallel()

	s := &Schema{Type: SchemaString}
	if err := s.ValidateConstraint(); err == nil {
		t.Fatal("expected error for non-object constraint")
	}
}

func TestValidateConstraint_ClosedFlag(t *testing.T) {
	t.Parallel()

	closed := false
	s := validConstraint()
	s.AdditionalProperties = &closed
	if err := s.ValidateConstraint(); err != nil {
		t.Fatalf("closed constraint: %v", err)
	}
}

func TestRequiredContains(t *testing.T) {
	t.Parallel()

	s := validConstraint()
	if !s.RequiredContains("rating") {
		t.Error(`RequiredContains("rating") = false, want true`)
	}
	if s.RequiredContains("mood") {
		t.Error(`RequiredContains("mood") = true, want false`)
	}
}
