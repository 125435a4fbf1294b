package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic":      map[string]any{"type": "string"},
				"count":      map[string]any{"type": "integer", "minimum": 1},
				"difficulty": map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			},
			"required": []any{"topic", "count"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Sleep Hygiene","count":5,"difficulty":"beginner"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Period Care","count":3}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Period Care"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Period Care","count":"five"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Period Care","count":2,"difficulty":"impossible"}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for enum violation")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)
	err := validateResponse(testSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`anything at all`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema must skip validation, got: %v", err)
	}
}

func TestValidateResponse_CachedSchemaReused(t *testing.T) {
	schema := testSchema()
	raw := json.RawMessage(`{"topic":"Workouts","count":1}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
}
