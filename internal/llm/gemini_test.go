package llm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":         map[string]any{"type": "string"},
			"total_points":     map[string]any{"type": "integer"},
			"difficulty_level": map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "options"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", schema.Properties["question"].Type)
	}
	if schema.Properties["total_points"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for total_points, got %s", schema.Properties["total_points"].Type)
	}
	if len(schema.Properties["difficulty_level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty_level"].Enum))
	}
	if schema.Properties["options"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for options, got %s", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for options items, got %s", schema.Properties["options"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiError(t *testing.T) {
	rateLimited := mapGeminiError(&genai.APIError{Code: 429, Message: "quota exceeded"})
	var rl *ErrRateLimit
	if !errors.As(rateLimited, &rl) {
		t.Fatalf("expected ErrRateLimit for 429, got %T (%v)", rateLimited, rateLimited)
	}

	serverDown := mapGeminiError(&genai.APIError{Code: 503, Message: "overloaded"})
	var unavail *ErrProviderUnavailable
	if !errors.As(serverDown, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable for 503, got %T (%v)", serverDown, serverDown)
	}

	network := mapGeminiError(fmt.Errorf("connection refused"))
	unavail = nil
	if !errors.As(network, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable for network error, got %T (%v)", network, network)
	}
}

func TestGeminiBlockReason(t *testing.T) {
	promptBlocked := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason: "PROHIBITED_CONTENT",
		},
	}
	reason, blocked := geminiBlockReason(promptBlocked)
	if !blocked || reason != "PROHIBITED_CONTENT" {
		t.Fatalf("expected prompt block PROHIBITED_CONTENT, got (%q, %v)", reason, blocked)
	}

	safetyStopped := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "SAFETY"}},
	}
	reason, blocked = geminiBlockReason(safetyStopped)
	if !blocked || reason != "SAFETY" {
		t.Fatalf("expected candidate safety block, got (%q, %v)", reason, blocked)
	}

	clean := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "STOP"}},
	}
	if reason, blocked = geminiBlockReason(clean); blocked {
		t.Fatalf("expected no block for STOP, got %q", reason)
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	tests := []struct {
		finish   genai.FinishReason
		expected string
	}{
		{"STOP", "end"},
		{"MAX_TOKENS", "max_tokens"},
		{"OTHER", "end"},
	}
	for _, tt := range tests {
		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: tt.finish}},
		}
		if got := mapGeminiStopReason(result); got != tt.expected {
			t.Errorf("mapGeminiStopReason(%s) = %q, want %q", tt.finish, got, tt.expected)
		}
	}

	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != "end" {
		t.Errorf("expected 'end' for empty candidates, got %q", got)
	}
}
