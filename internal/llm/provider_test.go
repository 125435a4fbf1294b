package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	resp, _ := mock.Generate(context.Background(), Request{})
	if string(resp.Content) != `{"n":1}` {
		t.Fatalf("first response = %s", resp.Content)
	}
	resp, _ = mock.Generate(context.Background(), Request{})
	if string(resp.Content) != `{"n":2}` {
		t.Fatalf("second response = %s", resp.Content)
	}

	// Exhausted queue fails as unavailable.
	_, err := mock.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	req := Request{System: "system text", MaxTokens: 42}
	mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	if mock.Calls[0].System != "system text" || mock.Calls[0].MaxTokens != 42 {
		t.Errorf("recorded request = %+v", mock.Calls[0])
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LUNARA_LLM_PROVIDER", "openai")
	t.Setenv("LUNARA_OPENAI_API_KEY", "sk-test")
	t.Setenv("LUNARA_OPENAI_MODEL", "gpt-test")
	t.Setenv("LUNARA_LLM_TIMEOUT", "45s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-test" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("missing API key accepted")
	}

	cfg.Provider = "something-else"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider accepted")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}
}
