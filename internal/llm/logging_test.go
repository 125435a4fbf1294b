package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lunara-health/lunara/internal/store"
)

// memEventRepo collects audit events in memory.
type memEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (m *memEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, data)
	return nil
}

func (m *memEventRepo) QueryLLMEvents(_ context.Context, opts store.QueryOpts) ([]*store.LLMRequestEvent, error) {
	out := make([]*store.LLMRequestEvent, 0, len(m.events))
	for i, data := range m.events {
		if opts.Purpose != "" && data.Purpose != opts.Purpose {
			continue
		}
		out = append(out, &store.LLMRequestEvent{ID: i + 1, LLMRequestEventData: data})
	}
	return out, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	events := &memEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 50},
	})
	p := WithLogging(mock, events)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	e := events.events[0]
	if !e.Success {
		t.Error("success not recorded")
	}
	if e.Purpose != "quiz-gen" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 100 || e.OutputTokens != 50 {
		t.Errorf("tokens = %d/%d, want 100/50", e.InputTokens, e.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	events := &memEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, events)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	e := events.events[0]
	if e.Success {
		t.Error("failure recorded as success")
	}
	if e.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if e.Purpose != "unknown" {
		t.Errorf("untagged context should log purpose 'unknown', got %q", e.Purpose)
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	events := &memEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithLogging(mock, events)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure must not fail the request: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
