package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// hangingProvider blocks until the context is done.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestTimeoutCancelsHungCall(t *testing.T) {
	p := WithTimeout(hangingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from hung call")
	}

	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped deadline error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call was not cancelled promptly: %s", elapsed)
	}
}

func TestTimeoutPassesFastCallThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content %s", resp.Content)
	}
}

func TestTimeoutPreservesCallerCancellation(t *testing.T) {
	p := WithTimeout(hangingProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var unavailable *ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		t.Fatalf("caller cancellation reclassified as provider outage: %v", err)
	}
}

func TestTimeoutDisabledWhenNonPositive(t *testing.T) {
	mock := NewMockProvider()
	if got := WithTimeout(mock, 0); got != Provider(mock) {
		t.Fatalf("expected unwrapped provider for zero timeout, got %T", got)
	}
}
