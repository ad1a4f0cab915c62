package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first reply", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second reply"},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first reply" {
		t.Fatalf("expected 'first reply', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second reply" {
		t.Fatalf("expected 'second reply', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "[]"})

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("quota exceeded")}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{Err: errors.New("quota exceeded")}, "rate limited: quota exceeded"},
		{&ErrRateLimit{}, "rate limited"},
		{&ErrProviderUnavailable{}, "LLM provider unavailable"},
		{&ErrMissingAPIKey{Provider: "gemini", EnvVar: "GOOGLE_API_KEY"}, "GOOGLE_API_KEY is required for the gemini provider"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if p := PurposeFrom(ctx); p != "question-gen" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestLoggingProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mock := NewMockProvider(
		MockResponse{Text: "ok", Usage: Usage{InputTokens: 3, OutputTokens: 4}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithLogging(mock, logger)
	ctx := WithPurpose(context.Background(), "question-gen")

	if _, err := p.Generate(ctx, UserPrompt("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, UserPrompt("hi")); err == nil {
		t.Fatal("expected error to pass through")
	}

	out := buf.String()
	for _, want := range []string{"LLM request completed", "LLM request failed", "purpose=question-gen", "call_id=", "output_tokens=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID should delegate, got %q", p.ModelID())
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestModelCost(t *testing.T) {
	c := LookupCost("gemini-1.5-pro-latest")
	if c == nil {
		t.Fatal("expected pricing for the default Gemini model")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 6.25 {
		t.Fatalf("expected 6.25, got %v", got)
	}
	if LookupCost("llama3.1") != nil {
		t.Fatal("local models have no price")
	}
}
