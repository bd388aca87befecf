package responder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deskpet/deskpet/internal/memory"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first reply", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second reply"},
	)

	resp1, err := mock.Reply(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first reply" {
		t.Fatalf("expected 'first reply', got %s", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Reply(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second reply" {
		t.Fatalf("expected 'second reply', got %s", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Reply(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Reply(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestCannedProvider_ReturnsDraft(t *testing.T) {
	p := NewCannedProvider()

	resp, err := p.Reply(context.Background(), Request{Draft: "Taking a screenshot!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Taking a screenshot!" {
		t.Fatalf("expected draft back, got %q", resp.Text)
	}
	if resp.Model != "canned" {
		t.Fatalf("expected model 'canned', got %q", resp.Model)
	}
}

func TestCannedProvider_EmptyDraftIsError(t *testing.T) {
	p := NewCannedProvider()

	_, err := p.Reply(context.Background(), Request{})
	var empty *ErrEmptyReply
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyReply, got: %v", err)
	}
}

func TestBuildSystem(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		wantIn string
	}{
		{"draft only", Request{Draft: "hello"}, "hello"},
		{"system only", Request{System: "you are a pet"}, "you are a pet"},
		{"both", Request{System: "you are a pet", Draft: "hello"}, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSystem(tt.req)
			if got == "" {
				t.Fatal("buildSystem returned empty string")
			}
			if !strings.Contains(got, tt.wantIn) {
				t.Errorf("buildSystem = %q, want it to contain %q", got, tt.wantIn)
			}
		})
	}
}

type recordingLog struct {
	entries []memory.Entry
}

func (r *recordingLog) Record(_ context.Context, e memory.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	log := &recordingLog{}
	mock := NewMockProvider(MockResponse{Text: "logged reply"})
	p := WithLogging(mock, log)

	ctx := WithPurpose(context.Background(), "chat_reply")
	if _, err := p.Reply(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(log.entries))
	}
	e := log.entries[0]
	if e.Type != memory.TypeResponse {
		t.Errorf("entry type = %q, want %q", e.Type, memory.TypeResponse)
	}
	if e.Content != "logged reply" {
		t.Errorf("entry content = %q, want reply text", e.Content)
	}
	if e.Context["purpose"] != "chat_reply" {
		t.Errorf("purpose = %q, want chat_reply", e.Context["purpose"])
	}
	if e.Context["success"] != "true" {
		t.Errorf("success = %q, want true", e.Context["success"])
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	log := &recordingLog{}
	mock := NewMockProvider()
	p := WithLogging(mock, log)

	if _, err := p.Reply(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}

	if len(log.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(log.entries))
	}
	if log.entries[0].Context["success"] != "false" {
		t.Errorf("success = %q, want false", log.entries[0].Context["success"])
	}
}

func TestNewProvider_Canned(t *testing.T) {
	cfg := DefaultConfig()
	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Reply(context.Background(), Request{Draft: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hi" {
		t.Fatalf("expected draft back, got %q", resp.Text)
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "telepathy"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"canned needs no key", func(c *Config) { c.Provider = "canned" }, false},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"unknown provider", func(c *Config) { c.Provider = "telepathy" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
