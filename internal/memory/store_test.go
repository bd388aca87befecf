package memory

import (
	"context"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	entries := []Entry{
		{Type: TypeTextInput, Content: "first"},
		{Type: TypeResponse, Content: "second"},
		{Type: TypeTextInput, Content: "third"},
	}
	for _, e := range entries {
		if err := repo.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := repo.Recent(ctx, 10, "")
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	if got[0].Content != "third" {
		t.Errorf("got[0].Content = %q, want %q (newest first)", got[0].Content, "third")
	}
	if got[0].Importance != 5 {
		t.Errorf("default importance = %d, want 5", got[0].Importance)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp should default to now, got zero")
	}
}

func TestRecentTypeFilter(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: "user says hi"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Record(ctx, Entry{Type: TypeResponse, Content: "pet says hi"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Recent(ctx, 10, TypeResponse)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Type != TypeResponse {
		t.Errorf("got[0].Type = %q, want %q", got[0].Type, TypeResponse)
	}
}

func TestSearchOrdersByImportance(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: "low priority note", Importance: 2}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: "high priority note", Importance: 9}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: "unrelated"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Search(ctx, "priority", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Content != "high priority note" {
		t.Errorf("got[0].Content = %q, want high-importance entry first", got[0].Content)
	}
}

func TestContextAndTagsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	e := Entry{
		Type:       TypeScreenActivity,
		Content:    "switched to editor",
		Context:    map[string]string{"app": "vscode", "activity": "coding"},
		Tags:       []string{"screen", "focus"},
		Importance: 3,
		Timestamp:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Record(ctx, e); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := repo.Recent(ctx, 1, "")
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Context["app"] != "vscode" {
		t.Errorf("Context[app] = %q, want %q", got[0].Context["app"], "vscode")
	}
	if len(got[0].Tags) != 2 || got[0].Tags[0] != "screen" {
		t.Errorf("Tags = %v, want [screen focus]", got[0].Tags)
	}
	if !got[0].Timestamp.Equal(e.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got[0].Timestamp, e.Timestamp)
	}
}

func TestCountAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	for i := 0; i < 10; i++ {
		if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: "entry"}); err != nil {
			t.Fatal(err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 10 {
		t.Errorf("Count = %d, want 10", n)
	}

	if err := repo.Prune(ctx, 4); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 4 {
		t.Errorf("Count after prune = %d, want 4", n)
	}
}

func TestPatternsRejectsCorruptLastSeen(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Repo()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_patterns (pattern_type, pattern_data, frequency, last_seen)
		 VALUES ('intent_usage', '{}', 1, 'not-a-timestamp')`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	if _, err := repo.Patterns(ctx, "intent_usage", 10); err == nil {
		t.Error("Patterns should fail on an unparseable last_seen")
	}
}

func TestLearnPatternIncrements(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	data := map[string]string{"intent": "search"}
	for i := 0; i < 3; i++ {
		if err := repo.LearnPattern(ctx, "intent_usage", data); err != nil {
			t.Fatalf("LearnPattern: %v", err)
		}
	}
	if err := repo.LearnPattern(ctx, "intent_usage", map[string]string{"intent": "open-url"}); err != nil {
		t.Fatalf("LearnPattern: %v", err)
	}

	got, err := repo.Patterns(ctx, "intent_usage", 10)
	if err != nil {
		t.Fatalf("Patterns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Frequency != 3 {
		t.Errorf("got[0].Frequency = %d, want 3 (most frequent first)", got[0].Frequency)
	}
	if got[0].Data["intent"] != "search" {
		t.Errorf("got[0].Data[intent] = %q, want %q", got[0].Data["intent"], "search")
	}
}

func TestContextForFallsBackToRecent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: "talked about go testing"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ContextFor(ctx, "testing", 5)
	if err != nil {
		t.Fatalf("ContextFor: %v", err)
	}
	if !strings.Contains(got, "go testing") {
		t.Errorf("ContextFor = %q, want match mentioned", got)
	}

	got, err = repo.ContextFor(ctx, "nothing-matches-this", 5)
	if err != nil {
		t.Fatalf("ContextFor: %v", err)
	}
	if !strings.Contains(got, "go testing") {
		t.Errorf("ContextFor fallback = %q, want recent entries", got)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Repo()

	if err := repo.Record(ctx, Entry{Type: TypeTextInput, Content: strings.Repeat("x", 80)}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(got, "Total memories: 1") {
		t.Errorf("Summary = %q, want total count line", got)
	}
	if !strings.Contains(got, "...") {
		t.Errorf("Summary = %q, want long content truncated", got)
	}
}
