package intent

import "testing"

func TestClassifyContext_NudgeRefinesBorderlineReading(t *testing.T) {
	// Raise the bar so a lone weak cue ("surf", weight 0.4) falls back
	// without context but clears it with the browser nudge.
	cfg := DefaultConfig()
	cfg.SpecificThreshold = 0.5
	e, err := New(DefaultRules(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bare := e.Classify("surf")
	if bare.Category != CategoryCasualChat {
		t.Fatalf("without context got %s, want fallback", bare.Category)
	}

	nudged := e.ClassifyContext("surf", Context{ForegroundApp: "Google Chrome"})
	if nudged.Category != CategoryWebSearch {
		t.Errorf("with browser context got %s, want %s", nudged.Category, CategoryWebSearch)
	}
}

func TestClassifyContext_NeverOriginatesClassification(t *testing.T) {
	e, err := New(DefaultRules(), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// "hello" carries zero evidence for any browser-correlated category;
	// context must not invent one.
	res := e.ClassifyContext("hello", Context{ForegroundApp: "Google Chrome"})
	if res.Category != CategoryCasualChat {
		t.Errorf("got %s, want %s: context originated a classification", res.Category, CategoryCasualChat)
	}
}

func TestClassifyContext_EmptyContextMatchesClassify(t *testing.T) {
	e, err := New(DefaultRules(), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, in := range []string{"search for rust tutorial", "hello", ""} {
		plain := e.Classify(in)
		ctxed := e.ClassifyContext(in, Context{})
		if plain.Category != ctxed.Category || plain.Confidence != ctxed.Confidence {
			t.Errorf("Classify(%q) and ClassifyContext with empty context disagree: %+v vs %+v", in, plain, ctxed)
		}
	}
}

func TestClassifyContext_RecentCategoryNudge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpecificThreshold = 0.42
	e, err := New(DefaultRules(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// "let's start" carries weak task evidence (0.4) that misses the
	// raised bar; a recent task-execution classification tips it over.
	bare := e.Classify("let's start")
	if bare.Category != CategoryCasualChat {
		t.Fatalf("without context got %s, want fallback", bare.Category)
	}

	res := e.ClassifyContext("let's start", Context{Recent: []Category{CategoryTaskExecution}})
	if res.Category != CategoryTaskExecution {
		t.Errorf("with recent-category context got %s, want %s", res.Category, CategoryTaskExecution)
	}
}

func TestClassifyContext_ConfidenceStaysClamped(t *testing.T) {
	e, err := New(DefaultRules(), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res := e.ClassifyContext("debug this function error in my code", Context{
		ForegroundApp: "Visual Studio Code",
		Recent:        []Category{CategoryCodeAssistance},
	})
	if res.Category != CategoryCodeAssistance {
		t.Errorf("got %s, want %s", res.Category, CategoryCodeAssistance)
	}
	if res.Confidence > 1.0 {
		t.Errorf("confidence %f exceeds 1.0 after nudges", res.Confidence)
	}
}
