package intent

import (
	"strings"
	"testing"
)

func TestSuggest_TotalOverAllCategories(t *testing.T) {
	for _, cat := range Categories() {
		if s := Suggest(cat, nil); s == "" {
			t.Errorf("Suggest(%s) returned empty string", cat)
		}
	}
}

func TestSuggest_UnknownCategoryFallsBack(t *testing.T) {
	if got := Suggest(Category("no-such-category"), nil); got != genericSuggestion {
		t.Errorf("got %q, want generic suggestion", got)
	}
}

func TestSuggest_FoldsInEntity(t *testing.T) {
	entities := map[Kind][]string{
		KindURL:      {"https://example.com"},
		KindFilePath: {"report.docx"},
	}

	if got := Suggest(CategoryOpenURL, entities); !strings.Contains(got, "https://example.com") {
		t.Errorf("open-url suggestion %q does not mention the URL", got)
	}
	if got := Suggest(CategoryOpenFile, entities); !strings.Contains(got, "report.docx") {
		t.Errorf("open-file suggestion %q does not mention the file", got)
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	first := Suggest(CategorySearch, nil)
	for range 5 {
		if got := Suggest(CategorySearch, nil); got != first {
			t.Fatalf("Suggest not deterministic: %q then %q", first, got)
		}
	}
}
