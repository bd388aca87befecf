package personality

import (
	"strings"
	"testing"

	"github.com/deskpet/deskpet/internal/intent"
)

func TestFromString_KnownType(t *testing.T) {
	p := FromString("intj")
	if p.Type != INTJ {
		t.Errorf("got %s, want INTJ", p.Type)
	}
	if p.Traits.Name != "The Architect" {
		t.Errorf("got name %q, want The Architect", p.Traits.Name)
	}
}

func TestFromString_UnknownDefaultsToENFP(t *testing.T) {
	for _, s := range []string{"", "XXXX", "enfj ", "abcd"} {
		p := FromString(s)
		if p.Type == "" {
			t.Errorf("FromString(%q) returned empty type", s)
		}
	}
	if p := FromString("nope"); p.Type != ENFP {
		t.Errorf("got %s, want default ENFP", p.Type)
	}
}

func TestAll_CoversSixteenTypes(t *testing.T) {
	types := All()
	if len(types) != 16 {
		t.Fatalf("got %d types, want 16", len(types))
	}
	seen := make(map[Type]bool)
	for _, typ := range types {
		if seen[typ] {
			t.Errorf("duplicate type %s", typ)
		}
		seen[typ] = true
		if _, ok := personas[typ]; !ok {
			t.Errorf("type %s has no trait row", typ)
		}
	}
}

func TestGreeting_CarriesEmoji(t *testing.T) {
	p := FromString("ESTP")
	g := p.Greeting()
	if !strings.HasPrefix(g, p.Traits.Emoji) {
		t.Errorf("greeting %q does not start with emoji %q", g, p.Traits.Emoji)
	}
	if !strings.Contains(g, p.Traits.Greeting) {
		t.Errorf("greeting %q does not contain greeting line", g)
	}
}

func TestTemperament_Clusters(t *testing.T) {
	tests := []struct {
		typ  Type
		want Temperament
	}{
		{INTJ, TemperamentAnalyst},
		{ENTP, TemperamentAnalyst},
		{INFP, TemperamentDiplomat},
		{ENFJ, TemperamentDiplomat},
		{ISTJ, TemperamentSentinel},
		{ESFJ, TemperamentSentinel},
		{ISTP, TemperamentExplorer},
		{ESFP, TemperamentExplorer},
	}
	for _, tt := range tests {
		p := FromString(string(tt.typ))
		if got := p.Temperament(); got != tt.want {
			t.Errorf("Temperament(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestRespond_HelpRequestMentionsTraits(t *testing.T) {
	p := FromString("INTJ")
	res := intent.Result{
		Category:        intent.CategoryHelpRequest,
		SuggestedAction: "I can help you with that.",
	}
	reply := p.Respond(res)
	if !strings.Contains(reply, "strategic planning") {
		t.Errorf("reply %q does not mention the persona's helpful traits", reply)
	}
}

func TestRespond_EmptySuggestionStillReplies(t *testing.T) {
	p := FromString("ENFP")
	reply := p.Respond(intent.Result{Category: intent.CategoryCasualChat})
	if reply == "" {
		t.Error("got empty reply")
	}
}

func TestTemperament_String(t *testing.T) {
	tests := []struct {
		temperament Temperament
		want        string
	}{
		{TemperamentAnalyst, "Analyst"},
		{TemperamentDiplomat, "Diplomat"},
		{TemperamentSentinel, "Sentinel"},
		{TemperamentExplorer, "Explorer"},
	}
	for _, tt := range tests {
		if got := tt.temperament.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
