package personality

import (
	"fmt"
	"strings"

	"github.com/deskpet/deskpet/internal/intent"
)

// Respond turns a classification into the pet's reply: the suggested
// action line, flavored by the persona. Deterministic; the canned path
// the pet uses when no reply provider is configured.
func (p Personality) Respond(res intent.Result) string {
	base := res.SuggestedAction
	if base == "" {
		base = "I'm here to help!"
	}

	switch res.Category {
	case intent.CategoryHelpRequest:
		traits := p.Traits.HelpfulTraits
		if len(traits) > 2 {
			traits = traits[:2]
		}
		base = fmt.Sprintf("%s I'm particularly good at %s.", base, strings.Join(traits, ", "))
	case intent.CategoryAutomationRequest:
		base = base + " I can automate many tasks for you!"
	}

	return p.Format(base)
}
