package intent

import (
	"strings"
)

// Result is the outcome of classifying one utterance. It is a plain value:
// built fresh per call and never mutated afterwards.
type Result struct {
	Category        Category
	Confidence      float64 // clamped to [0,1]
	MatchedRules    int
	Entities        map[Kind][]string
	SuggestedAction string
}

// Context carries optional non-textual signals supplied by the caller.
// The engine reads it and never retains it.
type Context struct {
	// ForegroundApp is the name or window title of the application the
	// user most recently had focused.
	ForegroundApp string

	// Recent lists prior classifications, most recent last.
	Recent []Category
}

// Engine scores utterances against an immutable rule table. A constructed
// Engine is pure and reentrant: Classify performs no I/O, takes no locks,
// and is safe to call from any number of goroutines.
type Engine struct {
	rules map[Category][]rule
	cfg   Config
}

// New compiles and validates the rule table and returns a ready Engine.
// Table problems (a category with no rules, an uncompilable pattern, a
// weight outside (0,1]) are reported here and nowhere else: per-call
// classification is total and cannot fail.
func New(table RuleTable, cfg Config) (*Engine, error) {
	compiled, err := compileTable(table)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, cfg: cfg}, nil
}

// Classify maps one utterance to exactly one category. Empty, very long,
// mixed-script, or otherwise awkward input degrades to the fallback
// category; it never errors.
func (e *Engine) Classify(text string) Result {
	return e.classify(text, Context{})
}

// ClassifyContext is Classify with non-textual signals folded in. A
// foreground-app hint nudges correlated categories, but only ones the text
// itself gave at least weak evidence for.
func (e *Engine) ClassifyContext(text string, ctx Context) Result {
	return e.classify(text, ctx)
}

func (e *Engine) classify(text string, ctx Context) Result {
	text = truncateRunes(text, e.cfg.MaxInputLen)

	scores, counts := e.score(text)
	e.applyNudges(scores, counts, ctx)

	cat, conf := e.selectCategory(scores)

	entities := Extract(text)

	return Result{
		Category:        cat,
		Confidence:      clamp01(conf),
		MatchedRules:    counts[cat],
		Entities:        entities,
		SuggestedAction: Suggest(cat, entities),
	}
}

// score accumulates each category's evidence: the sum of matching rule
// weights, a length bonus for matches spanning more than MinSpan runes,
// and a capped bonus for multiple matching rules.
func (e *Engine) score(text string) (map[Category]float64, map[Category]int) {
	scores := make(map[Category]float64, len(e.rules))
	counts := make(map[Category]int, len(e.rules))

	for cat, rules := range e.rules {
		var score float64
		var count int

		for _, r := range rules {
			m := r.re.FindString(text)
			if m == "" {
				continue
			}
			score += r.weight
			count++
			if len([]rune(m)) > e.cfg.MinSpan {
				score += e.cfg.LengthBonus
			}
		}

		if count > 1 {
			bonus := float64(count-1) * e.cfg.MatchBonus
			if bonus > e.cfg.MatchBonusCap {
				bonus = e.cfg.MatchBonusCap
			}
			score += bonus
		}

		scores[cat] = clamp01(score)
		counts[cat] = count
	}

	return scores, counts
}

// applyNudges adds the bounded context boosts. A nudge requires textual
// evidence (count > 0): context refines a classification, it never
// originates one.
func (e *Engine) applyNudges(scores map[Category]float64, counts map[Category]int, ctx Context) {
	if ctx.ForegroundApp != "" {
		app := strings.ToLower(ctx.ForegroundApp)
		for _, entry := range e.cfg.Nudges {
			if !strings.Contains(app, strings.ToLower(entry.AppSubstring)) {
				continue
			}
			for _, cat := range entry.Categories {
				if counts[cat] > 0 {
					scores[cat] = clamp01(scores[cat] + e.cfg.ContextNudge)
				}
			}
		}
	}

	if len(ctx.Recent) > 0 {
		last := ctx.Recent[len(ctx.Recent)-1]
		if last != CategoryCasualChat && counts[last] > 0 {
			scores[last] = clamp01(scores[last] + e.cfg.RecentNudge)
		}
	}
}

// selectCategory picks the winner. Highest score wins; equal scores are
// broken by categoryPriority, which lists the fallback last so it never
// wins a tie. A specific winner below SpecificThreshold is rejected in
// favor of the fallback, whose confidence is the fallback's own score,
// not the rejected category's.
func (e *Engine) selectCategory(scores map[Category]float64) (Category, float64) {
	best := CategoryCasualChat
	bestScore := -1.0
	for _, cat := range categoryPriority {
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}

	if best == CategoryCasualChat && bestScore >= e.cfg.FallbackThreshold {
		return best, bestScore
	}
	if best != CategoryCasualChat && bestScore >= e.cfg.SpecificThreshold {
		return best, bestScore
	}
	return CategoryCasualChat, scores[CategoryCasualChat]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
