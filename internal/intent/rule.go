package intent

import (
	"fmt"
	"regexp"
)

// RuleSpec is one uncompiled unit of evidence for a category: a pattern
// plus a weight in (0,1] reflecting how decisive a match is.
//
// Specs come in two families. Boundary-sensitive specs (word, prefix) wrap
// the expression in ASCII word anchors and only make sense for
// whitespace-delimited scripts. Boundary-free specs (phrase) match
// contiguous character sequences and are the only safe family for
// logographic text, where \b has no useful meaning.
type RuleSpec struct {
	expr     string
	weight   float64
	boundary ruleBoundary
}

type ruleBoundary int

const (
	boundaryNone ruleBoundary = iota // phrase: match anywhere
	boundaryWord                     // word: \b on both sides
	boundaryStart                    // prefix: anchored at input start
)

// word builds a boundary-sensitive spec: expr must match on word
// boundaries. English/whitespace-delimited rules only.
func word(expr string, weight float64) RuleSpec {
	return RuleSpec{expr: expr, weight: weight, boundary: boundaryWord}
}

// prefix builds a boundary-sensitive spec anchored at the start of the
// input.
func prefix(expr string, weight float64) RuleSpec {
	return RuleSpec{expr: expr, weight: weight, boundary: boundaryStart}
}

// phrase builds a boundary-free spec matching a contiguous character
// sequence anywhere in the input. Required for Chinese rules and for raw
// token shapes like URLs.
func phrase(expr string, weight float64) RuleSpec {
	return RuleSpec{expr: expr, weight: weight, boundary: boundaryNone}
}

// Weight returns the spec's evidence weight.
func (s RuleSpec) Weight() float64 { return s.weight }

// compile turns the spec into a case-insensitive matcher.
func (s RuleSpec) compile() (*regexp.Regexp, error) {
	var src string
	switch s.boundary {
	case boundaryWord:
		src = `(?i)\b(?:` + s.expr + `)\b`
	case boundaryStart:
		src = `(?i)^(?:` + s.expr + `)`
	default:
		src = `(?i)(?:` + s.expr + `)`
	}
	return regexp.Compile(src)
}

// rule is a compiled RuleSpec.
type rule struct {
	re     *regexp.Regexp
	weight float64
}

// RuleTable maps each category to its ordered rule specs. Order does not
// affect scoring; every matching rule contributes.
type RuleTable map[Category][]RuleSpec

// compileTable compiles and validates a rule table. Every known category
// must carry at least one rule, every weight must be in (0,1], and every
// pattern must compile. Any violation is a construction-time error: a
// half-built table never reaches the scorer.
func compileTable(table RuleTable) (map[Category][]rule, error) {
	compiled := make(map[Category][]rule, len(table))

	for cat, specs := range table {
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category %q in rule table", cat)
		}
		rules := make([]rule, 0, len(specs))
		for i, spec := range specs {
			if spec.weight <= 0 || spec.weight > 1 {
				return nil, fmt.Errorf("category %s rule %d: weight %v outside (0,1]", cat, i, spec.weight)
			}
			re, err := spec.compile()
			if err != nil {
				return nil, fmt.Errorf("category %s rule %d: %w", cat, i, err)
			}
			rules = append(rules, rule{re: re, weight: spec.weight})
		}
		compiled[cat] = rules
	}

	for _, cat := range categoryPriority {
		if len(compiled[cat]) == 0 {
			return nil, fmt.Errorf("category %s has no rules", cat)
		}
	}

	return compiled, nil
}
