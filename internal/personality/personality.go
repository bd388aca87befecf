// Package personality defines the sixteen MBTI personas the pet can take
// on and how each one flavors the pet's replies.
package personality

import "strings"

// Type is one of the sixteen MBTI personality types.
type Type string

const (
	INTJ Type = "INTJ"
	INTP Type = "INTP"
	ENTJ Type = "ENTJ"
	ENTP Type = "ENTP"
	INFJ Type = "INFJ"
	INFP Type = "INFP"
	ENFJ Type = "ENFJ"
	ENFP Type = "ENFP"
	ISTJ Type = "ISTJ"
	ISFJ Type = "ISFJ"
	ESTJ Type = "ESTJ"
	ESFJ Type = "ESFJ"
	ISTP Type = "ISTP"
	ISFP Type = "ISFP"
	ESTP Type = "ESTP"
	ESFP Type = "ESFP"
)

// DefaultType is used when a configured type string is unknown.
const DefaultType = ENFP

// Traits describes how a type presents itself.
type Traits struct {
	Name          string
	Description   string
	Greeting      string
	ResponseStyle string
	HelpfulTraits []string
	Strengths     []string
	Emoji         string
}

// Temperament groups the sixteen types into the four classic clusters.
// The home screen picks mascot art by temperament rather than carrying
// sixteen drawings.
type Temperament int

const (
	TemperamentAnalyst  Temperament = iota // NT
	TemperamentDiplomat                    // NF
	TemperamentSentinel                    // SJ
	TemperamentExplorer                    // SP
)

func (t Temperament) String() string {
	switch t {
	case TemperamentAnalyst:
		return "Analyst"
	case TemperamentDiplomat:
		return "Diplomat"
	case TemperamentSentinel:
		return "Sentinel"
	default:
		return "Explorer"
	}
}

// Personality is an immutable persona: a type plus its trait row.
type Personality struct {
	Type   Type
	Traits Traits
}

// FromString resolves a type string (any case) to a Personality,
// defaulting to ENFP for unknown input the way the original pet did.
func FromString(s string) Personality {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := personas[t]; !ok {
		t = DefaultType
	}
	return Personality{Type: t, Traits: personas[t]}
}

// All returns every type in a fixed display order.
func All() []Type {
	return []Type{
		INTJ, INTP, ENTJ, ENTP,
		INFJ, INFP, ENFJ, ENFP,
		ISTJ, ISFJ, ESTJ, ESFJ,
		ISTP, ISFP, ESTP, ESFP,
	}
}

// Greeting returns the persona's opening line.
func (p Personality) Greeting() string {
	return p.Traits.Emoji + " " + p.Traits.Greeting
}

// Format prefixes a reply with the persona's emoji.
func (p Personality) Format(message string) string {
	return p.Traits.Emoji + " " + message
}

// Describe returns "Name: description".
func (p Personality) Describe() string {
	return p.Traits.Name + ": " + p.Traits.Description
}

// Temperament returns the persona's four-way cluster.
func (p Personality) Temperament() Temperament {
	t := string(p.Type)
	switch {
	case strings.Contains(t, "NT"):
		return TemperamentAnalyst
	case strings.Contains(t, "NF"):
		return TemperamentDiplomat
	case t[1] == 'S' && t[3] == 'J':
		return TemperamentSentinel
	default:
		return TemperamentExplorer
	}
}
