package intent

import (
	"regexp"
	"strings"
)

// Kind names a structured-substring family the extractor recognizes.
type Kind string

const (
	KindURL      Kind = "url"
	KindFilePath Kind = "file_path"
	KindEmail    Kind = "email"
	KindNumber   Kind = "number"
	KindTime     Kind = "time"
)

// Entity extraction is a second, independent pass over the same input:
// it never influences classification and classification never influences
// it. Each kind yields its non-overlapping matches in input order; a kind
// with no matches is simply absent from the result.
var entityPatterns = map[Kind]*regexp.Regexp{
	KindURL:      regexp.MustCompile(`https?://[^\s]+`),
	KindFilePath: regexp.MustCompile(`(?i)(?:"[^"]+\.[a-z0-9]{1,5}"|'[^']+\.[a-z0-9]{1,5}'|[\w\-./\\]+\.(?:py|txt|doc|docx|pdf|jpg|jpeg|png|gif|xlsx|csv|json|xml|cpp|java|js|ts|html|css|md|go|sh|yaml|yml|zip|tar|gz)\b)`),
	KindEmail:    regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	KindNumber:   regexp.MustCompile(`\b\d+\b`),
	KindTime:     regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\b|\bin\s+\d+\s+(?:seconds?|minutes?|hours?)\b|\d+(?:分钟|小时|秒)后`),
}

// Extract pulls every recognized entity kind out of text. The result maps
// only kinds that matched; callers can range over it without nil checks.
func Extract(text string) map[Kind][]string {
	entities := make(map[Kind][]string)

	for kind, re := range entityPatterns {
		matches := re.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		if kind == KindFilePath {
			for i, m := range matches {
				matches[i] = strings.Trim(m, `"'`)
			}
		}
		entities[kind] = matches
	}

	return entities
}
