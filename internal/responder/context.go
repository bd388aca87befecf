package responder

import "context"

type contextKey string

// purposeKey carries the reply purpose through a Reply call chain.
const purposeKey contextKey = "deskpet_reply_purpose"

// WithPurpose tags the context with what the pet is replying for
// ("chat_reply", "greeting"). The logging decorator stores the tag with
// each interaction entry so the memory log can tell reply kinds apart.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown" when the
// caller never tagged the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
