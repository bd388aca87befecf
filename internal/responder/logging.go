package responder

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/deskpet/deskpet/internal/memory"
)

// ReplyLog receives one memory entry per reply request. *memory.Repo
// satisfies it.
type ReplyLog interface {
	Record(ctx context.Context, e memory.Entry) error
}

// LoggingProvider is a decorator that records every reply request in the
// interaction log.
type LoggingProvider struct {
	inner Provider
	log   ReplyLog
}

// WithLogging wraps a Provider with interaction logging.
func WithLogging(p Provider, log ReplyLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Reply(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Reply(ctx, req)

	entry := memory.Entry{
		Type: memory.TypeResponse,
		Context: map[string]string{
			"provider":   l.inner.ModelID(),
			"purpose":    purpose,
			"latency_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
			"success":    strconv.FormatBool(err == nil),
		},
	}

	if resp != nil {
		entry.Content = resp.Text
		entry.Context["model"] = resp.Model
	}
	if err != nil {
		entry.Content = "reply failed"
		entry.Context["error"] = err.Error()
	}

	// Log the entry but don't fail the request if logging fails.
	if logErr := l.log.Record(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log reply: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
