package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// InteractionType labels what produced a memory entry.
type InteractionType string

const (
	TypeTextInput      InteractionType = "text_input"
	TypeResponse       InteractionType = "response"
	TypeScreenActivity InteractionType = "screen_activity"
	TypeAutomation     InteractionType = "automation"
)

// Entry is a single interaction memory. Importance runs 1-10; tags and
// context are free-form.
type Entry struct {
	ID         int64
	Timestamp  time.Time
	Type       InteractionType
	Content    string
	Context    map[string]string
	Importance int
	Tags       []string
}

// Pattern is a learned usage pattern with an occurrence count.
type Pattern struct {
	Type      string
	Data      map[string]string
	Frequency int
	LastSeen  time.Time
}

// Repo is the interaction log repository.
type Repo struct {
	db *sql.DB
}

// Record stores a new memory entry. Zero Importance defaults to 5 and a
// zero Timestamp to now, matching how callers treat them as optional.
func (r *Repo) Record(ctx context.Context, e Entry) error {
	if e.Importance == 0 {
		e.Importance = 5
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	ctxJSON, err := json.Marshal(orEmpty(e.Context))
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}
	tagsJSON, err := json.Marshal(orEmptySlice(e.Tags))
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO memories (timestamp, interaction_type, content, context, importance, tags)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Timestamp.Format(time.RFC3339), string(e.Type), e.Content,
		string(ctxJSON), e.Importance, string(tagsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert memory: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first, optionally
// filtered by interaction type (empty filter means all types).
func (r *Repo) Recent(ctx context.Context, limit int, filter InteractionType) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, timestamp, interaction_type, content, context, importance, tags
		FROM memories`
	args := []any{}
	if filter != "" {
		query += ` WHERE interaction_type = ?`
		args = append(args, string(filter))
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns entries whose content contains query, most important and
// most recent first.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, interaction_type, content, context, importance, tags
		 FROM memories
		 WHERE content LIKE ?
		 ORDER BY importance DESC, id DESC
		 LIMIT ?`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search memories: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns the total number of memory entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count memories: %w", err)
	}
	return n, nil
}

// Prune deletes all but the keep most recent entries.
func (r *Repo) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM memories WHERE id NOT IN (
			SELECT id FROM memories ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune memories: %w", err)
	}
	return nil
}

// LearnPattern upserts a usage pattern, incrementing its frequency when
// the same (type, data) pair was seen before.
func (r *Repo) LearnPattern(ctx context.Context, patternType string, data map[string]string) error {
	dataJSON, err := json.Marshal(orEmpty(data))
	if err != nil {
		return fmt.Errorf("marshal pattern data: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE usage_patterns
		 SET frequency = frequency + 1, last_seen = CURRENT_TIMESTAMP
		 WHERE pattern_type = ? AND pattern_data = ?`,
		patternType, string(dataJSON),
	)
	if err != nil {
		return fmt.Errorf("update pattern: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO usage_patterns (pattern_type, pattern_data, frequency)
		 VALUES (?, ?, 1)`,
		patternType, string(dataJSON),
	)
	if err != nil {
		return fmt.Errorf("insert pattern: %w", err)
	}
	return nil
}

// Patterns returns learned patterns, most frequent first, optionally
// filtered by type.
func (r *Repo) Patterns(ctx context.Context, patternType string, limit int) ([]Pattern, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT pattern_type, pattern_data, frequency, last_seen FROM usage_patterns`
	args := []any{}
	if patternType != "" {
		query += ` WHERE pattern_type = ?`
		args = append(args, patternType)
	}
	query += ` ORDER BY frequency DESC, last_seen DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}
	defer rows.Close()

	var patterns []Pattern
	for rows.Next() {
		var p Pattern
		var dataJSON string
		var lastSeen string
		if err := rows.Scan(&p.Type, &dataJSON, &p.Frequency, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan pattern: %w", err)
		}
		if err := json.Unmarshal([]byte(dataJSON), &p.Data); err != nil {
			return nil, fmt.Errorf("unmarshal pattern data: %w", err)
		}
		p.LastSeen, err = time.Parse("2006-01-02 15:04:05", lastSeen)
		if err != nil {
			return nil, fmt.Errorf("parse pattern last_seen %q: %w", lastSeen, err)
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// ContextFor returns a short context block for a reply: entries matching
// query, falling back to the most recent ones when nothing matches.
func (r *Repo) ContextFor(ctx context.Context, query string, limit int) (string, error) {
	entries, err := r.Search(ctx, query, limit)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		entries, err = r.Recent(ctx, limit, "")
		if err != nil {
			return "", err
		}
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("[%s] %s", e.Type, e.Content))
	}
	return strings.Join(parts, "\n"), nil
}

// Summary returns a human-readable digest of the log.
func (r *Repo) Summary(ctx context.Context) (string, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return "", err
	}
	recent, err := r.Recent(ctx, 5, "")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total memories: %d\n\nRecent interactions:\n", total)
	for _, e := range recent {
		content := e.Content
		if len([]rune(content)) > 50 {
			content = string([]rune(content)[:50]) + "..."
		}
		fmt.Fprintf(&b, "- [%s] %s\n", e.Type, content)
	}
	return b.String(), nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts, ctxJSON, tagsJSON string
		var typ string
		if err := rows.Scan(&e.ID, &ts, &typ, &e.Content, &ctxJSON, &e.Importance, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scan memory: %w", err)
		}
		e.Type = InteractionType(typ)
		var err error
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		if ctxJSON != "" {
			if err := json.Unmarshal([]byte(ctxJSON), &e.Context); err != nil {
				return nil, fmt.Errorf("unmarshal context: %w", err)
			}
		}
		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
				return nil, fmt.Errorf("unmarshal tags: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
