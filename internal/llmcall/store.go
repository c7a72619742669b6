package llmcall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store persists LLM call records in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new LLMCall store on an opened database (see db.Open).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const callColumns = `id, timestamp, latency_ms, request_id, prompt_key, prompt_hash,
	provider, model, temperature, input_tokens, output_tokens, response, success, error`

// Save inserts a call record.
func (s *Store) Save(ctx context.Context, c *Call) error {
	if c == nil {
		return nil
	}
	var temp sql.NullFloat64
	if c.Temperature != nil {
		temp = sql.NullFloat64{Float64: *c.Temperature, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO llm_calls (`+callColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Timestamp.UnixMilli(), c.LatencyMs, nullString(c.RequestID), c.PromptKey, nullString(c.PromptHash),
		c.Provider, c.Model, temp, c.InputTokens, c.OutputTokens, c.Response, c.Success, nullString(c.Error),
	)
	if err != nil {
		return fmt.Errorf("insert llm call: %w", err)
	}
	return nil
}

// Get retrieves a single LLM call by ID. Returns nil, nil when absent.
func (s *Store) Get(ctx context.Context, id string) (*Call, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+callColumns+` FROM llm_calls WHERE id = ?`, id)
	c, err := scanCall(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves LLM calls matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter QueryFilter) ([]Call, error) {
	var conditions []string
	var args []any

	add := func(cond string, arg any) {
		conditions = append(conditions, cond)
		args = append(args, arg)
	}
	if filter.PromptKey != "" {
		add("prompt_key = ?", filter.PromptKey)
	}
	if filter.Provider != "" {
		add("provider = ?", filter.Provider)
	}
	if filter.Model != "" {
		add("model = ?", filter.Model)
	}
	if filter.RequestID != "" {
		add("request_id = ?", filter.RequestID)
	}
	if filter.Success != nil {
		add("success = ?", *filter.Success)
	}
	if !filter.Since.IsZero() {
		add("timestamp >= ?", filter.Since.UnixMilli())
	}

	query := `SELECT ` + callColumns + ` FROM llm_calls`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}
	defer rows.Close()

	var calls []Call
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, *c)
	}
	return calls, rows.Err()
}

// CountByPromptKey returns call counts grouped by prompt key. A non-zero
// since counts only calls at or after it.
func (s *Store) CountByPromptKey(ctx context.Context, since time.Time) (map[string]int, error) {
	var from int64
	if !since.IsZero() {
		from = since.UnixMilli()
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT prompt_key, COUNT(*) FROM llm_calls WHERE timestamp >= ? GROUP BY prompt_key`, from)
	if err != nil {
		return nil, fmt.Errorf("count llm calls: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCall(sc scanner) (*Call, error) {
	var c Call
	var ts int64
	var requestID, promptHash, response, errMsg sql.NullString
	var temp sql.NullFloat64

	err := sc.Scan(&c.ID, &ts, &c.LatencyMs, &requestID, &c.PromptKey, &promptHash,
		&c.Provider, &c.Model, &temp, &c.InputTokens, &c.OutputTokens, &response, &c.Success, &errMsg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan llm call: %w", err)
	}

	c.Timestamp = time.UnixMilli(ts).UTC()
	c.RequestID = requestID.String
	c.PromptHash = promptHash.String
	c.Response = response.String
	c.Error = errMsg.String
	if temp.Valid {
		v := temp.Float64
		c.Temperature = &v
	}
	return &c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
