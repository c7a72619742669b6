package llmcall

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Query parameters understood by ParseFilter.
const (
	ParamRequestID = "request_id"
	ParamPromptKey = "prompt_key"
	ParamProvider  = "provider"
	ParamModel     = "model"
	ParamStatus    = "status"
	ParamSince     = "since"
	ParamLimit     = "limit"
	ParamOffset    = "offset"
)

// Status values for ParamStatus.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// QueryFilter specifies filters for listing LLM calls.
type QueryFilter struct {
	RequestID string
	PromptKey string
	Provider  string
	Model     string
	Success   *bool
	Since     time.Time // Zero means no lower bound
	Limit     int
	Offset    int
}

// ParseFilter reads a filter from query parameters. since is a duration
// relative to now ("15m", "24h"). limit defaults to DefaultLimit and is
// capped at MaxLimit.
func ParseFilter(q url.Values, now time.Time) (QueryFilter, error) {
	f := QueryFilter{
		RequestID: q.Get(ParamRequestID),
		PromptKey: q.Get(ParamPromptKey),
		Provider:  q.Get(ParamProvider),
		Model:     q.Get(ParamModel),
		Limit:     DefaultLimit,
	}

	switch v := q.Get(ParamStatus); v {
	case "":
	case StatusOK, StatusFailed:
		ok := v == StatusOK
		f.Success = &ok
	default:
		return f, fmt.Errorf("invalid %s %q: want %s or %s", ParamStatus, v, StatusOK, StatusFailed)
	}

	if v := q.Get(ParamSince); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return f, fmt.Errorf("invalid %s %q: want a positive duration like 15m", ParamSince, v)
		}
		f.Since = now.Add(-d)
	}

	var err error
	if f.Limit, err = intParam(q, ParamLimit, DefaultLimit); err != nil {
		return f, err
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	f.Limit = min(f.Limit, MaxLimit)
	if f.Offset, err = intParam(q, ParamOffset, 0); err != nil {
		return f, err
	}
	return f, nil
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative integer", name, v)
	}
	return n, nil
}

// Summary totals a set of calls, e.g. everything one request triggered.
type Summary struct {
	Calls        int   `json:"calls"`
	Failed       int   `json:"failed"`
	InputTokens  int   `json:"input_tokens"`
	OutputTokens int   `json:"output_tokens"`
	LatencyMs    int64 `json:"latency_ms"`
}

// Summarize totals calls.
func Summarize(calls []Call) Summary {
	s := Summary{Calls: len(calls)}
	for _, c := range calls {
		if !c.Success {
			s.Failed++
		}
		s.InputTokens += c.InputTokens
		s.OutputTokens += c.OutputTokens
		s.LatencyMs += int64(c.LatencyMs)
	}
	return s
}
