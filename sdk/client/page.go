package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PageQuery is the wire-level shape of one paginated list request.
type PageQuery struct {
	Page     int
	PageSize int
	Ordering string
	Filters  map[string]string
}

// PageResult is the uniform list response shape. The API answers list
// requests either as {"count": n, "results": [...]} or as a bare array;
// both are normalized here so nothing downstream sees the variance.
type PageResult struct {
	Rows       []json.RawMessage
	TotalCount int
}

type pagedEnvelope struct {
	Count   *int              `json:"count"`
	Results []json.RawMessage `json:"results"`
}

func normalizePage(body []byte) (PageResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return PageResult{}, fmt.Errorf("empty list response")
	}
	if trimmed[0] == '[' {
		var rows []json.RawMessage
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return PageResult{}, fmt.Errorf("decode list response: %w", err)
		}
		return PageResult{Rows: rows, TotalCount: len(rows)}, nil
	}
	var env pagedEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return PageResult{}, fmt.Errorf("decode list response: %w", err)
	}
	if env.Count == nil && env.Results == nil {
		return PageResult{}, fmt.Errorf("unexpected list response shape")
	}
	total := len(env.Results)
	if env.Count != nil {
		total = *env.Count
	}
	return PageResult{Rows: env.Results, TotalCount: total}, nil
}

// FlexID decodes the mixed id representations the API uses: numeric for most
// resources, strings for sub-admin mobile numbers. Everything downstream
// sees a string.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id %s: %w", b, err)
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }
