package blogschema

import (
	"bytes"
	"context"
	"io"

	json "github.com/goccy/go-json"
)

// Validate runs r and discards the parsed value.
func Validate(ctx context.Context, r Rule, v any) error {
	_, err := r.Parse(ctx, v)
	return err
}

// SafeParse parses v with r, returning (nil, false) on validation error.
func SafeParse(ctx context.Context, r Rule, v any) (any, bool) {
	out, err := r.Parse(ctx, v)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Is returns true if v conforms to r.
func Is(ctx context.Context, r Rule, v any) bool {
	return Validate(ctx, r, v) == nil
}

// ParseJSON decodes data (numbers kept as json.Number) and parses the result
// with r. Syntax errors are reported as a parse_error issue at the root.
func ParseJSON(ctx context.Context, r Rule, data []byte) (any, error) {
	return ParseJSONReader(ctx, r, bytes.NewReader(data))
}

// ParseJSONReader is like ParseJSON but reads a single JSON document from rd.
func ParseJSONReader(ctx context.Context, r Rule, rd io.Reader) (any, error) {
	v, err := DecodeJSON(rd)
	if err != nil {
		return nil, err
	}
	return r.Parse(ctx, v)
}

// DecodeJSON decodes one JSON document into the generic value shape rules
// operate on.
func DecodeJSON(rd io.Reader) (any, error) {
	dec := json.NewDecoder(rd)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{IssueAt(Root(), CodeParseError, err.Error(), nil)}
	}
	return v, nil
}

// ---- Parse-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that makes composite rules stop at
// the first failing child.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
