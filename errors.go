package blogschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownKey     = "unknown_key"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodePattern        = "pattern"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidLiteral = "invalid_literal"
	CodeInvalidFormat  = "invalid_format"
	CodeInvalidUnion   = "invalid_union"
	CodeParseError     = "parse_error"
	CodeCustom         = "custom"
)

// Issue represents a single validation entry.
type Issue struct {
	Path     string // JSON Pointer (for example: /items/2/price).
	Segments []any  // Path as string keys and int indexes.
	Code     string
	Message  string
	Cause    error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "got":0}) and,
	// for tagged rules, the decoded identifier under "errorId".
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_short at /username: 2001|Username must be at least 3 characters
		fmt.Fprintf(b, "%s at %s", it.Code, pointerOrRoot(it.Path))
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages returns the message of every issue in order.
func (iss Issues) Messages() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

// Under re-roots every issue below seg (a string key or an int index).
func (iss Issues) Under(seg any) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		segs := make([]any, 0, len(it.Segments)+1)
		segs = append(segs, seg)
		segs = append(segs, it.Segments...)
		it.Segments = segs
		it.Path = PathOf(segs...).Pointer()
		out[i] = it
	}
	return out
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
