package blogschema

import (
	"context"

	"github.com/reoring/blogschema/errid"
	js "github.com/reoring/blogschema/jsonschema"
)

// Rule is a validation rule over decoded JSON values (map[string]any,
// []any, string, json.Number/float64/int, bool, nil). Parse returns the
// normalized value or Issues.
type Rule interface {
	Parse(ctx context.Context, v any) (any, error)
	JSONSchema() (*js.Schema, error)
}

// Schema is a typed view over a Rule.
type Schema[T any] interface {
	// Parse validates v and converts the result to T.
	Parse(ctx context.Context, v any) (T, error)
	// Validate reports whether v conforms, discarding the value.
	Validate(ctx context.Context, v any) error
	JSONSchema() (*js.Schema, error)
}

// Composite is implemented by rules that wrap or combine other rules
// (objects, arrays, unions, optional/nullable/refine wrappers, lazies).
// Children must be stable: the same rule values on every call.
type Composite interface {
	Children() []Rule
}

// Tag pairs an error identifier with the shape of the data attached to it
// when it is reported in a response. Data is nil when no data is attached.
type Tag struct {
	ID   errid.ID
	Data Rule
}

// Tagged is implemented by rules that declare which error identifiers they
// can produce on failure.
type Tagged interface {
	ErrorTags() []Tag
}

// MissingAccepter is implemented by rules that let an object key be absent
// even when the field is marked required (optional wrappers and rules
// forwarding to them).
type MissingAccepter interface {
	AcceptsMissing() bool
}

// UnknownPolicy controls how unknown object keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Keep unknown keys as-is.
)
