// Package response builds rules for response envelopes and provides the
// matching wire types.
//
// A success envelope is {status, body: {status: "success", data?}} and a
// failure envelope is {status, body: {status: "failure", errors: [...]}}
// where every error is {code, message, data?}.
package response

import (
	"context"
	"reflect"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/aggregate"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
	js "github.com/reoring/blogschema/jsonschema"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// EnvelopeRule validates one response envelope and remembers what it
// declares.
type EnvelopeRule struct {
	rule    *dsl.ObjectSchema
	status  int
	success bool
	errs    []errid.ID
}

// Status returns the declared HTTP status code.
func (e *EnvelopeRule) Status() int { return e.status }

// IsSuccess reports whether this is a success envelope.
func (e *EnvelopeRule) IsSuccess() bool { return e.success }

// ErrorIDs lists the identifiers a failure envelope may carry, in
// declaration order.
func (e *EnvelopeRule) ErrorIDs() []errid.ID { return append([]errid.ID(nil), e.errs...) }

func (e *EnvelopeRule) Parse(ctx context.Context, v any) (any, error) { return e.rule.Parse(ctx, v) }
func (e *EnvelopeRule) JSONSchema() (*js.Schema, error)               { return e.rule.JSONSchema() }

// Success builds {status: <status>, body: {status: "success", data: <data>}}.
// Without a data rule the body must not contain data.
func Success(status int, data ...blogschema.Rule) *EnvelopeRule {
	body := dsl.Object().Field("status", dsl.Literal(StatusSuccess)).Required()
	if d := first(data); d != nil {
		body = body.Field("data", d).Required()
	}
	return &EnvelopeRule{rule: envelope(status, body.MustBuild()), status: status, success: true}
}

// FailureOpts tunes Failure.
type FailureOpts struct {
	// ErrorRequired rejects an empty errors array.
	ErrorRequired bool
}

// Failure builds {status: <status>, body: {status: "failure", errors: [...]}}.
// With no error rules errors must be empty; with one the elements must
// match it; with several they must match one of them.
func Failure(status int, errs []blogschema.Rule, opts ...FailureOpts) *EnvelopeRule {
	var o FailureOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	var list *dsl.ArraySchema
	switch len(errs) {
	case 0:
		list = dsl.Array(dsl.Any()).Max(0)
	case 1:
		list = dsl.Array(errs[0])
	default:
		list = dsl.Array(dsl.Union(errs...))
	}
	if o.ErrorRequired {
		list = list.NonEmpty()
	}

	body := dsl.Object().
		Field("status", dsl.Literal(StatusFailure)).Required().
		Field("errors", list).Required().
		MustBuild()

	return &EnvelopeRule{rule: envelope(status, body), status: status, errs: declaredIDs(errs)}
}

// declaredIDs finds the Error rules in errs, also below unions, wrappers
// and tagged rules, in first-occurrence order.
func declaredIDs(errs []blogschema.Rule) []errid.ID {
	var out []errid.ID
	seen := map[errid.ID]bool{}
	visited := map[uintptr]bool{}
	var visit func(r blogschema.Rule)
	visit = func(r blogschema.Rule) {
		if r == nil {
			return
		}
		if rv := reflect.ValueOf(r); rv.Kind() == reflect.Pointer {
			if visited[rv.Pointer()] {
				return
			}
			visited[rv.Pointer()] = true
		}
		if er, ok := r.(*ErrorRule); ok {
			if !seen[er.id] {
				seen[er.id] = true
				out = append(out, er.id)
			}
			return
		}
		if c, ok := r.(blogschema.Composite); ok {
			for _, child := range c.Children() {
				visit(child)
			}
		}
	}
	for _, r := range errs {
		visit(r)
	}
	return out
}

// FailureFor builds a failure envelope whose errors are every identifier
// aggregate.Of finds in r, each with its declared data shape.
func FailureFor(status int, r blogschema.Rule, opts ...FailureOpts) *EnvelopeRule {
	return Failure(status, ErrorsOf(aggregate.Of(r)), opts...)
}

// ErrorsOf returns one Error rule per tag in s.
func ErrorsOf(s aggregate.Set) []blogschema.Rule {
	tags := s.Tags()
	errs := make([]blogschema.Rule, 0, len(tags))
	for _, t := range tags {
		errs = append(errs, Error(t.ID, t.Data))
	}
	return errs
}

// ErrorRule validates one element of a failure body's errors array.
type ErrorRule struct {
	rule *dsl.ObjectSchema
	id   errid.ID
}

// ID returns the identifier the element must carry.
func (e *ErrorRule) ID() errid.ID { return e.id }

func (e *ErrorRule) Parse(ctx context.Context, v any) (any, error) { return e.rule.Parse(ctx, v) }
func (e *ErrorRule) JSONSchema() (*js.Schema, error)               { return e.rule.JSONSchema() }

// Error builds {code: <id.Code>, message: <id.Message>, data: <data>}.
// Without a data rule the element must not contain data.
func Error(id errid.ID, data ...blogschema.Rule) *ErrorRule {
	b := dsl.Object().
		Field("code", dsl.Literal(id.Code)).Required().
		Field("message", dsl.Literal(id.Message)).Required()
	if d := first(data); d != nil {
		b = b.Field("data", d).Required()
	}
	return &ErrorRule{rule: b.MustBuild(), id: id}
}

func envelope(status int, body blogschema.Rule) *dsl.ObjectSchema {
	return dsl.Object().
		Field("status", dsl.Literal(status)).Required().
		Field("body", body).Required().
		MustBuild()
}

func first(rs []blogschema.Rule) blogschema.Rule {
	if len(rs) == 0 {
		return nil
	}
	return rs[0]
}
