package dsl

import (
	"context"
	"sync"

	blogschema "github.com/reoring/blogschema"
	js "github.com/reoring/blogschema/jsonschema"
)

// OptionalSchema lets an object key be absent. A present value, null
// included, goes to the inner rule; wrap it in Nullable to accept null.
type OptionalSchema struct{ inner blogschema.Rule }

// Optional wraps r so the enclosing object does not require the key.
func Optional(r blogschema.Rule) *OptionalSchema { return &OptionalSchema{inner: r} }

func (o *OptionalSchema) Parse(ctx context.Context, v any) (any, error) {
	return o.inner.Parse(ctx, v)
}

func (o *OptionalSchema) AcceptsMissing() bool            { return true }
func (o *OptionalSchema) Unwrap() blogschema.Rule         { return o.inner }
func (o *OptionalSchema) Children() []blogschema.Rule     { return []blogschema.Rule{o.inner} }
func (o *OptionalSchema) JSONSchema() (*js.Schema, error) { return o.inner.JSONSchema() }

// NullableSchema accepts JSON null in addition to the inner rule.
type NullableSchema struct{ inner blogschema.Rule }

// Nullable wraps r to accept nil.
func Nullable(r blogschema.Rule) *NullableSchema { return &NullableSchema{inner: r} }

func (n *NullableSchema) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.inner.Parse(ctx, v)
}

func (n *NullableSchema) Unwrap() blogschema.Rule     { return n.inner }
func (n *NullableSchema) Children() []blogschema.Rule { return []blogschema.Rule{n.inner} }

func (n *NullableSchema) JSONSchema() (*js.Schema, error) {
	s, err := n.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.Nullable = true
	return &cp, nil
}

// RefineSchema runs an extra check after the inner rule succeeded.
type RefineSchema struct {
	inner blogschema.Rule
	check func(context.Context, any) []blogschema.Issue
}

// Refine adds a predicate on the parsed value, reported as a custom issue
// with msg at the root.
func Refine(r blogschema.Rule, ok func(any) bool, msg ...string) *RefineSchema {
	failMsg := textOf(msg, blogschema.CodeCustom, nil)
	return &RefineSchema{inner: r, check: func(_ context.Context, v any) []blogschema.Issue {
		if ok(v) {
			return nil
		}
		return []blogschema.Issue{blogschema.IssueAt(blogschema.Root(), blogschema.CodeCustom, failMsg.String(), nil)}
	}}
}

// SuperRefine adds a check that may report several issues at arbitrary
// paths, e.g. one per duplicated element.
func SuperRefine(r blogschema.Rule, check func(ctx context.Context, v any) []blogschema.Issue) *RefineSchema {
	return &RefineSchema{inner: r, check: check}
}

func (r *RefineSchema) Parse(ctx context.Context, v any) (any, error) {
	out, err := r.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	if iss := r.check(ctx, out); len(iss) > 0 {
		return nil, blogschema.Issues(iss)
	}
	return out, nil
}

func (r *RefineSchema) AcceptsMissing() bool            { return acceptsMissing(r.inner) }
func (r *RefineSchema) Unwrap() blogschema.Rule         { return r.inner }
func (r *RefineSchema) Children() []blogschema.Rule     { return []blogschema.Rule{r.inner} }
func (r *RefineSchema) JSONSchema() (*js.Schema, error) { return r.inner.JSONSchema() }

// TransformSchema maps the parsed value.
type TransformSchema struct {
	inner blogschema.Rule
	fn    func(context.Context, any) (any, error)
}

// Transform parses with r and then applies fn. Errors from fn become
// custom issues at the root.
func Transform(r blogschema.Rule, fn func(context.Context, any) (any, error)) *TransformSchema {
	return &TransformSchema{inner: r, fn: fn}
}

func (t *TransformSchema) Parse(ctx context.Context, v any) (any, error) {
	out, err := t.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	res, err := t.fn(ctx, out)
	if err != nil {
		if iss, ok := blogschema.AsIssues(err); ok {
			return nil, iss
		}
		return nil, blogschema.Issues{blogschema.Issue{Path: "/", Code: blogschema.CodeCustom, Message: err.Error(), Cause: err}}
	}
	return res, nil
}

func (t *TransformSchema) AcceptsMissing() bool            { return acceptsMissing(t.inner) }
func (t *TransformSchema) Unwrap() blogschema.Rule         { return t.inner }
func (t *TransformSchema) Children() []blogschema.Rule     { return []blogschema.Rule{t.inner} }
func (t *TransformSchema) JSONSchema() (*js.Schema, error) { return t.inner.JSONSchema() }

// LazySchema defers construction, for self-referencing schemas such as
// threaded comments. The getter runs once.
type LazySchema struct {
	get  func() blogschema.Rule
	once sync.Once
	r    blogschema.Rule
}

// Lazy returns a rule resolved on first use.
func Lazy(get func() blogschema.Rule) *LazySchema { return &LazySchema{get: get} }

func (l *LazySchema) resolve() blogschema.Rule {
	l.once.Do(func() { l.r = l.get() })
	return l.r
}

func (l *LazySchema) Parse(ctx context.Context, v any) (any, error) {
	return l.resolve().Parse(ctx, v)
}

func (l *LazySchema) Children() []blogschema.Rule { return []blogschema.Rule{l.resolve()} }

// JSONSchema does not expand the target, the reference may be cyclic.
func (l *LazySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Description: "recursive"}, nil
}

func acceptsMissing(r blogschema.Rule) bool {
	m, ok := r.(blogschema.MissingAccepter)
	return ok && m.AcceptsMissing()
}
