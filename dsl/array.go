package dsl

import (
	"context"
	"reflect"
	"strconv"

	blogschema "github.com/reoring/blogschema"
	js "github.com/reoring/blogschema/jsonschema"
)

// ArraySchema validates slices element by element.
type ArraySchema struct {
	elem   blogschema.Rule
	minLen int
	maxLen int
	minMsg []string
	maxMsg []string
}

// Array returns an array schema with the given element rule.
func Array(elem blogschema.Rule) *ArraySchema {
	return &ArraySchema{elem: elem, minLen: -1, maxLen: -1}
}

// Min sets the minimum length.
func (a *ArraySchema) Min(n int, msg ...string) *ArraySchema { a.minLen = n; a.minMsg = msg; return a }

// Max sets the maximum length.
func (a *ArraySchema) Max(n int, msg ...string) *ArraySchema { a.maxLen = n; a.maxMsg = msg; return a }

// Length requires exactly n elements.
func (a *ArraySchema) Length(n int, msg ...string) *ArraySchema {
	return a.Min(n, msg...).Max(n, msg...)
}

// NonEmpty is Min(1).
func (a *ArraySchema) NonEmpty(msg ...string) *ArraySchema { return a.Min(1, msg...) }

// Element returns the element rule.
func (a *ArraySchema) Element() blogschema.Rule { return a.elem }

func (a *ArraySchema) Parse(ctx context.Context, v any) (any, error) {
	items, ok := asSlice(v)
	if !ok {
		return nil, invalidType("array")
	}
	var iss blogschema.Issues
	if a.minLen >= 0 && len(items) < a.minLen {
		iss = append(iss, blogschema.IssueAt(blogschema.Root(), blogschema.CodeTooShort,
			message(a.minMsg, blogschema.CodeTooShort, map[string]string{"min": strconv.Itoa(a.minLen)}),
			map[string]any{"min": a.minLen, "got": len(items)}))
	}
	if a.maxLen >= 0 && len(items) > a.maxLen {
		iss = append(iss, blogschema.IssueAt(blogschema.Root(), blogschema.CodeTooLong,
			message(a.maxMsg, blogschema.CodeTooLong, map[string]string{"max": strconv.Itoa(a.maxLen)}),
			map[string]any{"max": a.maxLen, "got": len(items)}))
	}
	if len(iss) > 0 && blogschema.IsFailFast(ctx) {
		return nil, iss
	}

	out := make([]any, len(items))
	for i, it := range items {
		parsed, err := a.elem.Parse(ctx, it)
		if err != nil {
			iss = append(iss, issuesFromErr(err).Under(i)...)
			if blogschema.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[i] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *ArraySchema) Children() []blogschema.Rule { return []blogschema.Rule{a.elem} }

func (a *ArraySchema) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "array", Items: items}
	if a.minLen >= 0 {
		out.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		out.MaxItems = js.Int(a.maxLen)
	}
	return out, nil
}

// asSlice accepts []any and any other slice type.
func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
