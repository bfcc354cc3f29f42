package dsl

import (
	"context"
	"fmt"
	"strings"

	blogschema "github.com/reoring/blogschema"
	js "github.com/reoring/blogschema/jsonschema"
)

// LiteralSchema accepts exactly one value. Numbers compare by value, so
// Literal(200) accepts 200, 200.0 and json.Number("200").
type LiteralSchema struct {
	value any
	msg   []string
}

// Literal returns a schema matching v.
func Literal(v any, msg ...string) *LiteralSchema { return &LiteralSchema{value: v, msg: msg} }

// Value returns the literal.
func (l *LiteralSchema) Value() any { return l.value }

func (l *LiteralSchema) Parse(ctx context.Context, v any) (any, error) {
	if !equalValues(l.value, v) {
		expected := fmt.Sprintf("%v", l.value)
		return nil, fail(blogschema.CodeInvalidLiteral, message(l.msg, blogschema.CodeInvalidLiteral, map[string]string{"expected": expected}),
			map[string]any{"expected": l.value, "got": v})
	}
	return l.value, nil
}

func (l *LiteralSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Const: l.value}, nil }

// EnumSchema accepts one of a fixed set of strings.
type EnumSchema struct {
	values []string
	msg    []string
}

// Enum returns a schema matching one of values.
func Enum(values ...string) *EnumSchema { return &EnumSchema{values: values} }

// Message sets the failure message.
func (e *EnumSchema) Message(msg string) *EnumSchema { e.msg = []string{msg}; return e }

// Values returns the accepted values.
func (e *EnumSchema) Values() []string { return append([]string(nil), e.values...) }

func (e *EnumSchema) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, invalidType("string")
	}
	for _, c := range e.values {
		if c == s {
			return s, nil
		}
	}
	return nil, fail(blogschema.CodeInvalidEnum, message(e.msg, blogschema.CodeInvalidEnum, map[string]string{"values": strings.Join(e.values, ", ")}),
		map[string]any{"values": e.Values(), "got": s})
}

func (e *EnumSchema) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.values))
	for i, v := range e.values {
		vals[i] = v
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

type anySchema struct{}

// Any accepts every value unchanged.
func Any() blogschema.Rule { return anySchema{} }

func (anySchema) Parse(ctx context.Context, v any) (any, error) { return v, nil }
func (anySchema) JSONSchema() (*js.Schema, error)               { return &js.Schema{}, nil }

type neverSchema struct{ msg []string }

// Never rejects every value.
func Never(msg ...string) blogschema.Rule { return &neverSchema{msg: msg} }

func (n neverSchema) Parse(ctx context.Context, v any) (any, error) {
	return nil, invalidType("never", n.msg...)
}
func (neverSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Not: &js.Schema{}}, nil }
