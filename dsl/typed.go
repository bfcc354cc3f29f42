package dsl

import (
	"context"
	"fmt"

	blogschema "github.com/reoring/blogschema"
	js "github.com/reoring/blogschema/jsonschema"
)

type typedSchema[T any] struct{ r blogschema.Rule }

// Typed projects a rule onto T. Parse fails with invalid_type when the
// parsed value is not a T, e.g. Typed[map[string]any](dsl.Object()...).
func Typed[T any](r blogschema.Rule) blogschema.Schema[T] { return typedSchema[T]{r: r} }

func (s typedSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	out, err := s.r.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	tv, ok := out.(T)
	if !ok {
		return zero, invalidType(fmt.Sprintf("%T", zero))
	}
	return tv, nil
}

func (s typedSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s typedSchema[T]) JSONSchema() (*js.Schema, error) { return s.r.JSONSchema() }
