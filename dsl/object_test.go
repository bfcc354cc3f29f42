package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogschema "github.com/reoring/blogschema"
	g "github.com/reoring/blogschema/dsl"
)

func TestObject_RequiredUnknownAndNested(t *testing.T) {
	ctx := context.Background()
	obj := g.Object().
		Field("name", g.String().Min(1)).Required("name is required").
		Field("age", g.Int()).
		Field("tags", g.Array(g.String().Max(3))).
		MustBuild()

	v, err := obj.Parse(ctx, map[string]any{"name": "a", "tags": []any{"x"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "a", "tags": []any{"x"}}, v)

	iss := issuesOf(t, func() error {
		_, err := obj.Parse(ctx, map[string]any{"tags": []any{"ok", "toolong"}, "zzz": 1, "yyy": 2})
		return err
	}())
	require.Len(t, iss, 4)
	assert.Equal(t, "/name", iss[0].Path)
	assert.Equal(t, blogschema.CodeRequired, iss[0].Code)
	assert.Equal(t, "name is required", iss[0].Message)
	assert.Equal(t, "/tags/1", iss[1].Path)
	assert.Equal(t, []any{"tags", 1}, iss[1].Segments)
	assert.Equal(t, "/yyy", iss[2].Path)
	assert.Equal(t, blogschema.CodeUnknownKey, iss[2].Code)
	assert.Equal(t, "/zzz", iss[3].Path)
}

func TestObject_UnknownPolicies(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{"a": "x", "extra": true}

	v, err := g.Object().Field("a", g.String()).UnknownStrip().MustBuild().Parse(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "x"}, v)

	v, err = g.Object().Field("a", g.String()).UnknownPassthrough().MustBuild().Parse(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, v)
}

func TestObject_OptionalWrapperOverridesRequired(t *testing.T) {
	obj := g.Object().Field("a", g.Optional(g.String())).Required().MustBuild()
	_, err := obj.Parse(context.Background(), map[string]any{})
	assert.NoError(t, err)
	assert.False(t, obj.IsRequired("a"))
}

func TestObject_AcceptsStringMaps(t *testing.T) {
	obj := g.Object().Field("id", g.Int().CoerceFromString()).Required().MustBuild()
	v, err := obj.Parse(context.Background(), map[string]string{"id": "12"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 12}, v)
}

func TestObject_Refine(t *testing.T) {
	obj := g.Object().
		Field("password", g.String()).Required().
		Field("confirm", g.String()).Required().
		Refine("match", func(_ context.Context, m map[string]any) error {
			if m["password"] != m["confirm"] {
				return errors.New("passwords differ")
			}
			return nil
		}).
		MustBuild()

	_, err := obj.Parse(context.Background(), map[string]any{"password": "a", "confirm": "a"})
	assert.NoError(t, err)

	iss := issuesOf(t, func() error {
		_, err := obj.Parse(context.Background(), map[string]any{"password": "a", "confirm": "b"})
		return err
	}())
	assert.Equal(t, blogschema.CodeCustom, iss[0].Code)
	assert.Equal(t, "passwords differ", iss[0].Message)
	assert.Equal(t, "match", iss[0].Params["rule"])
}

func TestObject_PartialPickOmitExtend(t *testing.T) {
	base := g.Object().
		Field("a", g.String()).Required().
		Field("b", g.String()).Required().
		MustBuild()
	ctx := context.Background()

	_, err := base.Partial().Parse(ctx, map[string]any{})
	assert.NoError(t, err)

	assert.Equal(t, []string{"a"}, base.Pick("a").Keys())
	assert.Equal(t, []string{"b"}, base.Omit("a").Keys())

	ext := base.Extend().Field("c", g.Int()).Required().MustBuild()
	assert.Equal(t, []string{"a", "b", "c"}, ext.Keys())
	assert.Equal(t, []string{"a", "b"}, base.Keys())
}

func TestObject_BuildErrors(t *testing.T) {
	_, err := g.Object().Require("ghost").Build()
	assert.Error(t, err)
}

func TestObject_JSONSchema(t *testing.T) {
	s, err := g.Object().
		Field("a", g.String().Max(3)).Required().
		Field("b", g.Nullable(g.Int())).
		MustBuild().JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"a"}, s.Required)
	assert.Equal(t, false, s.AdditionalProperties)
	assert.Equal(t, 3, *s.Properties["a"].MaxLength)
	assert.True(t, s.Properties["b"].Nullable)
}
