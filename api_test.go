package blogschema_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogschema "github.com/reoring/blogschema"
	g "github.com/reoring/blogschema/dsl"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := blogschema.Issues{
		{Path: "/a", Code: blogschema.CodeInvalidType, Message: "expected string"},
		{Path: "/b", Code: blogschema.CodeUnknownKey},
		{Path: "", Code: blogschema.CodeTooShort},
		{Path: "/d", Code: blogschema.CodeTooLong},
	}
	s := iss.Error()
	assert.True(t, strings.HasPrefix(s, "invalid_type at /a: expected string; unknown_key at /b; too_short at /"))
	assert.Contains(t, s, "(total 4)")
	assert.Empty(t, blogschema.Issues{}.Error())
}

func TestIssues_Under(t *testing.T) {
	iss := blogschema.Issues{
		blogschema.PathOf("title").Issue(blogschema.CodeTooLong, "x"),
		blogschema.Root().Issue(blogschema.CodeInvalidType, "y"),
	}
	got := iss.Under(2).Under("posts")
	assert.Equal(t, "/posts/2/title", got[0].Path)
	assert.Equal(t, []any{"posts", 2, "title"}, got[0].Segments)
	assert.Equal(t, "/posts/2", got[1].Path)
	// the receiver is untouched
	assert.Equal(t, "/title", iss[0].Path)
	assert.Equal(t, []string{"x", "y"}, got.Messages())
}

func TestPathRef_Pointer(t *testing.T) {
	assert.Equal(t, "/", blogschema.Root().Pointer())
	assert.Equal(t, "/a~1b/c~0d/3", blogschema.Root().Field("a/b").Field("c~d").Index(3).Pointer())

	p := blogschema.PathOf("x", 1, true)
	assert.Equal(t, []any{"x", 1, "true"}, p.Segments())

	it := p.Issue(blogschema.CodeCustom, "m", "k", 1)
	assert.Equal(t, map[string]any{"k": 1}, it.Params)
	assert.Equal(t, "/x/1/true", it.Path)
}

func TestAsIssues_Wrapped(t *testing.T) {
	base := blogschema.Issues{blogschema.Root().Issue(blogschema.CodeRequired, "r")}
	wrapped := fmt.Errorf("decode: %w", base)
	iss, ok := blogschema.AsIssues(wrapped)
	require.True(t, ok)
	assert.Len(t, iss, 1)

	_, ok = blogschema.AsIssues(errors.New("plain"))
	assert.False(t, ok)
	_, ok = blogschema.AsIssues(nil)
	assert.False(t, ok)
}

func TestParseJSON(t *testing.T) {
	ctx := context.Background()
	obj := g.Object().
		Field("id", g.Int()).Required().
		Field("name", g.String()).Required().
		MustBuild()

	v, err := blogschema.ParseJSON(ctx, obj, []byte(`{"id": 12, "name": "a"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 12, "name": "a"}, v)

	_, err = blogschema.ParseJSON(ctx, obj, []byte(`{"id": 1.5, "name": "a"}`))
	iss, ok := blogschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/id", iss[0].Path)

	_, err = blogschema.ParseJSON(ctx, obj, []byte(`{"id":`))
	iss, ok = blogschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, blogschema.CodeParseError, iss[0].Code)
}

func TestFailFast(t *testing.T) {
	obj := g.Object().
		Field("a", g.String()).Required().
		Field("b", g.String()).Required().
		MustBuild()

	_, err := obj.Parse(context.Background(), map[string]any{})
	iss, _ := blogschema.AsIssues(err)
	assert.Len(t, iss, 2)

	ctx := blogschema.WithFailFast(context.Background(), true)
	assert.True(t, blogschema.IsFailFast(ctx))
	_, err = obj.Parse(ctx, map[string]any{})
	iss, _ = blogschema.AsIssues(err)
	assert.Len(t, iss, 1)
	assert.Equal(t, "/a", iss[0].Path)
}

func TestValidateHelpers(t *testing.T) {
	ctx := context.Background()
	assert.True(t, blogschema.Is(ctx, g.String(), "x"))
	assert.False(t, blogschema.Is(ctx, g.String(), 1))
	_, ok := blogschema.SafeParse(ctx, g.Int(), "x")
	assert.False(t, ok)
	assert.NoError(t, blogschema.Validate(ctx, g.Bool(), true))
}
