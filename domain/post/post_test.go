package post_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blogschema/domain/post"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

func TestEndpoints_Consistent(t *testing.T) {
	require.NoError(t, post.Endpoints.Check(ids.MustRegistry()))
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	_, err := post.Tags.Parse(ctx, []any{"go", "web"})
	assert.NoError(t, err)

	_, err = post.Tags.Parse(ctx, []any{"go", "web", "go"})
	got := errschema.Identify(err)
	require.Len(t, got, 1)
	assert.Equal(t, ids.Post.TagDuplicate, got[0].ID)
	assert.Equal(t, []any{2}, got[0].Path)
	assert.True(t, got[0].PathData)

	many := make([]any, post.MaxTags+1)
	for i := range many {
		many[i] = string(rune('a' + i))
	}
	_, err = post.Tags.Parse(ctx, many)
	got = errschema.Identify(err)
	require.Len(t, got, 1)
	assert.Equal(t, ids.Post.TooManyTags, got[0].ID)

	_, err = post.Tags.Parse(ctx, []any{"Go!"})
	got = errschema.Identify(err)
	require.Len(t, got, 1)
	assert.Equal(t, ids.Post.TagInvalid, got[0].ID)
	assert.Equal(t, []any{0}, got[0].Path)
}

func TestCreate(t *testing.T) {
	e, _ := post.Endpoints.Get("create")
	ctx := context.Background()

	got, err := e.ValidateRequest(ctx, endpoint.RequestInput{Body: []byte(`{"title":"  Hello  ","body":"text","slug":"hello-world","status":"draft"}`)})
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Body.(map[string]any)["title"])

	_, err = e.ValidateRequest(ctx, endpoint.RequestInput{Body: map[string]any{"title": "   ", "body": "", "slug": "Hello World", "status": "archived"}})
	var failed []errid.ID
	for _, f := range errschema.Identify(err) {
		failed = append(failed, f.ID)
	}
	assert.ElementsMatch(t, []errid.ID{ids.Post.TitleEmpty, ids.Post.BodyEmpty, ids.Post.SlugInvalid, ids.Post.StatusInvalid}, failed)
}

func TestUpdate_AllFieldsOptional(t *testing.T) {
	e, _ := post.Endpoints.Get("update")
	_, err := e.ValidateRequest(context.Background(), endpoint.RequestInput{
		Params: map[string]string{"postId": "1"},
		Body:   map[string]any{},
	})
	assert.NoError(t, err)
}

func TestList_Query(t *testing.T) {
	e, _ := post.Endpoints.Get("list")
	ctx := context.Background()

	got, err := e.ValidateRequest(ctx, endpoint.RequestInput{Query: url.Values{
		"sort": {"publishedAt:desc,title"},
		"tags": {"go,web"},
		"page": {"2"},
	}})
	require.NoError(t, err)
	q := got.Query.(map[string]any)
	assert.Equal(t, []any{"go", "web"}, q["tags"])
	assert.Equal(t, 2, q["page"])

	_, err = e.ValidateRequest(ctx, endpoint.RequestInput{Query: url.Values{"sort": {"views:desc"}}})
	failures := errschema.Identify(err)
	require.Len(t, failures, 1)
	assert.Equal(t, ids.Request.QueryArrayKeyNotAllowed, failures[0].ID)
	assert.Equal(t, []any{"query", "sort", 0}, failures[0].Path)

	assert.True(t, e.RequestErrors().Has(ids.Request.QueryArrayValueNotAllowed))
	assert.Contains(t, e.Response.Envelopes()[1].ErrorIDs(), ids.Request.QueryArrayDuplicate)
}
