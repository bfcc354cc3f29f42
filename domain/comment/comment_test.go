package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/aggregate"
	"github.com/reoring/blogschema/domain/comment"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
	"github.com/reoring/blogschema/response"
)

func thread(id int, replies ...any) map[string]any {
	if replies == nil {
		replies = []any{}
	}
	return map[string]any{
		"id": id, "postId": 1, "parentId": nil, "body": "hi",
		"author":    map[string]any{"id": 3, "name": "alice", "displayName": nil, "avatarUrl": nil},
		"createdAt": "2026-01-02T03:04:05Z", "updatedAt": nil,
		"replies": replies,
	}
}

func TestEndpoints_Consistent(t *testing.T) {
	require.NoError(t, comment.Endpoints.Check(ids.MustRegistry()))
	assert.Equal(t, []string{"create", "list", "update", "delete", "replies"}, comment.Endpoints.Names())
}

func TestThread_Recursive(t *testing.T) {
	ctx := context.Background()
	tree := thread(1, thread(2, thread(3)))
	_, err := comment.Thread.Parse(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, 2, comment.Depth(tree))

	broken := thread(1, thread(2, map[string]any{"id": 3}))
	_, err = comment.Thread.Parse(ctx, broken)
	iss, ok := blogschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/replies/0/replies/0/author", iss[0].Path)

	// aggregation over the cycle terminates and finds nothing to report
	assert.Equal(t, 0, aggregate.Of(comment.Thread).Len())
}

func TestList_Response(t *testing.T) {
	e, _ := comment.Endpoints.Get("list")
	page := map[string]any{"items": []any{thread(1, thread(2))}, "page": 1, "limit": 20, "total": 1}
	assert.NoError(t, e.CheckEnvelope(context.Background(), response.OK(200, page)))
}

func TestCreate(t *testing.T) {
	e, _ := comment.Endpoints.Get("create")
	ctx := context.Background()

	_, err := e.ValidateRequest(ctx, endpoint.RequestInput{
		Params: map[string]string{"postId": "1"},
		Body:   map[string]any{"body": "nice post", "parentId": 4},
	})
	assert.NoError(t, err)

	_, err = e.ValidateRequest(ctx, endpoint.RequestInput{
		Params: map[string]string{"postId": "1"},
		Body:   map[string]any{"body": "  "},
	})
	got := errschema.Identify(err)
	require.Len(t, got, 1)
	assert.Equal(t, ids.Comment.BodyEmpty, got[0].ID)

	assert.Contains(t, e.Response.ErrorIDs(), ids.Comment.ThreadTooDeep)
	assert.Contains(t, e.Response.ErrorIDs(), ids.Post.NotFound)
}
