// Package comment defines threaded comment contracts.
package comment

import (
	"net/http"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/domain/post"
	"github.com/reoring/blogschema/domain/user"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

// MaxDepth is how deep replies may nest below a top-level comment.
const MaxDepth = 8

// Body is the comment text.
var Body = errschema.New(map[string]errid.ID{
	"empty": ids.Comment.BodyEmpty,
	"long":  ids.Comment.BodyTooLong,
}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Trim().NonEmpty(m["empty"]).Max(2000, m["long"])
})

// Draft is the create body; parentId answers another comment.
var Draft = dsl.Object().
	Field("body", Body).Required().
	Field("parentId", general.ResourceID()).
	MustBuild()

var Changes = Draft.Pick("body")

// Comment is a single comment without its replies.
var Comment = dsl.Object().
	Field("id", general.ID()).Required().
	Field("postId", general.ID()).Required().
	Field("parentId", dsl.Nullable(general.ID())).Required().
	Field("body", dsl.String()).Required().
	Field("author", user.Summary).Required().
	Field("createdAt", general.Timestamp()).Required().
	Field("updatedAt", dsl.Nullable(general.Timestamp())).Required().
	MustBuild()

// Thread is a comment with its nested replies.
var Thread *dsl.ObjectSchema

func init() {
	Thread = Comment.Extend().
		Field("replies", dsl.Array(dsl.Lazy(func() blogschema.Rule { return Thread }))).Required().
		MustBuild()
}

var (
	NotFound  = general.Failure(http.StatusNotFound, ids.Comment.NotFound)
	NotAuthor = general.Failure(http.StatusForbidden, ids.Comment.NotAuthor)
)

var (
	postParams    = general.Params("postId")
	commentParams = general.Params("commentId")
	createReq     = endpoint.Request{Params: postParams, Body: Draft}
	listReq       = endpoint.Request{Params: postParams, Query: general.Pagination()}
	updateReq     = endpoint.Request{Params: commentParams, Body: Changes}
	deleteReq     = endpoint.Request{Params: commentParams}
	repliesReq    = endpoint.Request{Params: commentParams, Query: general.Pagination()}
)

// Endpoints are the comment endpoints, built in init.
var Endpoints *endpoint.Group

func init() {
	Endpoints = endpoint.NewGroup("comment",
		&endpoint.Endpoint{
			Name:    "create",
			Method:  http.MethodPost,
			Path:    "/posts/:postId/comments",
			Auth:    true,
			Request: createReq,
			Response: general.Responses(true,
				general.Created(Comment),
				general.BadRequest(createReq),
				general.Failure(http.StatusForbidden, ids.Comment.PostLocked),
				general.Failure(http.StatusNotFound, ids.Post.NotFound, ids.Comment.ParentNotFound),
				general.Failure(http.StatusUnprocessableEntity, ids.Comment.ThreadTooDeep),
			),
		},
		&endpoint.Endpoint{
			Name:    "list",
			Method:  http.MethodGet,
			Path:    "/posts/:postId/comments",
			Request: listReq,
			Response: general.Responses(false,
				general.OK(general.Page(Thread)),
				general.BadRequest(listReq),
				post.NotFound,
			),
		},
		&endpoint.Endpoint{
			Name:    "update",
			Method:  http.MethodPatch,
			Path:    "/comments/:commentId",
			Auth:    true,
			Request: updateReq,
			Response: general.Responses(true,
				general.OK(Comment),
				general.BadRequest(updateReq),
				NotAuthor,
				NotFound,
			),
		},
		&endpoint.Endpoint{
			Name:    "delete",
			Method:  http.MethodDelete,
			Path:    "/comments/:commentId",
			Auth:    true,
			Request: deleteReq,
			Response: general.Responses(true,
				general.NoContent,
				general.BadRequest(deleteReq),
				NotAuthor,
				NotFound,
			),
		},
		&endpoint.Endpoint{
			Name:        "replies",
			Method:      http.MethodGet,
			Path:        "/comments/:commentId/replies",
			Description: "List the direct replies of a comment with their own threads",
			Request:     repliesReq,
			Response: general.Responses(false,
				general.OK(general.Page(Thread)),
				general.BadRequest(repliesReq),
				NotFound,
			),
		},
	)
}

// Depth returns how deep the replies of a decoded thread nest.
func Depth(thread map[string]any) int {
	deepest := 0
	replies, _ := thread["replies"].([]any)
	for _, r := range replies {
		child, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if d := Depth(child) + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}
