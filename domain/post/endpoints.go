package post

import (
	"net/http"

	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/ids"
	"github.com/reoring/blogschema/query"
)

var (
	NotFound  = general.Failure(http.StatusNotFound, ids.Post.NotFound)
	NotAuthor = general.Failure(http.StatusForbidden, ids.Post.NotAuthor)
	Conflict  = general.Failure(http.StatusConflict, ids.Post.SlugDuplicate)
)

// ListQuery filters and sorts the post list, e.g.
// ?tags=go,web&sort=publishedAt:desc,title&status=published.
var ListQuery = general.Pagination().Extend().
	Field("sort", query.Sort("createdAt", "publishedAt", "title")).
	Field("tags", query.Array(query.Options{Unique: true})).
	Field("author", general.ResourceID()).
	Field("status", Status).
	MustBuild()

var (
	postParams = general.Params("postId")
	createReq  = endpoint.Request{Body: Draft}
	getReq     = endpoint.Request{Params: postParams}
	updateReq  = endpoint.Request{Params: postParams, Body: Changes}
	deleteReq  = endpoint.Request{Params: postParams}
	listReq    = endpoint.Request{Query: ListQuery}
)

// Endpoints are the post endpoints.
var Endpoints = endpoint.NewGroup("post",
	&endpoint.Endpoint{
		Name:    "create",
		Method:  http.MethodPost,
		Path:    "/posts",
		Auth:    true,
		Request: createReq,
		Response: general.Responses(true,
			general.Created(Post),
			general.BadRequest(createReq),
			Conflict,
		),
	},
	&endpoint.Endpoint{
		Name:    "get",
		Method:  http.MethodGet,
		Path:    "/posts/:postId",
		Request: getReq,
		Response: general.Responses(false,
			general.OK(Post),
			general.BadRequest(getReq),
			NotFound,
		),
	},
	&endpoint.Endpoint{
		Name:    "update",
		Method:  http.MethodPatch,
		Path:    "/posts/:postId",
		Auth:    true,
		Request: updateReq,
		Response: general.Responses(true,
			general.OK(Post),
			general.BadRequest(updateReq),
			NotAuthor,
			NotFound,
			Conflict,
		),
	},
	&endpoint.Endpoint{
		Name:    "delete",
		Method:  http.MethodDelete,
		Path:    "/posts/:postId",
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
		Name:        "list",
		Method:      http.MethodGet,
		Path:        "/posts",
		Description: "List posts, newest first unless sort is given",
		Request:     listReq,
		Response: general.Responses(false,
			general.OK(general.Page(Summary)),
			general.BadRequest(listReq),
		),
	},
)
