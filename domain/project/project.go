// Package project defines the portfolio projects users show on their
// profile.
package project

import (
	"net/http"

	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/domain/user"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Name is a trimmed, non-empty project name.
var Name = errschema.New(map[string]errid.ID{
	"empty": ids.Project.NameEmpty,
	"long":  ids.Project.NameTooLong,
}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Trim().NonEmpty(m["empty"]).Max(64, m["long"])
})

var Description = errschema.New(map[string]errid.ID{"long": ids.Project.DescriptionTooLong}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Max(1000, m["long"])
})

var URL = errschema.New(map[string]errid.ID{"invalid": ids.Project.URLInvalid}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String(m["invalid"]).URL(m["invalid"])
})

var Visibility = errschema.New(map[string]errid.ID{"invalid": ids.Project.VisibilityInvalid}, func(m errschema.Messages) *dsl.EnumSchema {
	return dsl.Enum(VisibilityPublic, VisibilityPrivate).Message(m["invalid"])
})

// Draft is the create body.
var Draft = dsl.Object().
	Field("name", Name).Required().
	Field("description", Description).
	Field("url", dsl.Nullable(URL)).
	Field("visibility", Visibility).Required().
	MustBuild()

var Changes = Draft.Partial()

// Project is the project as returned by the API.
var Project = dsl.Object().
	Field("id", general.ID()).Required().
	Field("name", dsl.String()).Required().
	Field("description", dsl.String()).Required().
	Field("url", dsl.Nullable(dsl.String())).Required().
	Field("visibility", dsl.Enum(VisibilityPublic, VisibilityPrivate)).Required().
	Field("owner", user.Summary).Required().
	Field("members", dsl.Array(user.Summary).Max(50)).Required().
	Field("createdAt", general.Timestamp()).Required().
	MustBuild()

// ListQuery filters the project list by owner and visibility.
var ListQuery = general.Pagination().Extend().
	Field("owner", general.ResourceID()).
	Field("visibility", Visibility).
	MustBuild()

var (
	NotFound  = general.Failure(http.StatusNotFound, ids.Project.NotFound)
	NotMember = general.Failure(http.StatusForbidden, ids.Project.NotMember)

	params    = general.Params("projectId")
	createReq = endpoint.Request{Body: Draft}
	getReq    = endpoint.Request{Params: params}
	updateReq = endpoint.Request{Params: params, Body: Changes}
	deleteReq = endpoint.Request{Params: params}
	listReq   = endpoint.Request{Query: ListQuery}
)

// Endpoints are the project endpoints.
var Endpoints = endpoint.NewGroup("project",
	&endpoint.Endpoint{
		Name:    "create",
		Method:  http.MethodPost,
		Path:    "/projects",
		Auth:    true,
		Request: createReq,
		Response: general.Responses(true,
			general.Created(Project),
			general.BadRequest(createReq),
			general.Failure(http.StatusConflict, ids.Project.NameDuplicate),
		),
	},
	&endpoint.Endpoint{
		Name:    "get",
		Method:  http.MethodGet,
		Path:    "/projects/:projectId",
		Request: getReq,
		Response: general.Responses(false,
			general.OK(Project),
			general.BadRequest(getReq),
			NotFound,
		),
	},
	&endpoint.Endpoint{
		Name:    "update",
		Method:  http.MethodPatch,
		Path:    "/projects/:projectId",
		Auth:    true,
		Request: updateReq,
		Response: general.Responses(true,
			general.OK(Project),
			general.BadRequest(updateReq),
			NotMember,
			NotFound,
			general.Failure(http.StatusConflict, ids.Project.NameDuplicate),
			general.Failure(http.StatusUnprocessableEntity, ids.Project.MemberLimit),
		),
	},
	&endpoint.Endpoint{
		Name:    "delete",
		Method:  http.MethodDelete,
		Path:    "/projects/:projectId",
		Auth:    true,
		Request: deleteReq,
		Response: general.Responses(true,
			general.NoContent,
			general.BadRequest(deleteReq),
			NotMember,
			NotFound,
		),
	},
	&endpoint.Endpoint{
		Name:    "list",
		Method:  http.MethodGet,
		Path:    "/projects",
		Request: listReq,
		Response: general.Responses(false,
			general.OK(general.Page(Project)),
			general.BadRequest(listReq),
		),
	},
)
