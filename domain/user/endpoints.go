package user

import (
	"net/http"

	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/ids"
)

var (
	NotFound = general.Failure(http.StatusNotFound, ids.User.NotFound)
	Conflict = general.Failure(http.StatusConflict, ids.User.NameDuplicate, ids.User.EmailDuplicate)
)

// Session is returned by register and login.
var Session = dsl.Object().
	Field("token", dsl.String().NonEmpty()).Required().
	Field("expiresAt", general.Timestamp()).Required().
	Field("user", Private).Required().
	MustBuild()

var (
	registerReq = endpoint.Request{Body: Registration}
	loginReq    = endpoint.Request{Body: Credentials}
	getReq      = endpoint.Request{Params: general.Params("userId")}
	updateReq   = endpoint.Request{Params: general.Params("userId"), Body: ProfileUpdate}
	deleteReq   = endpoint.Request{Params: general.Params("userId")}
	listReq     = endpoint.Request{Query: general.Pagination()}
)

// Endpoints are the user endpoints.
var Endpoints = endpoint.NewGroup("user",
	&endpoint.Endpoint{
		Name:        "register",
		Method:      http.MethodPost,
		Path:        "/users",
		Description: "Create an account",
		Request:     registerReq,
		Response: general.Responses(false,
			general.Created(Session),
			general.BadRequest(registerReq),
			Conflict,
		),
	},
	&endpoint.Endpoint{
		Name:    "login",
		Method:  http.MethodPost,
		Path:    "/sessions",
		Request: loginReq,
		Response: general.Responses(false,
			general.OK(Session),
			general.BadRequest(loginReq),
			general.Failure(http.StatusUnauthorized, ids.User.InvalidCredentials),
		),
	},
	&endpoint.Endpoint{
		Name:    "get",
		Method:  http.MethodGet,
		Path:    "/users/:userId",
		Request: getReq,
		Response: general.Responses(false,
			general.OK(Public),
			general.BadRequest(getReq),
			NotFound,
		),
	},
	&endpoint.Endpoint{
		Name:    "update",
		Method:  http.MethodPatch,
		Path:    "/users/:userId",
		Auth:    true,
		Request: updateReq,
		Response: general.Responses(true,
			general.OK(Private),
			general.BadRequest(updateReq),
			general.Forbidden,
			NotFound,
			general.Failure(http.StatusConflict, ids.User.EmailDuplicate),
		),
	},
	&endpoint.Endpoint{
		Name:    "delete",
		Method:  http.MethodDelete,
		Path:    "/users/:userId",
		Auth:    true,
		Request: deleteReq,
		Response: general.Responses(true,
			general.NoContent,
			general.BadRequest(deleteReq),
			general.Forbidden,
			NotFound,
		),
	},
	&endpoint.Endpoint{
		Name:    "list",
		Method:  http.MethodGet,
		Path:    "/users",
		Request: listReq,
		Response: general.Responses(false,
			general.OK(general.Page(Public)),
			general.BadRequest(listReq),
		),
	},
)
