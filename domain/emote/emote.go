// Package emote defines reactions on posts and comments.
package emote

import (
	"net/http"

	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

// Available lists the emotes users can react with.
var Available = []string{"like", "love", "laugh", "wow", "sad", "angry"}

// Emote is one of Available.
var Emote = errschema.New(map[string]errid.ID{"unknown": ids.Emote.Unknown}, func(m errschema.Messages) *dsl.EnumSchema {
	return dsl.Enum(Available...).Message(m["unknown"])
})

// TargetType names what is reacted to.
var TargetType = errschema.New(map[string]errid.ID{"invalid": ids.Emote.TargetInvalid}, func(m errschema.Messages) *dsl.EnumSchema {
	return dsl.Enum("post", "comment").Message(m["invalid"])
})

var (
	targetParams = dsl.Object().
			Field("targetType", TargetType).Required().
			Field("targetId", general.ResourceID()).Required().
			MustBuild()
	emoteParams = targetParams.Extend().
			Field("emote", Emote).Required().
			MustBuild()
)

// Reaction is the react body.
var Reaction = dsl.Object().
	Field("emote", Emote).Required().
	MustBuild()

// Count is the tally of one emote on a target.
var Count = dsl.Object().
	Field("emote", dsl.Enum(Available...)).Required().
	Field("count", dsl.Int().Min(0)).Required().
	Field("reacted", dsl.Bool()).Required().
	MustBuild()

var Counts = dsl.Array(Count)

var (
	TargetNotFound = general.Failure(http.StatusNotFound, ids.Emote.TargetNotFound)

	listReq    = endpoint.Request{Params: targetParams}
	reactReq   = endpoint.Request{Params: targetParams, Body: Reaction}
	unreactReq = endpoint.Request{Params: emoteParams}
)

// Endpoints are the emote endpoints.
var Endpoints = endpoint.NewGroup("emote",
	&endpoint.Endpoint{
		Name:    "list",
		Method:  http.MethodGet,
		Path:    "/:targetType/:targetId/emotes",
		Request: listReq,
		Response: general.Responses(false,
			general.OK(Counts),
			general.BadRequest(listReq),
			TargetNotFound,
		),
	},
	&endpoint.Endpoint{
		Name:    "react",
		Method:  http.MethodPost,
		Path:    "/:targetType/:targetId/emotes",
		Auth:    true,
		Request: reactReq,
		Response: general.Responses(true,
			general.Created(Counts),
			general.BadRequest(reactReq),
			TargetNotFound,
			general.Failure(http.StatusConflict, ids.Emote.AlreadyReacted),
		),
	},
	&endpoint.Endpoint{
		Name:    "unreact",
		Method:  http.MethodDelete,
		Path:    "/:targetType/:targetId/emotes/:emote",
		Auth:    true,
		Request: unreactReq,
		Response: general.Responses(true,
			general.OK(Counts),
			general.BadRequest(unreactReq),
			general.Failure(http.StatusNotFound, ids.Emote.TargetNotFound, ids.Emote.NotReacted),
		),
	},
)
