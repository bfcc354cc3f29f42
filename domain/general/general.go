// Package general holds the rules and envelopes shared by every domain.
package general

import (
	"net/http"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/aggregate"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
	"github.com/reoring/blogschema/response"
)

// MaxLimit caps the page size of list endpoints.
const MaxLimit = 100

// ResourceID is a positive integer path parameter.
func ResourceID() blogschema.Rule {
	return errschema.New(map[string]errid.ID{"id": ids.Request.InvalidResourceID}, func(m errschema.Messages) *dsl.NumberSchema {
		return dsl.Int(m["id"]).CoerceFromString().Positive(m["id"])
	})
}

// Params builds a params object with a ResourceID per name.
func Params(names ...string) *dsl.ObjectSchema {
	b := dsl.Object()
	for _, n := range names {
		b = b.Field(n, ResourceID()).Required()
	}
	return b.MustBuild()
}

var (
	page = errschema.New(map[string]errid.ID{"page": ids.Request.PageOutOfRange}, func(m errschema.Messages) *dsl.NumberSchema {
		return dsl.Int(m["page"]).CoerceFromString().Positive(m["page"])
	})
	limit = errschema.New(map[string]errid.ID{"limit": ids.Request.LimitOutOfRange}, func(m errschema.Messages) *dsl.NumberSchema {
		return dsl.Int(m["limit"]).CoerceFromString().Min(1, m["limit"]).Max(MaxLimit, m["limit"])
	})
)

// Pagination is the query object of list endpoints. Extend it to add
// filters.
func Pagination() *dsl.ObjectSchema {
	return dsl.Object().
		Field("page", page).
		Field("limit", limit).
		MustBuild()
}

// Page wraps a list of items with paging information.
func Page(item blogschema.Rule) blogschema.Rule {
	return dsl.Object().
		Field("items", dsl.Array(item)).Required().
		Field("page", dsl.Int().Positive()).Required().
		Field("limit", dsl.Int().Min(1).Max(MaxLimit)).Required().
		Field("total", dsl.Int().Min(0)).Required().
		MustBuild()
}

// Timestamp is an RFC 3339 date-time string.
func Timestamp() *dsl.StringSchema {
	return dsl.String().DateTime("must be an RFC 3339 timestamp")
}

// ID is a resource identifier in response data.
func ID() *dsl.NumberSchema { return dsl.Int().Positive() }

var (
	Unauthorized = response.Failure(http.StatusUnauthorized, errs(ids.General.Unauthorized), required)
	Forbidden    = response.Failure(http.StatusForbidden, errs(ids.General.Forbidden), required)
	NotFound     = response.Failure(http.StatusNotFound, errs(ids.General.NotFound), required)
	RateLimited  = response.Failure(http.StatusTooManyRequests, errs(ids.General.RateLimited), required)
	Internal     = response.Failure(http.StatusInternalServerError, errs(ids.General.Internal))
	NoContent    = response.Success(http.StatusNoContent)
)

var required = response.FailureOpts{ErrorRequired: true}

func errs(list ...errid.ID) []blogschema.Rule {
	out := make([]blogschema.Rule, len(list))
	for i, id := range list {
		out[i] = response.Error(id)
	}
	return out
}

// Failure is a failure envelope that must carry one of list.
func Failure(status int, list ...errid.ID) *response.EnvelopeRule {
	return response.Failure(status, errs(list...), required)
}

// BadRequest is the 400 envelope of req: every identifier its rules can
// produce, InvalidRequest, and InvalidJSON when there is a body.
func BadRequest(req endpoint.Request) *response.EnvelopeRule {
	fixed := []errid.ID{ids.General.InvalidRequest}
	if req.Body != nil {
		fixed = append(fixed, ids.Request.InvalidJSON)
	}
	set := aggregate.All(req.Params, req.Query, req.Body)
	return response.Failure(http.StatusBadRequest, append(errs(fixed...), response.ErrorsOf(set)...))
}

// Responses adds the envelopes every endpoint can return (rate limiting
// and internal errors) to envs, plus Unauthorized when auth is set.
func Responses(auth bool, envs ...*response.EnvelopeRule) *endpoint.ResponseSet {
	all := append([]*response.EnvelopeRule(nil), envs...)
	if auth {
		all = append(all, Unauthorized)
	}
	all = append(all, RateLimited, Internal)
	return endpoint.Responses(all...)
}

// OK is a 200 envelope carrying data.
func OK(data blogschema.Rule) *response.EnvelopeRule { return response.Success(http.StatusOK, data) }

// Created is a 201 envelope carrying data.
func Created(data blogschema.Rule) *response.EnvelopeRule {
	return response.Success(http.StatusCreated, data)
}
