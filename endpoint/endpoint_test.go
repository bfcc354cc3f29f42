package endpoint_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/response"
)

var (
	tooLong  = errid.ID{Code: 10, Message: "title too long"}
	notFound = errid.ID{Code: 11, Message: "item not found"}
)

func itemEndpoint() *endpoint.Endpoint {
	title := errschema.New(map[string]errid.ID{"long": tooLong}, func(m errschema.Messages) *dsl.StringSchema {
		return dsl.String().Max(5, m["long"])
	})
	body := dsl.Object().Field("title", title).Required().MustBuild()
	return &endpoint.Endpoint{
		Name:   "updateItem",
		Method: http.MethodPatch,
		Path:   "/items/:itemId",
		Auth:   true,
		Request: endpoint.Request{
			Params: dsl.Object().Field("itemId", dsl.Int().Positive().CoerceFromString()).Required().MustBuild(),
			Query:  dsl.Object().Field("dryRun", dsl.Bool().CoerceFromString()).MustBuild(),
			Body:   body,
		},
		Response: endpoint.Responses(
			response.Success(http.StatusOK, dsl.Object().Field("title", dsl.String()).Required().MustBuild()),
			response.FailureFor(http.StatusBadRequest, body),
			response.Failure(http.StatusNotFound, []blogschema.Rule{response.Error(notFound)}, response.FailureOpts{ErrorRequired: true}),
		),
	}
}

func TestValidateRequest_OK(t *testing.T) {
	e := itemEndpoint()
	got, err := e.ValidateRequest(context.Background(), endpoint.RequestInput{
		Params: map[string]string{"itemId": "3"},
		Query:  url.Values{"dryRun": {"true"}},
		Body:   []byte(`{"title":"hello"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"itemId": 3}, got.Params)
	assert.Equal(t, map[string]any{"dryRun": true}, got.Query)
	assert.Equal(t, map[string]any{"title": "hello"}, got.Body)
}

func TestValidateRequest_IssuesRootedPerPart(t *testing.T) {
	e := itemEndpoint()
	_, err := e.ValidateRequest(context.Background(), endpoint.RequestInput{
		Params: map[string]string{"itemId": "x"},
		Query:  url.Values{"dryRun": {"yes", "no"}},
		Body:   map[string]any{"title": "far too long"},
	})
	iss, ok := blogschema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 3)
	assert.Equal(t, "/params/itemId", iss[0].Path)
	assert.Equal(t, "/query/dryRun", iss[1].Path)
	assert.Equal(t, "/body/title", iss[2].Path)

	failures := errschema.Identify(err)
	require.Len(t, failures, 1)
	assert.Equal(t, tooLong, failures[0].ID)
	assert.Equal(t, []any{"body", "title"}, failures[0].Path)
}

func TestValidateRequest_BadJSON(t *testing.T) {
	_, err := itemEndpoint().ValidateRequest(context.Background(), endpoint.RequestInput{
		Params: map[string]string{"itemId": "1"},
		Body:   []byte(`{"title":`),
	})
	iss, ok := blogschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, blogschema.CodeParseError, iss[0].Code)
	assert.Equal(t, "/body", iss[0].Path)
}

func TestValidateResponse(t *testing.T) {
	e := itemEndpoint()
	ctx := context.Background()

	assert.NoError(t, e.CheckEnvelope(ctx, response.OK(200, map[string]any{"title": "a"})))
	assert.NoError(t, e.CheckEnvelope(ctx, response.Fail(400)))
	assert.NoError(t, e.CheckEnvelope(ctx, response.Fail(400, response.ResponseError{Code: 10, Message: "title too long"})))
	assert.NoError(t, e.CheckEnvelope(ctx, response.Fail(404, response.ResponseError{Code: 11, Message: "item not found"})))

	assert.Error(t, e.CheckEnvelope(ctx, response.Fail(404)))
	assert.Error(t, e.CheckEnvelope(ctx, response.Fail(500)))
	assert.Error(t, e.CheckEnvelope(ctx, response.Fail(400, response.ResponseError{Code: 11, Message: "item not found"})))

	// a bad success body is reported against the success envelope
	err := e.ValidateResponse(ctx, map[string]any{"status": 200, "body": map[string]any{"status": "success", "data": map[string]any{}}})
	iss, ok := blogschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/body/data/title", iss[0].Path)
}

func TestResponseSet(t *testing.T) {
	e := itemEndpoint()
	assert.Equal(t, []int{200, 400, 404}, e.Response.Statuses())
	assert.Equal(t, []errid.ID{tooLong, notFound}, e.Response.ErrorIDs())
	assert.Len(t, e.Response.Envelopes(), 3)
	assert.Equal(t, []errid.ID{tooLong}, e.RequestErrors().IDs())
}

func TestJSONSchema(t *testing.T) {
	doc, err := itemEndpoint().JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "PATCH", doc.Method)
	assert.Equal(t, []string{"itemId"}, doc.Params.Required)
	assert.Equal(t, []string{"title"}, doc.Body.Required)
	assert.Equal(t, []errid.ID{tooLong}, doc.Errors)
	assert.Len(t, doc.Responses, 3)
}
