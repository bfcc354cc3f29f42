package emote_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blogschema/domain/emote"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
	"github.com/reoring/blogschema/response"
)

func TestEndpoints_Consistent(t *testing.T) {
	require.NoError(t, emote.Endpoints.Check(ids.MustRegistry()))
}

func TestReact(t *testing.T) {
	e, _ := emote.Endpoints.Get("react")
	ctx := context.Background()

	_, err := e.ValidateRequest(ctx, endpoint.RequestInput{
		Params: map[string]string{"targetType": "post", "targetId": "9"},
		Body:   map[string]any{"emote": "love"},
	})
	require.NoError(t, err)

	_, err = e.ValidateRequest(ctx, endpoint.RequestInput{
		Params: map[string]string{"targetType": "user", "targetId": "9"},
		Body:   map[string]any{"emote": "poop"},
	})
	var got []errid.ID
	for _, f := range errschema.Identify(err) {
		got = append(got, f.ID)
	}
	assert.Equal(t, []errid.ID{ids.Emote.TargetInvalid, ids.Emote.Unknown}, got)
}

func TestUnknownAndDuplicateStayApart(t *testing.T) {
	e, _ := emote.Endpoints.Get("react")
	ctx := context.Background()

	dup := response.Fail(409, response.ResponseError{Code: ids.Emote.AlreadyReacted.Code, Message: ids.Emote.AlreadyReacted.Message})
	assert.NoError(t, e.CheckEnvelope(ctx, dup))

	wrong := response.Fail(409, response.ResponseError{Code: ids.Emote.Unknown.Code, Message: ids.Emote.Unknown.Message})
	assert.Error(t, e.CheckEnvelope(ctx, wrong))

	bad := response.Fail(400, response.ResponseError{Code: ids.Emote.Unknown.Code, Message: ids.Emote.Unknown.Message})
	assert.NoError(t, e.CheckEnvelope(ctx, bad))
}

func TestCounts(t *testing.T) {
	e, _ := emote.Endpoints.Get("list")
	ok := response.OK(200, []any{map[string]any{"emote": "like", "count": 3, "reacted": true}})
	assert.NoError(t, e.CheckEnvelope(context.Background(), ok))
}
