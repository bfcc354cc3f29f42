package main

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/ids"
)

func testEnv(format string) (*env, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	return &env{
		log: newLogger("debug", "json", &logs),
		out: &printer{w: &out, format: format},
	}, &out, &logs
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("loud", "text", &buf)
	assert.Equal(t, log.InfoLevel, l.GetLevel())
	assert.Contains(t, buf.String(), `invalid log level \"loud\"`)
}

func TestPrinterFormats(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, format: "yaml"}
	require.NoError(t, p.print(ids.User.NameTooShort))
	var id errid.ID
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &id))
	assert.Equal(t, ids.User.NameTooShort, id)

	buf.Reset()
	p.format = "json"
	require.NoError(t, p.print(ids.User.NameTooShort))
	id = errid.ID{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &id))
	assert.Equal(t, ids.User.NameTooShort, id)
}

func TestCheck(t *testing.T) {
	e, _, logs := testEnv("json")
	require.NoError(t, (&CheckCmd{}).Run(e))
	assert.Contains(t, logs.String(), "contracts are consistent")
}

func TestIDsFiltersByDomain(t *testing.T) {
	e, out, _ := testEnv("json")
	require.NoError(t, (&IDsCmd{Domain: "emote"}).Run(e))
	var leaves []errid.Leaf
	require.NoError(t, json.Unmarshal(out.Bytes(), &leaves))
	require.NotEmpty(t, leaves)
	for _, l := range leaves {
		assert.Equal(t, "emote", l.Path[0])
	}

	e, _, _ = testEnv("json")
	err := (&IDsCmd{Domain: "nope"}).Run(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "general")
}

func TestDecode(t *testing.T) {
	e, out, logs := testEnv("json")
	err := (&DecodeCmd{Encoded: []string{ids.User.NameTooShort.String(), "nope"}}).Run(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, logs.String(), errid.TextCodeMalformed)

	var got []decoded
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Leaf)
	assert.Equal(t, ids.User.NameTooShort, got[0].Leaf.ID)
	assert.Nil(t, got[1].Leaf)
	assert.NotEmpty(t, got[1].Error)
}

func TestEndpointsAndSchema(t *testing.T) {
	e, out, _ := testEnv("json")
	require.NoError(t, (&EndpointsCmd{Group: "user"}).Run(e))
	var rows []endpointRow
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "register", rows[0].Name)
	assert.Contains(t, rows[0].Statuses, 400)

	e, out, _ = testEnv("yaml")
	require.NoError(t, (&SchemaCmd{Group: "user", Endpoint: "get"}).Run(e))
	assert.True(t, strings.HasPrefix(out.String(), "- name: get"), out.String())

	e, _, _ = testEnv("json")
	err := (&SchemaCmd{Group: "user", Endpoint: "nope"}).Run(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register")
}

func TestValidate(t *testing.T) {
	e, out, logs := testEnv("json")
	require.NoError(t, (&ValidateCmd{Group: "user", Endpoint: "get", Param: map[string]string{"userId": "42"}}).Run(e))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "request is valid")

	e, out, _ = testEnv("json")
	err := (&ValidateCmd{Group: "user", Endpoint: "get", Param: map[string]string{"userId": "abc"}}).Run(e)
	require.Error(t, err)
	var env struct {
		Status int `json:"status"`
		Body   struct {
			Status string `json:"status"`
			Errors []struct {
				Code int `json:"code"`
			} `json:"errors"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, "failure", env.Body.Status)
	require.Len(t, env.Body.Errors, 1)
	assert.Equal(t, ids.Request.InvalidResourceID.Code, env.Body.Errors[0].Code)
}

func TestValidateReadsBodyFromStdin(t *testing.T) {
	e, out, _ := testEnv("json")
	cmd := &ValidateCmd{Group: "user", Endpoint: "login", Body: "-", stdin: strings.NewReader(`{"email":"x"}`)}
	require.Error(t, cmd.Run(e))
	assert.Contains(t, out.String(), `"failure"`)
}
