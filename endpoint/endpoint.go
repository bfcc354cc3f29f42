// Package endpoint pairs request shapes with the response envelopes an
// operation may return.
package endpoint

import (
	"bytes"
	"context"
	"net/url"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/aggregate"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
	js "github.com/reoring/blogschema/jsonschema"
	"github.com/reoring/blogschema/response"
)

// Request holds the rules for each part of a request. A nil rule leaves
// that part unchecked.
type Request struct {
	Params blogschema.Rule
	Query  blogschema.Rule
	Body   blogschema.Rule
}

// Endpoint is the contract of one operation.
type Endpoint struct {
	Name        string
	Method      string
	Path        string // e.g. /posts/:postId
	Auth        bool
	Description string
	Request     Request
	Response    *ResponseSet
}

// RequestInput is a request as seen by a server handler.
type RequestInput struct {
	Params map[string]string
	Query  url.Values
	// Body is a decoded JSON value, or raw JSON as []byte.
	Body any
}

// Parsed holds the normalized request parts.
type Parsed struct {
	Params any
	Query  any
	Body   any
}

// ValidateRequest checks every part that has a rule. Issues are rooted
// under /params, /query and /body.
func (e *Endpoint) ValidateRequest(ctx context.Context, in RequestInput) (Parsed, error) {
	var out Parsed
	var iss blogschema.Issues

	run := func(part string, r blogschema.Rule, v any, dst *any) {
		if r == nil {
			return
		}
		parsed, err := r.Parse(ctx, v)
		if err != nil {
			if ri, ok := blogschema.AsIssues(err); ok {
				iss = append(iss, ri.Under(part)...)
				return
			}
			iss = append(iss, blogschema.PathOf(part).Issue(blogschema.CodeParseError, err.Error()))
			return
		}
		*dst = parsed
	}

	params := make(map[string]any, len(in.Params))
	for k, v := range in.Params {
		params[k] = v
	}
	run("params", e.Request.Params, params, &out.Params)
	run("query", e.Request.Query, queryValue(in.Query), &out.Query)

	body := in.Body
	if raw, ok := body.([]byte); ok {
		decoded, err := blogschema.DecodeJSON(bytes.NewReader(raw))
		if err != nil {
			ri, _ := blogschema.AsIssues(err)
			iss = append(iss, ri.Under("body")...)
			return Parsed{}, iss
		}
		body = decoded
	}
	run("body", e.Request.Body, body, &out.Body)

	if len(iss) > 0 {
		return Parsed{}, iss
	}
	return out, nil
}

// queryValue flattens url.Values: single values become strings and
// repeated keys stay []string.
func queryValue(q url.Values) map[string]any {
	out := make(map[string]any, len(q))
	for k, vs := range q {
		if len(vs) == 1 {
			out[k] = vs[0]
			continue
		}
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// ValidateResponse checks v against the declared responses.
func (e *Endpoint) ValidateResponse(ctx context.Context, v any) error {
	return blogschema.Validate(ctx, e.Response, v)
}

// CheckEnvelope checks a typed envelope against the declared responses.
func (e *Endpoint) CheckEnvelope(ctx context.Context, env response.Envelope) error {
	return env.Check(ctx, e.Response)
}

// RequestErrors returns every identifier the request rules can fail with.
func (e *Endpoint) RequestErrors() aggregate.Set {
	return aggregate.All(e.Request.Params, e.Request.Query, e.Request.Body)
}

// Document is the exported description of an endpoint.
type Document struct {
	Name        string       `json:"name" yaml:"name"`
	Method      string       `json:"method" yaml:"method"`
	Path        string       `json:"path" yaml:"path"`
	Auth        bool         `json:"auth" yaml:"auth"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Params      *js.Schema   `json:"params,omitempty" yaml:"params,omitempty"`
	Query       *js.Schema   `json:"query,omitempty" yaml:"query,omitempty"`
	Body        *js.Schema   `json:"body,omitempty" yaml:"body,omitempty"`
	Errors      []errid.ID   `json:"errors,omitempty" yaml:"errors,omitempty"`
	Responses   []*js.Schema `json:"responses" yaml:"responses"`
}

// JSONSchema exports the request parts and every response envelope.
func (e *Endpoint) JSONSchema() (*Document, error) {
	doc := &Document{
		Name:        e.Name,
		Method:      e.Method,
		Path:        e.Path,
		Auth:        e.Auth,
		Description: e.Description,
		Errors:      e.RequestErrors().IDs(),
	}
	var err error
	if doc.Params, err = export(e.Request.Params); err != nil {
		return nil, err
	}
	if doc.Query, err = export(e.Request.Query); err != nil {
		return nil, err
	}
	if doc.Body, err = export(e.Request.Body); err != nil {
		return nil, err
	}
	for _, env := range e.Response.Envelopes() {
		s, err := env.JSONSchema()
		if err != nil {
			return nil, err
		}
		doc.Responses = append(doc.Responses, s)
	}
	return doc, nil
}

func export(r blogschema.Rule) (*js.Schema, error) {
	if r == nil {
		return nil, nil
	}
	return r.JSONSchema()
}

// ResponseSet is the union of the envelopes an endpoint may return.
type ResponseSet struct {
	envs  []*response.EnvelopeRule
	union *dsl.UnionSchema
}

// Responses builds a ResponseSet. Envelopes are tried in order.
func Responses(envs ...*response.EnvelopeRule) *ResponseSet {
	members := make([]blogschema.Rule, len(envs))
	for i, e := range envs {
		members[i] = e
	}
	return &ResponseSet{envs: append([]*response.EnvelopeRule(nil), envs...), union: dsl.Union(members...)}
}

// Envelopes returns the declared envelopes.
func (s *ResponseSet) Envelopes() []*response.EnvelopeRule {
	return append([]*response.EnvelopeRule(nil), s.envs...)
}

// Statuses returns the declared status codes in declaration order,
// without repeats.
func (s *ResponseSet) Statuses() []int {
	seen := map[int]struct{}{}
	var out []int
	for _, e := range s.envs {
		if _, ok := seen[e.Status()]; ok {
			continue
		}
		seen[e.Status()] = struct{}{}
		out = append(out, e.Status())
	}
	return out
}

// ErrorIDs returns every identifier any failure envelope may carry.
func (s *ResponseSet) ErrorIDs() []errid.ID {
	seen := map[errid.ID]struct{}{}
	var out []errid.ID
	for _, e := range s.envs {
		for _, id := range e.ErrorIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Parse checks v against the envelopes declaring its status, or against all
// of them when none does.
func (s *ResponseSet) Parse(ctx context.Context, v any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		var matching []blogschema.Rule
		for _, e := range s.envs {
			if blogschema.Is(ctx, dsl.Literal(e.Status()), m["status"]) {
				matching = append(matching, e)
			}
		}
		switch len(matching) {
		case 0:
		case 1:
			return matching[0].Parse(ctx, v)
		default:
			return dsl.Union(matching...).Parse(ctx, v)
		}
	}
	return s.union.Parse(ctx, v)
}

func (s *ResponseSet) Children() []blogschema.Rule { return []blogschema.Rule{s.union} }

func (s *ResponseSet) JSONSchema() (*js.Schema, error) { return s.union.JSONSchema() }
