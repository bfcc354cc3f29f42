package endpoint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	errors "github.com/goliatone/go-errors"

	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
)

const (
	TextCodeDuplicateEndpoint = "ENDPOINT_DUPLICATE"
	TextCodeParamsMismatch    = "ENDPOINT_PARAMS_MISMATCH"
	TextCodeUnregisteredError = "ENDPOINT_UNREGISTERED_ERROR"
	TextCodeUndeclaredError   = "ENDPOINT_UNDECLARED_ERROR"
	TextCodeNoResponse        = "ENDPOINT_NO_RESPONSE"
)

// Group is an ordered set of endpoints owned by one domain.
type Group struct {
	name      string
	endpoints []*Endpoint
	byName    map[string]*Endpoint
}

// NewGroup collects eps under name. Later endpoints with an existing name
// are kept in order but Get returns the first one; Check reports them.
func NewGroup(name string, eps ...*Endpoint) *Group {
	g := &Group{name: name, byName: make(map[string]*Endpoint, len(eps))}
	for _, e := range eps {
		g.endpoints = append(g.endpoints, e)
		if _, ok := g.byName[e.Name]; !ok {
			g.byName[e.Name] = e
		}
	}
	return g
}

// Name returns the domain name.
func (g *Group) Name() string { return g.name }

// Get returns the endpoint called name.
func (g *Group) Get(name string) (*Endpoint, bool) {
	e, ok := g.byName[name]
	return e, ok
}

// Names returns endpoint names in declaration order.
func (g *Group) Names() []string {
	out := make([]string, len(g.endpoints))
	for i, e := range g.endpoints {
		out[i] = e.Name
	}
	return out
}

// Endpoints returns the endpoints in declaration order.
func (g *Group) Endpoints() []*Endpoint { return append([]*Endpoint(nil), g.endpoints...) }

var pathParam = regexp.MustCompile(`:(\w+)`)

// Check verifies the group against reg:
//   - names and method+path pairs are unique;
//   - path placeholders match the keys of the params object;
//   - every identifier in a response is registered;
//   - every identifier the request rules can fail with is declared by a
//     failure response.
//
// All problems are reported in one error.
func (g *Group) Check(reg *errid.Registry) error {
	var problems []string
	code := ""
	report := func(c, format string, args ...any) {
		if code == "" {
			code = c
		}
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	names := map[string]struct{}{}
	routes := map[string]string{}
	for _, e := range g.endpoints {
		if _, dup := names[e.Name]; dup {
			report(TextCodeDuplicateEndpoint, "%s: duplicate endpoint name", e.Name)
		}
		names[e.Name] = struct{}{}
		route := e.Method + " " + e.Path
		if other, dup := routes[route]; dup {
			report(TextCodeDuplicateEndpoint, "%s: route %s already used by %s", e.Name, route, other)
		} else {
			routes[route] = e.Name
		}

		if want, got := placeholders(e.Path), paramKeys(e); !equalStrings(want, got) {
			report(TextCodeParamsMismatch, "%s: path parameters %v do not match params %v", e.Name, want, got)
		}

		if e.Response == nil || len(e.Response.Envelopes()) == 0 {
			report(TextCodeNoResponse, "%s: no responses declared", e.Name)
			continue
		}
		declared := map[errid.ID]struct{}{}
		for _, id := range e.Response.ErrorIDs() {
			declared[id] = struct{}{}
			if reg != nil && !reg.Contains(id) {
				report(TextCodeUnregisteredError, "%s: response error %s is not registered", e.Name, id)
			}
		}
		for _, id := range e.RequestErrors().IDs() {
			if _, ok := declared[id]; !ok {
				report(TextCodeUndeclaredError, "%s: request error %s is not declared by any response", e.Name, id)
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New(g.name+": "+strings.Join(problems, "; "), errors.CategoryValidation).
		WithTextCode(code).
		WithMetadata(map[string]any{"group": g.name, "problems": problems})
}

func placeholders(path string) []string {
	var out []string
	for _, m := range pathParam.FindAllStringSubmatch(path, -1) {
		out = append(out, m[1])
	}
	sort.Strings(out)
	return out
}

func paramKeys(e *Endpoint) []string {
	obj, ok := e.Request.Params.(*dsl.ObjectSchema)
	if !ok {
		return nil
	}
	return obj.Keys()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
