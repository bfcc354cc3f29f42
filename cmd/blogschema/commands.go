package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/domain"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
	"github.com/reoring/blogschema/response"
)

type CheckCmd struct{}

func (c *CheckCmd) Run(e *env) error {
	reg, err := ids.Registry()
	if err != nil {
		for _, col := range errid.Collisions(err) {
			e.log.WithFields(log.Fields{"kind": col.Kind, "value": col.Value, "paths": col.Paths}).Error("identifier collision")
		}
		return err
	}
	e.log.WithField("identifiers", reg.Len()).Debug("registry built")
	if err := domain.Check(); err != nil {
		return err
	}
	count := 0
	for _, g := range domain.Groups() {
		count += len(g.Endpoints())
	}
	e.log.WithFields(log.Fields{"identifiers": reg.Len(), "groups": len(domain.Groups()), "endpoints": count}).Info("contracts are consistent")
	return nil
}

type IDsCmd struct {
	Domain string `short:"d" help:"Only list this domain."`
}

func (c *IDsCmd) Run(e *env) error {
	reg, err := ids.Registry()
	if err != nil {
		return err
	}
	leaves := reg.Leaves()
	if c.Domain != "" {
		kept := leaves[:0]
		for _, l := range leaves {
			if l.Path[0] == c.Domain {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			return fmt.Errorf("unknown domain %q (have %s)", c.Domain, strings.Join(reg.Domains(), ", "))
		}
		leaves = kept
	}
	return e.out.print(leaves)
}

type DecodeCmd struct {
	Encoded []string `arg:"" help:"Encoded identifiers."`
}

type decoded struct {
	Input string      `json:"input" yaml:"input"`
	Leaf  *errid.Leaf `json:"leaf,omitempty" yaml:"leaf,omitempty"`
	Error string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func (c *DecodeCmd) Run(e *env) error {
	reg, err := ids.Registry()
	if err != nil {
		return err
	}
	out := make([]decoded, 0, len(c.Encoded))
	failed := 0
	for _, in := range c.Encoded {
		leaf, err := reg.Resolve(in)
		if err != nil {
			failed++
			e.log.WithFields(log.Fields{"input": in, "code": errid.TextCode(err)}).Warn("cannot decode")
			out = append(out, decoded{Input: in, Error: err.Error()})
			continue
		}
		out = append(out, decoded{Input: in, Leaf: &leaf})
	}
	if err := e.out.print(out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be decoded", failed, len(c.Encoded))
	}
	return nil
}

type EndpointsCmd struct {
	Group string `arg:"" optional:"" help:"Only list this group."`
}

type endpointRow struct {
	Group    string     `json:"group" yaml:"group"`
	Name     string     `json:"name" yaml:"name"`
	Method   string     `json:"method" yaml:"method"`
	Path     string     `json:"path" yaml:"path"`
	Auth     bool       `json:"auth" yaml:"auth"`
	Statuses []int      `json:"statuses" yaml:"statuses,flow"`
	Errors   []errid.ID `json:"errors" yaml:"errors"`
}

func (c *EndpointsCmd) Run(e *env) error {
	groups, err := selectGroups(c.Group)
	if err != nil {
		return err
	}
	var rows []endpointRow
	for _, g := range groups {
		for _, ep := range g.Endpoints() {
			rows = append(rows, endpointRow{
				Group:    g.Name(),
				Name:     ep.Name,
				Method:   ep.Method,
				Path:     ep.Path,
				Auth:     ep.Auth,
				Statuses: ep.Response.Statuses(),
				Errors:   ep.Response.ErrorIDs(),
			})
		}
	}
	return e.out.print(rows)
}

type SchemaCmd struct {
	Group    string `arg:"" help:"Endpoint group."`
	Endpoint string `arg:"" optional:"" help:"Endpoint name; all endpoints of the group when omitted."`
}

func (c *SchemaCmd) Run(e *env) error {
	g, err := findGroup(c.Group)
	if err != nil {
		return err
	}
	eps := g.Endpoints()
	if c.Endpoint != "" {
		ep, err := findEndpoint(g, c.Endpoint)
		if err != nil {
			return err
		}
		eps = []*endpoint.Endpoint{ep}
	}
	docs := make([]*endpoint.Document, 0, len(eps))
	for _, ep := range eps {
		doc, err := ep.JSONSchema()
		if err != nil {
			return fmt.Errorf("%s.%s: %w", g.Name(), ep.Name, err)
		}
		docs = append(docs, doc)
	}
	return e.out.print(docs)
}

type ValidateCmd struct {
	Group    string            `arg:"" help:"Endpoint group."`
	Endpoint string            `arg:"" help:"Endpoint name."`
	Param    map[string]string `short:"p" help:"Path parameter as key=value."`
	Query    string            `short:"q" help:"Raw query string, e.g. \"sort=title:asc&page=2\"."`
	Body     string            `short:"b" help:"JSON body file, - for stdin."`

	stdin io.Reader `kong:"-"`
}

func (c *ValidateCmd) Run(e *env) error {
	g, err := findGroup(c.Group)
	if err != nil {
		return err
	}
	ep, err := findEndpoint(g, c.Endpoint)
	if err != nil {
		return err
	}
	in := endpoint.RequestInput{Params: c.Param}
	if c.Query != "" {
		q, err := url.ParseQuery(c.Query)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}
		in.Query = q
	}
	if c.Body != "" {
		body, err := c.readBody()
		if err != nil {
			return err
		}
		in.Body = body
	}

	_, verr := ep.ValidateRequest(context.Background(), in)
	if verr == nil {
		e.log.WithFields(log.Fields{"group": g.Name(), "endpoint": ep.Name}).Info("request is valid")
		return nil
	}
	if iss, ok := blogschema.AsIssues(verr); ok {
		for _, it := range iss {
			e.log.WithFields(log.Fields{"path": it.Path, "code": it.Code}).Debug(it.Message)
		}
	}

	reg, err := ids.Registry()
	if err != nil {
		return err
	}
	errs, err := errschema.ToResponseErrors(verr, reg)
	if err != nil {
		errs = []response.ResponseError{{Code: ids.General.InvalidRequest.Code, Message: ids.General.InvalidRequest.Message}}
	}
	failed := response.Fail(400, errs...)
	if cerr := ep.CheckEnvelope(context.Background(), failed); cerr != nil {
		e.log.WithError(cerr).Warn("failure envelope does not match the endpoint contract")
	}
	if err := e.out.print(failed); err != nil {
		return err
	}
	return fmt.Errorf("request is invalid: %w", verr)
}

func (c *ValidateCmd) readBody() ([]byte, error) {
	if c.Body == "-" {
		r := c.stdin
		if r == nil {
			r = os.Stdin
		}
		return io.ReadAll(r)
	}
	return os.ReadFile(c.Body)
}

func selectGroups(name string) ([]*endpoint.Group, error) {
	if name == "" {
		return domain.Groups(), nil
	}
	g, err := findGroup(name)
	if err != nil {
		return nil, err
	}
	return []*endpoint.Group{g}, nil
}

func findGroup(name string) (*endpoint.Group, error) {
	g, ok := domain.Group(name)
	if !ok {
		var names []string
		for _, g := range domain.Groups() {
			names = append(names, g.Name())
		}
		return nil, fmt.Errorf("unknown group %q (have %s)", name, strings.Join(names, ", "))
	}
	return g, nil
}

func findEndpoint(g *endpoint.Group, name string) (*endpoint.Endpoint, error) {
	ep, ok := g.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown endpoint %q in %s (have %s)", name, g.Name(), strings.Join(g.Names(), ", "))
	}
	return ep, nil
}
