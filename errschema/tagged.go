package errschema

import (
	"context"
	"sort"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
	js "github.com/reoring/blogschema/jsonschema"
)

// Issue parameter keys set on failures of tagged rules.
const (
	ParamID       = "errorId"
	ParamPathData = "errorPathData"
	ParamData     = "errorData"
)

// Messages maps local names to encoded identifiers ("<code>|<message>").
type Messages map[string]string

// Encode stringifies every identifier in ids.
func Encode(ids map[string]errid.ID) Messages {
	out := make(Messages, len(ids))
	for name, id := range ids {
		out[name] = errid.Stringify(id)
	}
	return out
}

// PathData is the data shape {path: (string|int)[]} attached to failures
// that point into a composite value.
var PathData blogschema.Rule = dsl.Object().
	Field("path", dsl.Array(dsl.Union(dsl.String(), dsl.Int()))).Required().
	MustBuild()

type config struct {
	data     map[string]blogschema.Rule
	pathData map[string]bool
	extract  map[string]func(blogschema.Issue) any
}

// Option configures New.
type Option func(*config)

// WithData pairs the identifier named name with the shape of its data.
// A value the rule put under ParamData is reported as is; otherwise, when r
// is an object, its keys are picked from the failing issue's params, so
// Array(...).Max(2, m["many"]) with shape {max} reports {"max": 2}.
func WithData(name string, r blogschema.Rule) Option {
	return WithDataFrom(name, r, paramsOf(r))
}

// WithDataFrom is WithData with an explicit extractor. A nil result leaves
// the failure without data.
func WithDataFrom(name string, r blogschema.Rule, extract func(blogschema.Issue) any) Option {
	return func(c *config) {
		c.data[name] = r
		c.extract[name] = extract
		delete(c.pathData, name)
	}
}

type keyed interface{ Keys() []string }

func paramsOf(r blogschema.Rule) func(blogschema.Issue) any {
	return func(it blogschema.Issue) any {
		if v, ok := it.Params[ParamData]; ok {
			return v
		}
		obj, ok := r.(keyed)
		if !ok {
			return nil
		}
		out := map[string]any{}
		for _, k := range obj.Keys() {
			if v, ok := it.Params[k]; ok {
				out[k] = v
			}
		}
		return out
	}
}

// WithPathData pairs each named identifier with PathData.
func WithPathData(names ...string) Option {
	return func(c *config) {
		for _, n := range names {
			c.data[n] = PathData
			c.pathData[n] = true
			delete(c.extract, n)
		}
	}
}

// Tagged is a rule annotated with the identifiers it can fail with.
type Tagged[R blogschema.Rule] struct {
	inner R
	ids   map[string]errid.ID
	tags  []blogschema.Tag
	known map[string]errid.ID
	paths map[string]bool
	data  map[string]func(blogschema.Issue) any
}

// New encodes ids, builds the rule with the encoded messages and tags it.
// Panics raised by build propagate unchanged.
func New[R blogschema.Rule](ids map[string]errid.ID, build func(Messages) R, opts ...Option) *Tagged[R] {
	cfg := config{
		data:     map[string]blogschema.Rule{},
		pathData: map[string]bool{},
		extract:  map[string]func(blogschema.Issue) any{},
	}
	for _, o := range opts {
		o(&cfg)
	}

	names := make([]string, 0, len(ids))
	for n := range ids {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := ids[names[i]], ids[names[j]]
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return names[i] < names[j]
	})

	t := &Tagged[R]{
		inner: build(Encode(ids)),
		ids:   make(map[string]errid.ID, len(ids)),
		known: make(map[string]errid.ID, len(ids)),
		paths: make(map[string]bool, len(ids)),
		data:  make(map[string]func(blogschema.Issue) any),
	}
	for _, n := range names {
		id := ids[n]
		t.ids[n] = id
		enc := errid.Stringify(id)
		if _, dup := t.known[enc]; dup {
			continue
		}
		data, hasPath := cfg.data[n], cfg.pathData[n]
		t.known[enc] = id
		t.paths[enc] = hasPath
		if fn := cfg.extract[n]; fn != nil {
			t.data[enc] = fn
		}
		t.tags = append(t.tags, blogschema.Tag{ID: id, Data: data})
	}
	return t
}

// Unwrap returns the rule produced by the builder.
func (t *Tagged[R]) Unwrap() R { return t.inner }

// IDs returns the local names and their identifiers.
func (t *Tagged[R]) IDs() map[string]errid.ID {
	out := make(map[string]errid.ID, len(t.ids))
	for k, v := range t.ids {
		out[k] = v
	}
	return out
}

// ErrorTags lists the declared identifiers ordered by code.
func (t *Tagged[R]) ErrorTags() []blogschema.Tag {
	return append([]blogschema.Tag(nil), t.tags...)
}

func (t *Tagged[R]) Children() []blogschema.Rule { return []blogschema.Rule{t.inner} }

func (t *Tagged[R]) AcceptsMissing() bool {
	m, ok := any(t.inner).(blogschema.MissingAccepter)
	return ok && m.AcceptsMissing()
}

func (t *Tagged[R]) JSONSchema() (*js.Schema, error) { return t.inner.JSONSchema() }

// Parse runs the inner rule. Issue messages are left untouched; issues whose
// message is one of the declared identifiers additionally get ParamID,
// ParamPathData when the identifier carries PathData and ParamData when it
// was declared with a data shape.
func (t *Tagged[R]) Parse(ctx context.Context, v any) (any, error) {
	out, err := t.inner.Parse(ctx, v)
	if err == nil {
		return out, nil
	}
	iss, ok := blogschema.AsIssues(err)
	if !ok {
		return nil, err
	}
	tagged := make(blogschema.Issues, len(iss))
	for i, it := range iss {
		if id, ok := t.known[it.Message]; ok {
			params := make(map[string]any, len(it.Params)+2)
			for k, v := range it.Params {
				params[k] = v
			}
			params[ParamID] = id
			if t.paths[it.Message] {
				params[ParamPathData] = true
			}
			if fn := t.data[it.Message]; fn != nil {
				if d := fn(it); d != nil {
					params[ParamData] = d
				}
			}
			it.Params = params
		}
		tagged[i] = it
	}
	return nil, tagged
}
