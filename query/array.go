// Package query parses comma separated query parameters such as
// ?tags=go,web or ?sort=createdAt:desc,title.
package query

import (
	"context"
	"strings"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

const (
	listPattern    = `^\w+(,\w+)*$`
	subListPattern = `^\w+(:\w+)?(,\w+(:\w+)?)*$`
)

// Options configures Array.
type Options struct {
	// SubValues allows key:value elements. Parsed elements are then
	// single-entry maps {key: value}, with a nil value for a bare key.
	SubValues bool
	// Unique rejects repeated keys.
	Unique bool
	// Allowed restricts keys to the map's keys. A non-empty slice also
	// restricts that key's sub-values.
	Allowed map[string][]string
}

// Array returns a rule over a delimited string. Elements are words made of
// letters, digits and underscores, separated by single commas with no
// spaces. Parsed values are []any of strings, or of map[string]any when
// SubValues is set.
func Array(o Options) *errschema.Tagged[*dsl.RefineSchema] {
	declared := map[string]errid.ID{"format": ids.Request.QueryArrayFormat}
	var withPath []string
	if o.Unique {
		declared["duplicate"] = ids.Request.QueryArrayDuplicate
		withPath = append(withPath, "duplicate")
	}
	if o.Allowed != nil {
		declared["key"] = ids.Request.QueryArrayKeyNotAllowed
		withPath = append(withPath, "key")
		if o.SubValues && restrictsValues(o.Allowed) {
			declared["value"] = ids.Request.QueryArrayValueNotAllowed
			withPath = append(withPath, "value")
		}
	}
	allowed := copyAllowed(o.Allowed)

	return errschema.New(declared, func(m errschema.Messages) *dsl.RefineSchema {
		pattern := listPattern
		if o.SubValues {
			pattern = subListPattern
		}
		split := dsl.Transform(dsl.String().Regex(pattern, m["format"]), func(_ context.Context, v any) (any, error) {
			return splitElements(v.(string), o.SubValues), nil
		})
		return dsl.SuperRefine(split, func(_ context.Context, v any) []blogschema.Issue {
			return check(v.([]any), o, allowed, m)
		})
	}, errschema.WithPathData(withPath...))
}

// Sort is an Array of field:direction pairs over fields, each listed once,
// with direction asc or desc.
func Sort(fields ...string) *errschema.Tagged[*dsl.RefineSchema] {
	allowed := make(map[string][]string, len(fields))
	for _, f := range fields {
		allowed[f] = []string{"asc", "desc"}
	}
	return Array(Options{SubValues: true, Unique: true, Allowed: allowed})
}

func splitElements(s string, sub bool) []any {
	parts := strings.Split(s, ",")
	out := make([]any, len(parts))
	for i, p := range parts {
		if !sub {
			out[i] = p
			continue
		}
		key, value, found := strings.Cut(p, ":")
		if found {
			out[i] = map[string]any{key: value}
		} else {
			out[i] = map[string]any{key: nil}
		}
	}
	return out
}

func check(elems []any, o Options, allowed map[string]map[string]struct{}, m errschema.Messages) []blogschema.Issue {
	var out []blogschema.Issue
	seen := make(map[string]struct{}, len(elems))
	for i, e := range elems {
		key, value, hasValue := element(e)
		at := blogschema.Root().Index(i)

		if o.Unique {
			if _, dup := seen[key]; dup {
				out = append(out, at.Issue(blogschema.CodeCustom, m["duplicate"], "key", key))
				continue
			}
			seen[key] = struct{}{}
		}
		if o.Allowed == nil {
			continue
		}
		values, ok := allowed[key]
		if !ok {
			out = append(out, at.Issue(blogschema.CodeCustom, m["key"], "key", key))
			continue
		}
		if hasValue && len(values) > 0 {
			if _, ok := values[value]; !ok {
				out = append(out, at.Issue(blogschema.CodeCustom, m["value"], "key", key, "value", value))
			}
		}
	}
	return out
}

func element(e any) (key, value string, hasValue bool) {
	switch t := e.(type) {
	case string:
		return t, "", false
	case map[string]any:
		for k, v := range t {
			s, ok := v.(string)
			return k, s, ok
		}
	}
	return "", "", false
}

func restrictsValues(allowed map[string][]string) bool {
	for _, vs := range allowed {
		if len(vs) > 0 {
			return true
		}
	}
	return false
}

func copyAllowed(in map[string][]string) map[string]map[string]struct{} {
	if in == nil {
		return nil
	}
	out := make(map[string]map[string]struct{}, len(in))
	for k, vs := range in {
		set := make(map[string]struct{}, len(vs))
		for _, v := range vs {
			set[v] = struct{}{}
		}
		out[k] = set
	}
	return out
}
