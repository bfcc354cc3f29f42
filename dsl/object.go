package dsl

import (
	"context"
	"reflect"
	"sort"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/i18n"
	js "github.com/reoring/blogschema/jsonschema"
)

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

// ObjectBuilder collects fields for an ObjectSchema.
type ObjectBuilder struct {
	fields        map[string]blogschema.Rule
	required      map[string]struct{}
	unknownPolicy blogschema.UnknownPolicy
	refines       []objRefine
	requiredMsg   map[string]string
}

// FieldStep is returned by Field so the field can be marked required.
type FieldStep struct {
	b    *ObjectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]blogschema.Rule{},
		required:      map[string]struct{}{},
		unknownPolicy: blogschema.UnknownStrict,
		requiredMsg:   map[string]string{},
	}
}

// Field registers a field. Fields are optional until marked Required.
func (b *ObjectBuilder) Field(name string, r blogschema.Rule) *FieldStep {
	b.fields[name] = r
	return &FieldStep{b: b, name: name}
}

// Required marks the field as required. msg replaces the default
// "required" message.
func (f *FieldStep) Required(msg ...string) *ObjectBuilder {
	f.b.required[f.name] = struct{}{}
	if len(msg) > 0 {
		f.b.requiredMsg[f.name] = msg[0]
	}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *FieldStep) Optional() *ObjectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *FieldStep) Field(name string, r blogschema.Rule) *FieldStep { return f.b.Field(name, r) }
func (f *FieldStep) UnknownStrict() *ObjectBuilder                   { return f.b.UnknownStrict() }
func (f *FieldStep) UnknownStrip() *ObjectBuilder                    { return f.b.UnknownStrip() }
func (f *FieldStep) UnknownPassthrough() *ObjectBuilder              { return f.b.UnknownPassthrough() }
func (f *FieldStep) Refine(name string, fn func(context.Context, map[string]any) error) *ObjectBuilder {
	return f.b.Refine(name, fn)
}
func (f *FieldStep) Build() (*ObjectSchema, error) { return f.b.Build() }
func (f *FieldStep) MustBuild() *ObjectSchema      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = blogschema.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = blogschema.UnknownStrip
	return b
}

// UnknownPassthrough keeps unknown keys unvalidated.
func (b *ObjectBuilder) UnknownPassthrough() *ObjectBuilder {
	b.unknownPolicy = blogschema.UnknownPassthrough
	return b
}

// Refine adds an object-level check. It runs only when every field passed.
func (b *ObjectBuilder) Refine(name string, fn func(context.Context, map[string]any) error) *ObjectBuilder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Build validates the builder and returns a Schema.
func (b *ObjectBuilder) Build() (*ObjectSchema, error) {
	for name := range b.required {
		if _, ok := b.fields[name]; !ok {
			return nil, fail(blogschema.CodeParseError, "required field "+name+" is not declared", map[string]any{"field": name})
		}
	}
	for name, r := range b.fields {
		if r == nil {
			return nil, fail(blogschema.CodeParseError, "field "+name+" has a nil rule", map[string]any{"field": name})
		}
	}
	o := &ObjectSchema{
		fields:        copyRules(b.fields),
		required:      copySet(b.required),
		requiredMsg:   copyStrings(b.requiredMsg),
		unknownPolicy: b.unknownPolicy,
		refines:       append([]objRefine(nil), b.refines...),
	}
	o.sortKeys()
	return o, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ObjectSchema validates map[string]any values field by field. Field keys
// are processed in ascending order so issues are deterministic.
type ObjectSchema struct {
	fields        map[string]blogschema.Rule
	required      map[string]struct{}
	requiredMsg   map[string]string
	unknownPolicy blogschema.UnknownPolicy
	refines       []objRefine
	sortedKeys    []string
}

func (o *ObjectSchema) sortKeys() {
	kfs := make([]string, 0, len(o.fields))
	for k := range o.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	o.sortedKeys = kfs
}

// Keys returns the declared field names in ascending order.
func (o *ObjectSchema) Keys() []string { return append([]string(nil), o.sortedKeys...) }

// Field returns the rule declared for name.
func (o *ObjectSchema) Field(name string) (blogschema.Rule, bool) {
	r, ok := o.fields[name]
	return r, ok
}

// IsRequired reports whether name must be present.
func (o *ObjectSchema) IsRequired(name string) bool {
	if _, ok := o.required[name]; !ok {
		return false
	}
	if opt, ok := o.fields[name].(blogschema.MissingAccepter); ok && opt.AcceptsMissing() {
		return false
	}
	return true
}

// Partial returns a copy where every field is optional.
func (o *ObjectSchema) Partial() *ObjectSchema {
	cp := o.clone()
	cp.required = map[string]struct{}{}
	return cp
}

// Pick returns a copy restricted to names. Object-level refines are dropped.
func (o *ObjectSchema) Pick(names ...string) *ObjectSchema {
	keep := map[string]struct{}{}
	for _, n := range names {
		keep[n] = struct{}{}
	}
	return o.filter(func(k string) bool { _, ok := keep[k]; return ok })
}

// Omit returns a copy without names. Object-level refines are dropped.
func (o *ObjectSchema) Omit(names ...string) *ObjectSchema {
	drop := map[string]struct{}{}
	for _, n := range names {
		drop[n] = struct{}{}
	}
	return o.filter(func(k string) bool { _, ok := drop[k]; return !ok })
}

// Extend returns a builder seeded with this object's fields, policy and refines.
func (o *ObjectSchema) Extend() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        copyRules(o.fields),
		required:      copySet(o.required),
		requiredMsg:   copyStrings(o.requiredMsg),
		unknownPolicy: o.unknownPolicy,
		refines:       append([]objRefine(nil), o.refines...),
	}
}

func (o *ObjectSchema) filter(keep func(string) bool) *ObjectSchema {
	cp := &ObjectSchema{
		fields:        map[string]blogschema.Rule{},
		required:      map[string]struct{}{},
		requiredMsg:   map[string]string{},
		unknownPolicy: o.unknownPolicy,
	}
	for k, r := range o.fields {
		if !keep(k) {
			continue
		}
		cp.fields[k] = r
		if _, ok := o.required[k]; ok {
			cp.required[k] = struct{}{}
		}
		if m, ok := o.requiredMsg[k]; ok {
			cp.requiredMsg[k] = m
		}
	}
	cp.sortKeys()
	return cp
}

func (o *ObjectSchema) clone() *ObjectSchema {
	cp := &ObjectSchema{
		fields:        copyRules(o.fields),
		required:      copySet(o.required),
		requiredMsg:   copyStrings(o.requiredMsg),
		unknownPolicy: o.unknownPolicy,
		refines:       append([]objRefine(nil), o.refines...),
	}
	cp.sortKeys()
	return cp
}

func (o *ObjectSchema) Parse(ctx context.Context, v any) (any, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, invalidType("object")
	}
	failFast := blogschema.IsFailFast(ctx)
	out := make(map[string]any, len(m))
	var iss blogschema.Issues

	for _, k := range o.sortedKeys {
		r := o.fields[k]
		val, present := m[k]
		if !present {
			if o.IsRequired(k) {
				msg := o.requiredMsg[k]
				if msg == "" {
					msg = i18n.T(blogschema.CodeRequired, nil)
				}
				iss = append(iss, blogschema.Root().Field(k).Issue(blogschema.CodeRequired, msg))
				if failFast {
					return nil, iss
				}
			}
			continue
		}
		parsed, err := r.Parse(ctx, val)
		if err != nil {
			iss = append(iss, issuesFromErr(err).Under(k)...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out[k] = parsed
	}

	if o.unknownPolicy != blogschema.UnknownStrip {
		unknown := make([]string, 0)
		for k := range m {
			if _, known := o.fields[k]; !known {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			if o.unknownPolicy == blogschema.UnknownPassthrough {
				out[k] = m[k]
				continue
			}
			iss = append(iss, blogschema.Root().Field(k).Issue(blogschema.CodeUnknownKey, i18n.T(blogschema.CodeUnknownKey, map[string]string{"key": k}), "key", k))
			if failFast {
				return nil, iss
			}
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	for _, rf := range o.refines {
		if err := rf.fn(ctx, out); err != nil {
			ri := issuesFromErr(err)
			for i := range ri {
				if ri[i].Code == blogschema.CodeParseError && ri[i].Cause != nil {
					ri[i].Code = blogschema.CodeCustom
				}
				if ri[i].Params == nil {
					ri[i].Params = map[string]any{}
				}
				ri[i].Params["rule"] = rf.name
			}
			iss = append(iss, ri...)
			if failFast {
				break
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Children returns the field rules in key order.
func (o *ObjectSchema) Children() []blogschema.Rule {
	out := make([]blogschema.Rule, len(o.sortedKeys))
	for i, k := range o.sortedKeys {
		out[i] = o.fields[k]
	}
	return out
}

func (o *ObjectSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	for _, k := range o.sortedKeys {
		s, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.Properties[k] = s
		if o.IsRequired(k) {
			out.Required = append(out.Required, k)
		}
	}
	if o.unknownPolicy == blogschema.UnknownStrict {
		out.AdditionalProperties = false
	}
	return out, nil
}

// asObject accepts map[string]any and other string-keyed maps such as the
// map[string]string used for path parameters.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func copyRules(in map[string]blogschema.Rule) map[string]blogschema.Rule {
	out := make(map[string]blogschema.Rule, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copySet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
