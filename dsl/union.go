package dsl

import (
	"context"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/i18n"
	js "github.com/reoring/blogschema/jsonschema"
)

// UnionSchema accepts a value matching any member. Members are tried in
// order and the first success wins.
type UnionSchema struct {
	members []blogschema.Rule
	msg     []string
}

// Union returns a schema accepting any of members.
func Union(members ...blogschema.Rule) *UnionSchema {
	return &UnionSchema{members: members}
}

// Message sets the message used when no member matches.
func (u *UnionSchema) Message(msg string) *UnionSchema { u.msg = []string{msg}; return u }

// Members returns the member rules.
func (u *UnionSchema) Members() []blogschema.Rule {
	return append([]blogschema.Rule(nil), u.members...)
}

func (u *UnionSchema) Parse(ctx context.Context, v any) (any, error) {
	branches := make([]blogschema.Issues, 0, len(u.members))
	for _, m := range u.members {
		out, err := m.Parse(ctx, v)
		if err == nil {
			return out, nil
		}
		branches = append(branches, issuesFromErr(err))
	}

	// A single member that got past the shape check explains the failure
	// better than a generic union issue.
	var closest blogschema.Issues
	matched := 0
	for _, b := range branches {
		if progressed(b) {
			closest = b
			matched++
		}
	}
	if matched == 1 {
		return nil, closest
	}
	msg := i18n.T(blogschema.CodeInvalidUnion, nil)
	if len(u.msg) > 0 {
		msg = u.msg[0]
	}
	return nil, fail(blogschema.CodeInvalidUnion, msg, map[string]any{"branches": branches})
}

// progressed reports whether a member failed beyond a root type or literal
// mismatch.
func progressed(iss blogschema.Issues) bool {
	for _, it := range iss {
		if len(it.Segments) > 0 {
			return true
		}
		switch it.Code {
		case blogschema.CodeInvalidType, blogschema.CodeInvalidLiteral:
		default:
			return true
		}
	}
	return false
}

func (u *UnionSchema) Children() []blogschema.Rule { return u.Members() }

func (u *UnionSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(u.members))}
	for _, m := range u.members {
		s, err := m.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, s)
	}
	return out, nil
}
