// Package errschema builds validation rules whose failure messages are
// encoded error identifiers.
//
// A rule is declared with the identifiers it may fail with and a builder
// that receives their encoded form:
//
//	name := errschema.New(map[string]errid.ID{
//		"short": ids.User.NameTooShort,
//		"long":  ids.User.NameTooLong,
//	}, func(m errschema.Messages) *dsl.StringSchema {
//		return dsl.String().Min(3, m["short"]).Max(32, m["long"])
//	})
//
// The returned rule reports the declared identifiers through ErrorTags so
// the aggregate package can list them, and every failing issue whose
// message decodes to a declared identifier also carries it in
// Params["errorId"].
package errschema
