// Package blogschema provides the shared validation contract used by the blog
// frontend and backend:
//
// - A small schema engine (Rule/Schema) with a stable error model (Issues:
// JSON Pointer path, code, message)
// - Introspection hooks (Composite/Tagged) that let tooling walk composite
// rules and collect the error identifiers they can produce
// - JSON entry points backed by goccy/go-json
//
// Design policy:
// - Keep only the engine contract in the root package; builders live under
// dsl/, error identifiers under errid/ and ids/, envelopes under response/,
// endpoint contracts under endpoint/ and domain/.
// - Everything is built once at init and treated as read-only afterwards.
//
// Typical usage:
//
//	body := user.RegisterBody
//	v, err := blogschema.ParseJSON(ctx, body, data)
//	for _, f := range errschema.Identify(err) {
//		// f.ID is the registered identifier, f.Path where it failed
//	}
package blogschema
