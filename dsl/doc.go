// Package dsl builds validation rules over decoded JSON values.
//
// Builders follow a fluent style and mutate their receiver:
//
//	username := dsl.String().Min(3).Max(32).Regex(`^[a-zA-Z0-9_]+$`)
//	body := dsl.Object().
//		Field("username", username).Required().
//		Field("bio", dsl.Nullable(dsl.String().Max(500))).
//		MustBuild()
//
// Every constraint accepts an optional custom message. When present it is
// reported verbatim as Issue.Message, otherwise an i18n default is used.
//
// Composite rules (Object, Array, Union, Optional, Nullable, Refine,
// Transform, Lazy) implement blogschema.Composite so tooling can walk them.
package dsl
