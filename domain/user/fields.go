// Package user defines the user contracts: account fields, profiles and
// the account endpoints.
package user

import (
	"context"
	"unicode"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

// Name is the account name: 3 to 32 word characters.
var Name = errschema.New(map[string]errid.ID{
	"short":   ids.User.NameTooShort,
	"long":    ids.User.NameTooLong,
	"invalid": ids.User.NameInvalid,
}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String(m["invalid"]).Min(3, m["short"]).Max(32, m["long"]).Regex(`^\w*$`, m["invalid"])
})

// Email is a trimmed e-mail address.
var Email = errschema.New(map[string]errid.ID{"invalid": ids.User.EmailInvalid}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String(m["invalid"]).Trim().Max(254, m["invalid"]).Email(m["invalid"])
})

var Password = errschema.New(map[string]errid.ID{
	"short": ids.User.PasswordTooShort,
	"long":  ids.User.PasswordTooLong,
	"weak":  ids.User.PasswordTooWeak,
}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Min(8, m["short"]).Max(72, m["long"]).Check(strongEnough, m["weak"])
})

var DisplayName = errschema.New(map[string]errid.ID{"long": ids.User.DisplayNameTooLong}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Trim().Max(64, m["long"])
})

var Bio = errschema.New(map[string]errid.ID{"long": ids.User.BioTooLong}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Max(500, m["long"])
})

var AvatarURL = errschema.New(map[string]errid.ID{"invalid": ids.User.AvatarURLInvalid}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String(m["invalid"]).URL(m["invalid"])
})

func strongEnough(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// Registration is the sign-up body. passwordConfirm must equal password.
var Registration = errschema.New(map[string]errid.ID{"mismatch": ids.User.PasswordMismatch}, func(m errschema.Messages) *dsl.ObjectSchema {
	return dsl.Object().
		Field("name", Name).Required().
		Field("email", Email).Required().
		Field("password", Password).Required().
		Field("passwordConfirm", dsl.String()).Required().
		Field("displayName", DisplayName).
		Refine("passwordConfirm", func(_ context.Context, v map[string]any) error {
			if v["password"] != v["passwordConfirm"] {
				return blogschema.Issues{blogschema.PathOf("passwordConfirm").Issue(blogschema.CodeCustom, m["mismatch"])}
			}
			return nil
		}).
		MustBuild()
}, errschema.WithPathData("mismatch"))

// Credentials is the login body. Only presence is checked so that a login
// never reveals the password rules.
var Credentials = dsl.Object().
	Field("name", dsl.String().NonEmpty()).Required().
	Field("password", dsl.String().NonEmpty()).Required().
	MustBuild()

// ProfileUpdate is the body of update; every field is optional and null
// clears the nullable ones.
var ProfileUpdate = dsl.Object().
	Field("email", Email).
	Field("displayName", dsl.Nullable(DisplayName)).
	Field("bio", dsl.Nullable(Bio)).
	Field("avatarUrl", dsl.Nullable(AvatarURL)).
	MustBuild()

// Public is a user as shown to everyone.
var Public = dsl.Object().
	Field("id", general.ID()).Required().
	Field("name", dsl.String()).Required().
	Field("displayName", dsl.Nullable(dsl.String())).Required().
	Field("bio", dsl.Nullable(dsl.String())).Required().
	Field("avatarUrl", dsl.Nullable(dsl.String())).Required().
	Field("createdAt", general.Timestamp()).Required().
	MustBuild()

// Private is the signed-in user's own view.
var Private = Public.Extend().
	Field("email", dsl.String()).Required().
	MustBuild()

// Summary is the author reference embedded in posts and comments.
var Summary = Public.Pick("id", "name", "displayName", "avatarUrl")
