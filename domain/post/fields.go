// Package post defines blog post contracts.
package post

import (
	"context"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/domain/general"
	"github.com/reoring/blogschema/domain/user"
	"github.com/reoring/blogschema/dsl"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/errschema"
	"github.com/reoring/blogschema/ids"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	MaxTags         = 10
)

// Title is a trimmed, non-empty post title.
var Title = errschema.New(map[string]errid.ID{
	"empty": ids.Post.TitleEmpty,
	"long":  ids.Post.TitleTooLong,
}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().Trim().NonEmpty(m["empty"]).Max(120, m["long"])
})

// Body is the post text.
var Body = errschema.New(map[string]errid.ID{
	"empty": ids.Post.BodyEmpty,
	"long":  ids.Post.BodyTooLong,
}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String().NonEmpty(m["empty"]).Max(20000, m["long"])
})

// Slug is the lowercase, dash separated URL name of a post.
var Slug = errschema.New(map[string]errid.ID{"invalid": ids.Post.SlugInvalid}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String(m["invalid"]).Max(96, m["invalid"]).Regex(`^[a-z0-9]+(-[a-z0-9]+)*$`, m["invalid"])
})

// Status is StatusDraft or StatusPublished.
var Status = errschema.New(map[string]errid.ID{"invalid": ids.Post.StatusInvalid}, func(m errschema.Messages) *dsl.EnumSchema {
	return dsl.Enum(StatusDraft, StatusPublished).Message(m["invalid"])
})

// Tag is one lowercase alphanumeric tag.
var Tag = errschema.New(map[string]errid.ID{"invalid": ids.Post.TagInvalid}, func(m errschema.Messages) *dsl.StringSchema {
	return dsl.String(m["invalid"]).Regex(`^[a-z0-9]{1,24}$`, m["invalid"])
})

// Tags is the tag list of a post: at most MaxTags, each listed once.
// Duplicates are reported at the index of the repeated tag.
var Tags = errschema.New(map[string]errid.ID{
	"many":      ids.Post.TooManyTags,
	"duplicate": ids.Post.TagDuplicate,
}, func(m errschema.Messages) *dsl.RefineSchema {
	return dsl.SuperRefine(dsl.Array(Tag).Max(MaxTags, m["many"]), func(_ context.Context, v any) []blogschema.Issue {
		var out []blogschema.Issue
		seen := map[any]struct{}{}
		for i, t := range v.([]any) {
			if _, dup := seen[t]; dup {
				out = append(out, blogschema.Root().Index(i).Issue(blogschema.CodeCustom, m["duplicate"], "tag", t))
				continue
			}
			seen[t] = struct{}{}
		}
		return out
	})
}, errschema.WithPathData("duplicate"))

// Draft is the body of create.
var Draft = dsl.Object().
	Field("title", Title).Required().
	Field("body", Body).Required().
	Field("slug", Slug).
	Field("status", Status).
	Field("tags", Tags).
	MustBuild()

// Changes is the body of update.
var Changes = Draft.Partial()

// Summary is a post as listed.
var Summary = dsl.Object().
	Field("id", general.ID()).Required().
	Field("slug", dsl.String()).Required().
	Field("title", dsl.String()).Required().
	Field("status", dsl.Enum(StatusDraft, StatusPublished)).Required().
	Field("tags", dsl.Array(dsl.String())).Required().
	Field("author", user.Summary).Required().
	Field("commentCount", dsl.Int().Min(0)).Required().
	Field("createdAt", general.Timestamp()).Required().
	Field("publishedAt", dsl.Nullable(general.Timestamp())).Required().
	MustBuild()

// Post is a post with its body.
var Post = Summary.Extend().
	Field("body", dsl.String()).Required().
	Field("updatedAt", general.Timestamp()).Required().
	MustBuild()
