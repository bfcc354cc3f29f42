package ids

import "github.com/reoring/blogschema/errid"

// PostIDs are the post failures (3000s).
type PostIDs struct {
	TitleEmpty    errid.ID
	TitleTooLong  errid.ID
	BodyEmpty     errid.ID
	BodyTooLong   errid.ID
	SlugInvalid   errid.ID
	SlugDuplicate errid.ID
	TagInvalid    errid.ID
	TagDuplicate  errid.ID
	TooManyTags   errid.ID
	StatusInvalid errid.ID
	NotFound      errid.ID
	NotAuthor     errid.ID
}

// Post holds the post identifiers.
var Post = PostIDs{
	TitleEmpty:    errid.ID{Code: 3001, Message: "Post title must not be empty"},
	TitleTooLong:  errid.ID{Code: 3002, Message: "Post title must be at most 120 characters"},
	BodyEmpty:     errid.ID{Code: 3003, Message: "Post body must not be empty"},
	BodyTooLong:   errid.ID{Code: 3004, Message: "Post body must be at most 20000 characters"},
	SlugInvalid:   errid.ID{Code: 3005, Message: "Slug may only contain lowercase letters, digits and hyphens"},
	SlugDuplicate: errid.ID{Code: 3006, Message: "Slug is already used by another post"},
	TagInvalid:    errid.ID{Code: 3007, Message: "Tag must be 1 to 24 lowercase letters or digits"},
	TagDuplicate:  errid.ID{Code: 3008, Message: "Tag is listed more than once"},
	TooManyTags:   errid.ID{Code: 3009, Message: "A post may have at most 10 tags"},
	StatusInvalid: errid.ID{Code: 3010, Message: "Post status must be draft or published"},
	NotFound:      errid.ID{Code: 3011, Message: "Post not found"},
	NotAuthor:     errid.ID{Code: 3012, Message: "Only the author can modify this post"},
}
