package ids

import "github.com/reoring/blogschema/errid"

// CommentIDs are the comment failures (4000s).
type CommentIDs struct {
	BodyEmpty      errid.ID
	BodyTooLong    errid.ID
	NotFound       errid.ID
	ParentNotFound errid.ID
	ThreadTooDeep  errid.ID
	NotAuthor      errid.ID
	PostLocked     errid.ID
}

// Comment holds the comment identifiers.
var Comment = CommentIDs{
	BodyEmpty:      errid.ID{Code: 4001, Message: "Comment must not be empty"},
	BodyTooLong:    errid.ID{Code: 4002, Message: "Comment must be at most 2000 characters"},
	NotFound:       errid.ID{Code: 4003, Message: "Comment not found"},
	ParentNotFound: errid.ID{Code: 4004, Message: "Parent comment not found"},
	ThreadTooDeep:  errid.ID{Code: 4005, Message: "Replies may be nested at most 8 levels deep"},
	NotAuthor:      errid.ID{Code: 4006, Message: "Only the author can modify this comment"},
	PostLocked:     errid.ID{Code: 4007, Message: "Comments are closed for this post"},
}
