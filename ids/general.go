package ids

import "github.com/reoring/blogschema/errid"

// GeneralIDs are failures any endpoint can return.
type GeneralIDs struct {
	Unauthorized   errid.ID
	Forbidden      errid.ID
	NotFound       errid.ID
	Internal       errid.ID
	InvalidRequest errid.ID
	RateLimited    errid.ID
}

// General holds identifiers shared by every endpoint.
var General = GeneralIDs{
	Unauthorized:   errid.ID{Code: 1001, Message: "Authentication is required"},
	Forbidden:      errid.ID{Code: 1002, Message: "You do not have permission to perform this action"},
	NotFound:       errid.ID{Code: 1003, Message: "The requested resource was not found"},
	Internal:       errid.ID{Code: 1004, Message: "An internal error occurred"},
	InvalidRequest: errid.ID{Code: 1005, Message: "The request is invalid"},
	RateLimited:    errid.ID{Code: 1006, Message: "Too many requests"},
}
