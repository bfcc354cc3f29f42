package ids

import "github.com/reoring/blogschema/errid"

// RequestIDs cover request decoding: path parameters, paging and delimited
// query arrays.
type RequestIDs struct {
	InvalidJSON               errid.ID
	InvalidResourceID         errid.ID
	PageOutOfRange            errid.ID
	LimitOutOfRange           errid.ID
	QueryArrayFormat          errid.ID
	QueryArrayDuplicate       errid.ID
	QueryArrayKeyNotAllowed   errid.ID
	QueryArrayValueNotAllowed errid.ID
}

// Request holds the request decoding identifiers.
var Request = RequestIDs{
	InvalidJSON:               errid.ID{Code: 1101, Message: "Request body is not valid JSON"},
	InvalidResourceID:         errid.ID{Code: 1102, Message: "Resource ID must be a positive integer"},
	PageOutOfRange:            errid.ID{Code: 1103, Message: "Page must be a positive integer"},
	LimitOutOfRange:           errid.ID{Code: 1104, Message: "Limit must be between 1 and 100"},
	QueryArrayFormat:          errid.ID{Code: 1105, Message: "Query array must be a comma separated list of words"},
	QueryArrayDuplicate:       errid.ID{Code: 1106, Message: "Query array contains a duplicate element"},
	QueryArrayKeyNotAllowed:   errid.ID{Code: 1107, Message: "Query array contains a key that is not allowed"},
	QueryArrayValueNotAllowed: errid.ID{Code: 1108, Message: "Query array contains a value that is not allowed"},
}
