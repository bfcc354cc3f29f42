package ids

import "github.com/reoring/blogschema/errid"

// ProjectIDs are the project failures (6000s).
type ProjectIDs struct {
	NameEmpty          errid.ID
	NameTooLong        errid.ID
	NameDuplicate      errid.ID
	DescriptionTooLong errid.ID
	URLInvalid         errid.ID
	VisibilityInvalid  errid.ID
	NotFound           errid.ID
	NotMember          errid.ID
	MemberLimit        errid.ID
}

// Project holds the project identifiers.
var Project = ProjectIDs{
	NameEmpty:          errid.ID{Code: 6001, Message: "Project name must not be empty"},
	NameTooLong:        errid.ID{Code: 6002, Message: "Project name must be at most 64 characters"},
	NameDuplicate:      errid.ID{Code: 6003, Message: "You already have a project with this name"},
	DescriptionTooLong: errid.ID{Code: 6004, Message: "Project description must be at most 1000 characters"},
	URLInvalid:         errid.ID{Code: 6005, Message: "Project URL is invalid"},
	VisibilityInvalid:  errid.ID{Code: 6006, Message: "Project visibility must be public or private"},
	NotFound:           errid.ID{Code: 6007, Message: "Project not found"},
	NotMember:          errid.ID{Code: 6008, Message: "You are not a member of this project"},
	MemberLimit:        errid.ID{Code: 6009, Message: "A project may have at most 50 members"},
}
