package ids

import "github.com/reoring/blogschema/errid"

// EmoteIDs keep "unknown emote" and "already reacted" apart: an invalid value
// and a duplicate are different conditions with different identifiers.
type EmoteIDs struct {
	Unknown        errid.ID
	AlreadyReacted errid.ID
	NotReacted     errid.ID
	TargetInvalid  errid.ID
	TargetNotFound errid.ID
}

// Emote holds the emote identifiers.
var Emote = EmoteIDs{
	Unknown:        errid.ID{Code: 5001, Message: "Emote is not one of the available emotes"},
	AlreadyReacted: errid.ID{Code: 5002, Message: "You already reacted with this emote"},
	NotReacted:     errid.ID{Code: 5003, Message: "You have not reacted with this emote"},
	TargetInvalid:  errid.ID{Code: 5004, Message: "Emote target must be a post or a comment"},
	TargetNotFound: errid.ID{Code: 5005, Message: "Emote target not found"},
}
