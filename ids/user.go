package ids

import "github.com/reoring/blogschema/errid"

// UserIDs are the user failures (2000s).
type UserIDs struct {
	NameTooShort       errid.ID
	NameTooLong        errid.ID
	NameInvalid        errid.ID
	NameDuplicate      errid.ID
	EmailInvalid       errid.ID
	EmailDuplicate     errid.ID
	PasswordTooShort   errid.ID
	PasswordTooLong    errid.ID
	PasswordTooWeak    errid.ID
	PasswordMismatch   errid.ID
	DisplayNameTooLong errid.ID
	BioTooLong         errid.ID
	AvatarURLInvalid   errid.ID
	NotFound           errid.ID
	InvalidCredentials errid.ID
}

// User holds the user identifiers.
var User = UserIDs{
	NameTooShort:       errid.ID{Code: 2001, Message: "Username must be at least 3 characters"},
	NameTooLong:        errid.ID{Code: 2002, Message: "Username must be at most 32 characters"},
	NameInvalid:        errid.ID{Code: 2003, Message: "Username may only contain letters, digits and underscores"},
	NameDuplicate:      errid.ID{Code: 2004, Message: "Username is already taken"},
	EmailInvalid:       errid.ID{Code: 2005, Message: "Email address is invalid"},
	EmailDuplicate:     errid.ID{Code: 2006, Message: "Email address is already registered"},
	PasswordTooShort:   errid.ID{Code: 2007, Message: "Password must be at least 8 characters"},
	PasswordTooLong:    errid.ID{Code: 2008, Message: "Password must be at most 72 characters"},
	PasswordTooWeak:    errid.ID{Code: 2009, Message: "Password must contain a letter and a digit"},
	PasswordMismatch:   errid.ID{Code: 2010, Message: "Password confirmation does not match"},
	DisplayNameTooLong: errid.ID{Code: 2011, Message: "Display name must be at most 64 characters"},
	BioTooLong:         errid.ID{Code: 2012, Message: "Bio must be at most 500 characters"},
	AvatarURLInvalid:   errid.ID{Code: 2013, Message: "Avatar URL is invalid"},
	NotFound:           errid.ID{Code: 2014, Message: "User not found"},
	InvalidCredentials: errid.ID{Code: 2015, Message: "Username or password is incorrect"},
}
