package errid

import (
	"regexp"
	"strconv"
	"strings"
)

// ID names one failure condition. Code and Message are each unique across
// the whole registry.
type ID struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Valid reports whether the identifier can be registered. Messages may not
// contain a newline, Parse could not decode the encoded form.
func (id ID) Valid() bool {
	return id.Code >= 0 && id.Message != "" && !strings.Contains(id.Message, "\n")
}

// String returns the encoded form, see Stringify.
func (id ID) String() string { return Stringify(id) }

// Separator splits the code from the message in the encoded form.
const Separator = "|"

var encodedPattern = regexp.MustCompile(`^\d+\|.+$`)

// Stringify encodes id as "<code>|<message>".
func Stringify(id ID) string {
	return strconv.Itoa(id.Code) + Separator + id.Message
}

// Parse decodes a string produced by Stringify. The code is the leading run
// of digits; the message is everything after the first separator and may
// itself contain separators.
func Parse(s string) (ID, error) {
	if !encodedPattern.MatchString(s) {
		return ID{}, newError(ErrMalformed, nil, map[string]any{"input": s})
	}
	i := strings.Index(s, Separator)
	code, err := strconv.Atoi(s[:i])
	if err != nil {
		return ID{}, newError(ErrMalformed, err, map[string]any{"input": s})
	}
	return ID{Code: code, Message: s[i+1:]}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsEncoded reports whether s has the encoded identifier shape.
func IsEncoded(s string) bool { return encodedPattern.MatchString(s) }
