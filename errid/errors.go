package errid

import (
	stderrors "errors"

	"github.com/goliatone/go-errors"
)

// Text codes carried by errors returned from this package.
const (
	TextCodeMalformed        = "ERRID_MALFORMED"
	TextCodeInvalidID        = "ERRID_INVALID_ID"
	TextCodeInvalidNode      = "ERRID_INVALID_NODE"
	TextCodeDuplicateCode    = "ERRID_DUPLICATE_CODE"
	TextCodeDuplicateMessage = "ERRID_DUPLICATE_MESSAGE"
	TextCodeUnknown          = "ERRID_UNKNOWN"
)

var (
	// ErrMalformed is returned (cloned) by Parse for strings that are not of
	// the form "<code>|<message>".
	ErrMalformed = errors.New("malformed encoded error identifier", errors.CategoryBadInput).
			WithTextCode(TextCodeMalformed)
	// ErrInvalidID marks a leaf with a negative code or an empty message.
	ErrInvalidID = errors.New("invalid error identifier", errors.CategoryValidation).
			WithTextCode(TextCodeInvalidID)
	// ErrInvalidNode marks a tree node that is neither an ID nor a container.
	ErrInvalidNode = errors.New("registry node is neither an identifier nor a container", errors.CategoryValidation).
			WithTextCode(TextCodeInvalidNode)
	// ErrDuplicateCode marks two leaves sharing a code.
	ErrDuplicateCode = errors.New("duplicate error identifier code", errors.CategoryConflict).
				WithTextCode(TextCodeDuplicateCode)
	// ErrDuplicateMessage marks two leaves sharing a message.
	ErrDuplicateMessage = errors.New("duplicate error identifier message", errors.CategoryConflict).
				WithTextCode(TextCodeDuplicateMessage)
	// ErrUnknown is returned by Registry.Resolve for well-formed strings that
	// name no registered identifier.
	ErrUnknown = errors.New("unknown error identifier", errors.CategoryBadInput).
			WithTextCode(TextCodeUnknown)
)

func newError(base *errors.Error, source error, metadata map[string]any) *errors.Error {
	err := base.Clone()
	if source != nil {
		err.Source = source
	}
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return err
}

// TextCode returns the go-errors text code carried by err, or "".
func TextCode(err error) string {
	var ge *errors.Error
	if stderrors.As(err, &ge) {
		return ge.TextCode
	}
	return ""
}

// IsMalformed reports whether err was produced by Parse for a malformed input.
func IsMalformed(err error) bool { return TextCode(err) == TextCodeMalformed }

// Collision describes leaves sharing a code or a message.
type Collision struct {
	Kind  string     `json:"kind" yaml:"kind"` // "code" or "message"
	Value any        `json:"value" yaml:"value"`
	Paths [][]string `json:"paths" yaml:"paths"`
}

// Collisions extracts the collision list attached to a registry error.
func Collisions(err error) []Collision {
	var ge *errors.Error
	if !stderrors.As(err, &ge) {
		return nil
	}
	cs, _ := ge.Metadata["collisions"].([]Collision)
	return cs
}
