package errschema

import (
	goerrors "github.com/goliatone/go-errors"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/errid"
	"github.com/reoring/blogschema/response"
)

// Failure is an identifier recovered from a validation issue.
type Failure struct {
	ID   errid.ID
	Path []any
	// PathData is set when the identifier is declared with PathData.
	PathData bool
	// Data is the value a rule attached under ParamData, if any.
	Data any
}

// Identify recovers identifiers from the issues in err. The structured
// ParamID is preferred; otherwise the message is decoded. Issues with plain
// messages are skipped. Failed union members are searched too.
func Identify(err error) []Failure {
	iss, ok := blogschema.AsIssues(err)
	if !ok {
		return nil
	}
	var out []Failure
	collect(iss, nil, &out)
	return out
}

func collect(iss blogschema.Issues, prefix []any, out *[]Failure) {
	for _, it := range iss {
		path := make([]any, 0, len(prefix)+len(it.Segments))
		path = append(path, prefix...)
		path = append(path, it.Segments...)

		if branches, ok := it.Params["branches"].([]blogschema.Issues); ok {
			for _, b := range branches {
				collect(b, path, out)
			}
			continue
		}

		id, ok := it.Params[ParamID].(errid.ID)
		if !ok {
			if !errid.IsEncoded(it.Message) {
				continue
			}
			parsed, err := errid.Parse(it.Message)
			if err != nil {
				continue
			}
			id = parsed
		}
		withPath, _ := it.Params[ParamPathData].(bool)
		*out = append(*out, Failure{ID: id, Path: path, PathData: withPath, Data: it.Params[ParamData]})
	}
}

// ErrUnidentified is returned by ToResponseErrors when err holds no
// registered identifier.
var ErrUnidentified = goerrors.New("no registered identifier in error", goerrors.CategoryValidation).
	WithTextCode("ERRSCHEMA_UNIDENTIFIED")

// ToResponseErrors converts identified failures into wire errors. Only
// identifiers registered in reg are kept (all of them when reg is nil) and
// repeated (identifier, path) pairs are reported once.
func ToResponseErrors(err error, reg *errid.Registry) ([]response.ResponseError, error) {
	seen := map[string]struct{}{}
	var out []response.ResponseError
	for _, f := range Identify(err) {
		if reg != nil && !reg.Contains(f.ID) {
			continue
		}
		re := response.ResponseError{Code: f.ID.Code, Message: f.ID.Message, Data: f.Data}
		if f.PathData {
			re.Data = map[string]any{"path": nonNil(f.Path)}
		}
		key := f.ID.String() + "\x00" + pathKey(f.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, re)
	}
	if len(out) == 0 {
		return nil, ErrUnidentified
	}
	return out, nil
}

func nonNil(p []any) []any {
	if p == nil {
		return []any{}
	}
	return p
}

func pathKey(p []any) string {
	return blogschema.PathOf(p...).Pointer()
}
