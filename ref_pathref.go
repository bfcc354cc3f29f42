package blogschema

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef struct {
	segs []any
}

// Root returns the empty path.
func Root() PathRef { return PathRef{} }

// PathOf builds a PathRef from string keys and int indexes. Other values are
// formatted with fmt.
func PathOf(segs ...any) PathRef {
	out := make([]any, 0, len(segs))
	for _, s := range segs {
		switch v := s.(type) {
		case string, int:
			out = append(out, v)
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return PathRef{segs: out}
}

// Field appends an object key.
func (p PathRef) Field(name string) PathRef { return p.with(name) }

// Index appends an array index.
func (p PathRef) Index(i int) PathRef { return p.with(i) }

func (p PathRef) with(seg any) PathRef {
	segs := make([]any, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return PathRef{segs: append(segs, seg)}
}

// Segments returns a copy of the path segments.
func (p PathRef) Segments() []any {
	out := make([]any, len(p.segs))
	copy(out, p.segs)
	return out
}

// Pointer renders the path as an RFC 6901 JSON Pointer ("/" for the root).
func (p PathRef) Pointer() string {
	if len(p.segs) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p.segs {
		b.WriteByte('/')
		switch v := s.(type) {
		case int:
			b.WriteString(strconv.Itoa(v))
		case string:
			// escape '~' -> '~0', '/' -> '~1' per RFC6901
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(v, "~", "~0"), "/", "~1"))
		}
	}
	return b.String()
}

// Issue creates an Issue at this path. kv are alternating param keys and values.
func (p PathRef) Issue(code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 1 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Segments: p.Segments(), Code: code, Message: msg, Params: m}
}

// IssueAt creates an Issue at the given path with provided code, message and params map.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Segments: p.Segments(), Code: code, Message: msg, Params: params}
}
