package dsl

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/i18n"
)

// message picks the first custom message, falling back to the translated default.
func message(custom []string, code string, data map[string]string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return i18n.T(code, data)
}

// text is a failure message resolved at parse time, so the translator
// active during Parse applies to defaults.
type text struct {
	custom []string
	code   string
	data   map[string]string
}

func textOf(custom []string, code string, data map[string]string) text {
	return text{custom: custom, code: code, data: data}
}

func (t text) String() string { return message(t.custom, t.code, t.data) }

// fail builds a single root issue.
func fail(code, msg string, params map[string]any) blogschema.Issues {
	return blogschema.Issues{blogschema.IssueAt(blogschema.Root(), code, msg, params)}
}

func invalidType(expected string, custom ...string) blogschema.Issues {
	return fail(blogschema.CodeInvalidType, message(custom, blogschema.CodeInvalidType, map[string]string{"expected": expected}), map[string]any{"expected": expected})
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with CodeParseError.
func issuesFromErr(err error) blogschema.Issues {
	if err == nil {
		return nil
	}
	if iss, ok := blogschema.AsIssues(err); ok {
		return iss
	}
	return blogschema.Issues{blogschema.Issue{Path: "/", Code: blogschema.CodeParseError, Message: err.Error(), Cause: err}}
}

// toFloat reads any JSON-ish number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(n).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(n).Uint()), true
	}
	return 0, false
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// equalValues compares literal values, treating all numeric types as equal
// when they hold the same number.
func equalValues(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA || okB {
		return okA && okB && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if !ta.Comparable() || !tb.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
