package dsl

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	blogschema "github.com/reoring/blogschema"
	js "github.com/reoring/blogschema/jsonschema"
)

type stringCheck struct {
	code   string
	msg    text
	params map[string]any
	ok     func(string) bool
}

// StringSchema validates strings. Checks run in declaration order and all
// failures are reported.
type StringSchema struct {
	typeMsg []string
	trim    bool
	checks  []stringCheck
	js      js.Schema
}

// String returns a string schema.
func String(typeMsg ...string) *StringSchema {
	return &StringSchema{typeMsg: typeMsg, js: js.Schema{Type: "string"}}
}

// Trim strips surrounding whitespace before the checks run.
func (s *StringSchema) Trim() *StringSchema { s.trim = true; return s }

// Min requires at least n characters (runes).
func (s *StringSchema) Min(n int, msg ...string) *StringSchema {
	s.js.MinLength = js.Int(n)
	return s.add(blogschema.CodeTooShort, textOf(msg, blogschema.CodeTooShort, map[string]string{"min": strconv.Itoa(n)}),
		map[string]any{"min": n}, func(v string) bool { return utf8.RuneCountInString(v) >= n })
}

// Max allows at most n characters (runes).
func (s *StringSchema) Max(n int, msg ...string) *StringSchema {
	s.js.MaxLength = js.Int(n)
	return s.add(blogschema.CodeTooLong, textOf(msg, blogschema.CodeTooLong, map[string]string{"max": strconv.Itoa(n)}),
		map[string]any{"max": n}, func(v string) bool { return utf8.RuneCountInString(v) <= n })
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int, msg ...string) *StringSchema {
	return s.Min(n, msg...).Max(n, msg...)
}

// NonEmpty is Min(1).
func (s *StringSchema) NonEmpty(msg ...string) *StringSchema { return s.Min(1, msg...) }

// Regex requires the value to match pattern. It panics on an invalid
// pattern, rules are built at init time.
func (s *StringSchema) Regex(pattern string, msg ...string) *StringSchema {
	re := regexp.MustCompile(pattern)
	s.js.Pattern = pattern
	return s.add(blogschema.CodePattern, textOf(msg, blogschema.CodePattern, map[string]string{"pattern": pattern}),
		map[string]any{"pattern": pattern}, re.MatchString)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email requires a plausible e-mail address.
func (s *StringSchema) Email(msg ...string) *StringSchema {
	s.js.Format = "email"
	return s.format("email", msg, emailPattern.MatchString)
}

// URL requires an absolute http(s) URL.
func (s *StringSchema) URL(msg ...string) *StringSchema {
	s.js.Format = "uri"
	return s.format("url", msg, func(v string) bool {
		u, err := url.ParseRequestURI(v)
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
}

// UUID requires a canonical UUID string.
func (s *StringSchema) UUID(msg ...string) *StringSchema {
	s.js.Format = "uuid"
	return s.format("uuid", msg, func(v string) bool {
		_, err := uuid.Parse(v)
		return err == nil && len(v) == 36
	})
}

// DateTime requires an RFC 3339 timestamp.
func (s *StringSchema) DateTime(msg ...string) *StringSchema {
	s.js.Format = "date-time"
	return s.format("date-time", msg, func(v string) bool {
		_, err := time.Parse(time.RFC3339, v)
		return err == nil
	})
}

// Check adds a custom predicate reported with CodeCustom.
func (s *StringSchema) Check(ok func(string) bool, msg ...string) *StringSchema {
	return s.add(blogschema.CodeCustom, textOf(msg, blogschema.CodeCustom, nil), nil, ok)
}

func (s *StringSchema) format(name string, msg []string, ok func(string) bool) *StringSchema {
	return s.add(blogschema.CodeInvalidFormat, textOf(msg, blogschema.CodeInvalidFormat, map[string]string{"format": name}),
		map[string]any{"format": name}, ok)
}

func (s *StringSchema) add(code string, msg text, params map[string]any, ok func(string) bool) *StringSchema {
	s.checks = append(s.checks, stringCheck{code: code, msg: msg, params: params, ok: ok})
	return s
}

func (s *StringSchema) Parse(ctx context.Context, v any) (any, error) {
	str, ok := v.(string)
	if !ok {
		return nil, invalidType("string", s.typeMsg...)
	}
	if s.trim {
		str = strings.TrimSpace(str)
	}
	var iss blogschema.Issues
	for _, c := range s.checks {
		if c.ok(str) {
			continue
		}
		iss = append(iss, blogschema.IssueAt(blogschema.Root(), c.code, c.msg.String(), c.params))
		if blogschema.IsFailFast(ctx) {
			break
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return str, nil
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	out := s.js
	return &out, nil
}

// NumberSchema validates JSON numbers. Integer schemas return int, others float64.
type NumberSchema struct {
	integer    bool
	coerce     bool
	typeMsg    []string
	min, max   *float64
	minMsg     text
	maxMsg     text
	customs    []numberCheck
	exportType string
}

type numberCheck struct {
	msg text
	ok  func(float64) bool
}

var numericString = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Int returns an integer schema.
func Int(typeMsg ...string) *NumberSchema {
	return &NumberSchema{integer: true, typeMsg: typeMsg, exportType: "integer"}
}

// Number returns a float schema.
func Number(typeMsg ...string) *NumberSchema {
	return &NumberSchema{typeMsg: typeMsg, exportType: "number"}
}

// CoerceFromString also accepts numeric strings, as found in path and
// query parameters.
func (n *NumberSchema) CoerceFromString() *NumberSchema { n.coerce = true; return n }

// Min sets an inclusive minimum.
func (n *NumberSchema) Min(f float64, msg ...string) *NumberSchema {
	n.min = &f
	n.minMsg = textOf(msg, blogschema.CodeTooSmall, map[string]string{"min": ftoa(f)})
	return n
}

// Max sets an inclusive maximum.
func (n *NumberSchema) Max(f float64, msg ...string) *NumberSchema {
	n.max = &f
	n.maxMsg = textOf(msg, blogschema.CodeTooBig, map[string]string{"max": ftoa(f)})
	return n
}

// Positive is Min(1) for integers and Min(smallest positive) otherwise.
func (n *NumberSchema) Positive(msg ...string) *NumberSchema {
	if n.integer {
		return n.Min(1, msg...)
	}
	return n.Min(5e-324, msg...)
}

// Check adds a custom predicate reported with CodeCustom.
func (n *NumberSchema) Check(ok func(float64) bool, msg ...string) *NumberSchema {
	n.customs = append(n.customs, numberCheck{msg: textOf(msg, blogschema.CodeCustom, nil), ok: ok})
	return n
}

func (n *NumberSchema) Parse(ctx context.Context, v any) (any, error) {
	f, ok := toFloat(v)
	if !ok && n.coerce {
		if s, isStr := v.(string); isStr {
			parsed, err := strconv.ParseFloat(s, 64)
			ok = err == nil && numericString.MatchString(s)
			f = parsed
		}
	}
	if !ok || (n.integer && !isIntegral(f)) {
		return nil, invalidType(n.exportType, n.typeMsg...)
	}

	var iss blogschema.Issues
	if n.min != nil && f < *n.min {
		iss = append(iss, blogschema.IssueAt(blogschema.Root(), blogschema.CodeTooSmall, n.minMsg.String(), map[string]any{"min": *n.min, "got": f}))
	}
	if n.max != nil && f > *n.max {
		iss = append(iss, blogschema.IssueAt(blogschema.Root(), blogschema.CodeTooBig, n.maxMsg.String(), map[string]any{"max": *n.max, "got": f}))
	}
	for _, c := range n.customs {
		if !c.ok(f) {
			iss = append(iss, blogschema.IssueAt(blogschema.Root(), blogschema.CodeCustom, c.msg.String(), nil))
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if n.integer {
		return int(f), nil
	}
	return f, nil
}

func (n *NumberSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: n.exportType, Minimum: n.min, Maximum: n.max}, nil
}

// BoolSchema validates booleans.
type BoolSchema struct {
	coerce  bool
	typeMsg []string
}

// Bool returns a bool schema.
func Bool(typeMsg ...string) *BoolSchema { return &BoolSchema{typeMsg: typeMsg} }

// CoerceFromString also accepts "true" and "false".
func (b *BoolSchema) CoerceFromString() *BoolSchema { b.coerce = true; return b }

func (b *BoolSchema) Parse(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		if b.coerce && (t == "true" || t == "false") {
			return t == "true", nil
		}
	}
	return nil, invalidType("boolean", b.typeMsg...)
}

func (b *BoolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }
