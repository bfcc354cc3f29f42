// Package aggregate computes which error identifiers a composite rule can
// produce.
//
// Of walks a rule through blogschema.Tagged (identifiers declared by the
// rule itself) and blogschema.Composite (objects, arrays, unions, wrappers,
// lazies). Untagged leaves contribute nothing. The walk visits each rule
// value once, which also cuts cycles built with dsl.Lazy.
package aggregate

import (
	"fmt"
	"reflect"
	"sync"

	blogschema "github.com/reoring/blogschema"
	"github.com/reoring/blogschema/errid"
)

// Set is an ordered set of tags keyed by identifier and data shape. The
// zero value is empty and ready to use.
type Set struct {
	tags  []blogschema.Tag
	index map[entryKey]struct{}
}

type entryKey struct {
	id   errid.ID
	data any
}

// Tags returns the tags in first-seen order.
func (s Set) Tags() []blogschema.Tag { return append([]blogschema.Tag(nil), s.tags...) }

// IDs returns the distinct identifiers in first-seen order.
func (s Set) IDs() []errid.ID {
	seen := make(map[errid.ID]struct{}, len(s.tags))
	out := make([]errid.ID, 0, len(s.tags))
	for _, t := range s.tags {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t.ID)
	}
	return out
}

// Has reports whether id is in the set with any data shape.
func (s Set) Has(id errid.ID) bool {
	for _, t := range s.tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (s Set) Len() int { return len(s.tags) }

// Union returns a new set with the tags of s followed by those of others.
func (s Set) Union(others ...Set) Set {
	out := s.clone()
	for _, o := range others {
		for _, t := range o.tags {
			out.add(t)
		}
	}
	return out
}

func (s *Set) add(t blogschema.Tag) {
	if s.index == nil {
		s.index = map[entryKey]struct{}{}
	}
	k := entryKey{id: t.ID, data: identity(t.Data)}
	if _, ok := s.index[k]; ok {
		return
	}
	s.index[k] = struct{}{}
	s.tags = append(s.tags, t)
}

func (s Set) clone() Set {
	out := Set{tags: append([]blogschema.Tag(nil), s.tags...), index: make(map[entryKey]struct{}, len(s.index))}
	for k := range s.index {
		out.index[k] = struct{}{}
	}
	return out
}

var memo sync.Map // identity -> Set

// Of returns every tag reachable from r. Results are memoized per rule
// value; rules must not be mutated after they are first aggregated.
func Of(r blogschema.Rule) Set {
	if r == nil {
		return Set{}
	}
	k := identity(r)
	if v, ok := memo.Load(k); ok {
		return v.(Set).clone()
	}
	var s Set
	walk(r, map[any]struct{}{}, &s)
	v, _ := memo.LoadOrStore(k, s)
	return v.(Set).clone()
}

// All unions Of over several rules.
func All(rules ...blogschema.Rule) Set {
	var s Set
	for _, r := range rules {
		s = s.Union(Of(r))
	}
	return s
}

func walk(r blogschema.Rule, visited map[any]struct{}, s *Set) {
	if r == nil {
		return
	}
	k := identity(r)
	if _, ok := visited[k]; ok {
		return
	}
	visited[k] = struct{}{}

	if t, ok := r.(blogschema.Tagged); ok {
		for _, tag := range t.ErrorTags() {
			s.add(tag)
		}
	}
	if c, ok := r.(blogschema.Composite); ok {
		for _, child := range c.Children() {
			walk(child, visited, s)
		}
	}
}

type pointerKey struct {
	typ reflect.Type
	ptr uintptr
}

// identity returns a comparable key for a rule value: the address for
// reference kinds, the value itself when comparable, and its printed form
// otherwise.
func identity(r blogschema.Rule) any {
	if r == nil {
		return nil
	}
	rv := reflect.ValueOf(r)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return pointerKey{typ: rv.Type(), ptr: rv.Pointer()}
	}
	if rv.Comparable() {
		return r
	}
	return fmt.Sprintf("%T:%#v", r, r)
}
