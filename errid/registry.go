package errid

import (
	"fmt"
	"sort"
	"strings"
)

// Leaf is one registered identifier together with its path in the tree.
type Leaf struct {
	Path []string `json:"path" yaml:"path"`
	ID   ID       `json:"id" yaml:"id"`
}

// Key joins the leaf path with dots, e.g. "user.usernameTooShort".
func (l Leaf) Key() string { return strings.Join(l.Path, ".") }

// Registry is the merged, uniqueness-checked set of identifiers. It is
// immutable once built and safe for concurrent use.
type Registry struct {
	tree      Tree
	leaves    []Leaf
	byCode    map[int]Leaf
	byMessage map[string]Leaf
	byPath    map[string]Leaf
}

// NewRegistry normalizes domains and checks that every leaf is valid and
// that codes and messages are pairwise distinct across all leaves. On a
// collision the returned error lists every colliding path (see Collisions).
func NewRegistry(domains Tree) (*Registry, error) {
	tree, err := TreeOf(domains)
	if err != nil {
		return nil, err
	}

	var leaves []Leaf
	var invalid []string
	walk(tree, nil, func(path []string, id ID) {
		if !id.Valid() {
			invalid = append(invalid, strings.Join(path, "."))
			return
		}
		leaves = append(leaves, Leaf{Path: path, ID: id})
	})
	if len(invalid) > 0 {
		e := newError(ErrInvalidID, nil, map[string]any{"paths": invalid})
		e.Message = fmt.Sprintf("%s: %s", e.Message, strings.Join(invalid, ", "))
		return nil, e
	}

	if cs := findCollisions(leaves); len(cs) > 0 {
		base := ErrDuplicateMessage
		if cs[0].Kind == "code" {
			base = ErrDuplicateCode
		}
		e := newError(base, nil, map[string]any{"collisions": cs})
		e.Message = describeCollisions(cs)
		return nil, e
	}

	r := &Registry{
		tree:      tree,
		leaves:    leaves,
		byCode:    make(map[int]Leaf, len(leaves)),
		byMessage: make(map[string]Leaf, len(leaves)),
		byPath:    make(map[string]Leaf, len(leaves)),
	}
	for _, l := range leaves {
		r.byCode[l.ID.Code] = l
		r.byMessage[l.ID.Message] = l
		r.byPath[l.Key()] = l
	}
	sort.SliceStable(r.leaves, func(i, j int) bool { return r.leaves[i].ID.Code < r.leaves[j].ID.Code })
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(domains Tree) *Registry {
	r, err := NewRegistry(domains)
	if err != nil {
		panic(err)
	}
	return r
}

func findCollisions(leaves []Leaf) []Collision {
	codes := map[int][][]string{}
	messages := map[string][][]string{}
	for _, l := range leaves {
		codes[l.ID.Code] = append(codes[l.ID.Code], l.Path)
		messages[l.ID.Message] = append(messages[l.ID.Message], l.Path)
	}

	var out []Collision
	codeKeys := make([]int, 0, len(codes))
	for c, paths := range codes {
		if len(paths) > 1 {
			codeKeys = append(codeKeys, c)
		}
	}
	sort.Ints(codeKeys)
	for _, c := range codeKeys {
		out = append(out, Collision{Kind: "code", Value: c, Paths: codes[c]})
	}

	msgKeys := make([]string, 0, len(messages))
	for m, paths := range messages {
		if len(paths) > 1 {
			msgKeys = append(msgKeys, m)
		}
	}
	sort.Strings(msgKeys)
	for _, m := range msgKeys {
		out = append(out, Collision{Kind: "message", Value: m, Paths: messages[m]})
	}
	return out
}

func describeCollisions(cs []Collision) string {
	b := &strings.Builder{}
	for i, c := range cs {
		if i > 0 {
			b.WriteString("; ")
		}
		paths := make([]string, len(c.Paths))
		for j, p := range c.Paths {
			paths[j] = strings.Join(p, ".")
		}
		fmt.Fprintf(b, "duplicate %s %v: %s", c.Kind, c.Value, strings.Join(paths, ", "))
	}
	return b.String()
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int { return len(r.leaves) }

// Leaves returns every leaf ordered by code.
func (r *Registry) Leaves() []Leaf {
	out := make([]Leaf, len(r.leaves))
	copy(out, r.leaves)
	return out
}

// Domains returns the top-level names, sorted.
func (r *Registry) Domains() []string {
	out := make([]string, 0, len(r.tree))
	for k := range r.tree {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tree returns a copy of the normalized tree.
func (r *Registry) Tree() Tree { return cloneTree(r.tree) }

// Lookup finds the leaf registered under code.
func (r *Registry) Lookup(code int) (Leaf, bool) {
	l, ok := r.byCode[code]
	return l, ok
}

// LookupMessage finds the leaf registered under message.
func (r *Registry) LookupMessage(message string) (Leaf, bool) {
	l, ok := r.byMessage[message]
	return l, ok
}

// Get returns the identifier at path, e.g. Get("user", "notFound").
func (r *Registry) Get(path ...string) (ID, bool) {
	l, ok := r.byPath[strings.Join(path, ".")]
	return l.ID, ok
}

// Contains reports whether id is registered with exactly this code and message.
func (r *Registry) Contains(id ID) bool {
	l, ok := r.byCode[id.Code]
	return ok && l.ID.Message == id.Message
}

// Resolve decodes an encoded identifier and returns the matching leaf.
func (r *Registry) Resolve(encoded string) (Leaf, error) {
	id, err := Parse(encoded)
	if err != nil {
		return Leaf{}, err
	}
	if !r.Contains(id) {
		return Leaf{}, newError(ErrUnknown, nil, map[string]any{"code": id.Code, "message": id.Message})
	}
	return r.byCode[id.Code], nil
}
