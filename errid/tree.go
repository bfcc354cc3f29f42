package errid

import (
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tree is a nested mapping from domain names to identifiers. A value is
// either an ID (a leaf) or a container: another Tree, any map keyed by
// string, or a struct whose exported fields are leaves or containers.
type Tree map[string]any

var idType = reflect.TypeOf(ID{})

// TreeOf converts a container value (struct, map or Tree) into a Tree made
// only of Tree and ID nodes. Struct fields are named after the `errid` tag
// when present, otherwise after the field name with a lower-case first rune.
func TreeOf(v any) (Tree, error) {
	n, err := normalize(v, nil)
	if err != nil {
		return nil, err
	}
	t, ok := n.(Tree)
	if !ok {
		return nil, newError(ErrInvalidNode, nil, map[string]any{"path": "", "reason": "root must be a container"})
	}
	return t, nil
}

// MustTreeOf is like TreeOf but panics on error.
func MustTreeOf(v any) Tree {
	t, err := TreeOf(v)
	if err != nil {
		panic(err)
	}
	return t
}

func normalize(v any, path []string) (any, error) {
	if v == nil {
		return nil, invalidNode(path, "nil")
	}
	switch t := v.(type) {
	case ID:
		return t, nil
	case *ID:
		if t == nil {
			return nil, invalidNode(path, "nil identifier")
		}
		return *t, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, invalidNode(path, "nil")
		}
		rv = rv.Elem()
	}
	if rv.Type() == idType {
		return rv.Interface().(ID), nil
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, invalidNode(path, "map key must be string")
		}
		out := make(Tree, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			child, err := normalize(iter.Value().Interface(), appendPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = child
		}
		return out, nil
	case reflect.Struct:
		rt := rv.Type()
		out := make(Tree, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			name := fieldName(f)
			if name == "-" {
				continue
			}
			child, err := normalize(rv.Field(i).Interface(), appendPath(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = child
		}
		return out, nil
	default:
		return nil, invalidNode(path, "unsupported kind "+rv.Kind().String())
	}
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("errid"); ok && tag != "" {
		return tag
	}
	r, size := utf8.DecodeRuneInString(f.Name)
	return string(unicode.ToLower(r)) + f.Name[size:]
}

func invalidNode(path []string, reason string) error {
	return newError(ErrInvalidNode, nil, map[string]any{"path": strings.Join(path, "."), "reason": reason})
}

func appendPath(path []string, name string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, name)
}

// walk visits every leaf of a normalized tree in path order.
func walk(t Tree, path []string, visit func(path []string, id ID)) {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p := appendPath(path, k)
		switch n := t[k].(type) {
		case ID:
			visit(p, n)
		case Tree:
			walk(n, p, visit)
		}
	}
}

func cloneTree(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		if sub, ok := v.(Tree); ok {
			out[k] = cloneTree(sub)
			continue
		}
		out[k] = v
	}
	return out
}
