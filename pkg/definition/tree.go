package definition

import (
	"iter"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// Separator splits path segments.
const Separator = "."

// Tree is an ordered string-keyed mapping. The zero value is not usable; call New.
type Tree struct {
	values map[string]any
	keys   []string
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{values: make(map[string]any)}
}

// Pairs builds a tree from alternating key/value arguments, keeping their order.
// A trailing key without a value is ignored.
//
//	definition.Pairs("name", "Home", "inLanguage", "fr-FR")
func Pairs(kv ...any) *Tree {
	t := New()
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		t.put(k, normalize(kv[i+1]))
	}
	return t
}

// FromMap converts a map into a tree. Keys are sorted at every level.
func FromMap(m map[string]any) *Tree {
	t := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.put(k, normalize(m[k]))
	}
	return t
}

// Set stores v at the dotted path, creating intermediate mappings as needed.
// Segments that exist but do not hold a mapping are replaced by one.
func (t *Tree) Set(path string, v any) *Tree {
	segments := strings.Split(path, Separator)
	node := t
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node.values[seg].(*Tree)
		if !ok {
			child = New()
			node.put(seg, child)
		}
		node = child
	}
	node.put(segments[len(segments)-1], normalize(v))
	return t
}

// Lookup returns the value at path and whether it exists.
func (t *Tree) Lookup(path string) (any, bool) {
	node := t
	segments := strings.Split(path, Separator)
	for i, seg := range segments {
		v, ok := node.values[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		child, ok := v.(*Tree)
		if !ok {
			return nil, false
		}
		node = child
	}
	return nil, false
}

// Get returns the value at path, or def when the path is missing.
func (t *Tree) Get(path string, def any) any {
	if v, ok := t.Lookup(path); ok {
		return v
	}
	return def
}

// Has reports whether path resolves to a value.
func (t *Tree) Has(path string) bool {
	_, ok := t.Lookup(path)
	return ok
}

// String returns the scalar at path as text.
// Returns "" when the path is missing or holds a mapping or sequence.
func (t *Tree) String(path string) string {
	v, ok := t.Lookup(path)
	if !ok {
		return ""
	}
	return Text(v)
}

// Sub returns the mapping at path.
func (t *Tree) Sub(path string) (*Tree, bool) {
	v, ok := t.Lookup(path)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Tree)
	return sub, ok
}

// Remove deletes the value at path. Nothing happens when any segment is missing.
func (t *Tree) Remove(path string) *Tree {
	segments := strings.Split(path, Separator)
	node := t
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node.values[seg].(*Tree)
		if !ok {
			return t
		}
		node = child
	}
	node.delete(segments[len(segments)-1])
	return t
}

// HasKey reports whether k is a top-level key. Dots in k are not path separators.
func (t *Tree) HasKey(k string) bool {
	_, ok := t.values[k]
	return ok
}

// Keys returns the top-level keys in insertion order.
func (t *Tree) Keys() []string {
	return slices.Clone(t.keys)
}

// Len returns the number of top-level keys.
func (t *Tree) Len() int {
	return len(t.keys)
}

// All iterates over top-level entries in insertion order.
func (t *Tree) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Subset returns a tree holding the requested top-level keys in request order.
// Keys absent from t are skipped. Nested values are shared, not copied.
func (t *Tree) Subset(keys []string) *Tree {
	out := New()
	for _, k := range keys {
		if v, ok := t.values[k]; ok {
			out.put(k, v)
		}
	}
	return out
}

// Clone returns a deep copy. Nested trees and lists are copied, scalars shared.
func (t *Tree) Clone() *Tree {
	out := &Tree{values: make(map[string]any, len(t.values)), keys: slices.Clone(t.keys)}
	for k, v := range t.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Tree:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

func (t *Tree) put(k string, v any) {
	if _, exists := t.values[k]; !exists {
		t.keys = append(t.keys, k)
	}
	t.values[k] = v
}

func (t *Tree) delete(k string) {
	if _, exists := t.values[k]; !exists {
		return
	}
	delete(t.values, k)
	t.keys = slices.DeleteFunc(t.keys, func(s string) bool { return s == k })
}

// normalize converts plain Go containers into tree values. Any map keyed by
// strings becomes a *Tree and any slice or array becomes []any, so typed
// collections such as []map[string]string or []*Tree are walked like
// their untyped forms. Byte slices stay as they are.
func normalize(v any) any {
	switch x := v.(type) {
	case nil, *Tree, []byte, string, bool:
		return v
	case map[string]any:
		return FromMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			m[it.Key().String()] = it.Value().Interface()
		}
		return FromMap(m)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	}
	return v
}
