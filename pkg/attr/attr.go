package attr

import (
	"slices"
	"sort"
)

// Attr is a single attribute name/value pair.
type Attr struct {
	Value any
	Key   string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// FromMap converts a map into Attrs with keys sorted for deterministic output.
func FromMap(m map[string]any) Attrs {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Attrs, 0, len(keys))
	for _, k := range keys {
		out = append(out, Attr{Key: k, Value: m[k]})
	}
	return out
}

// Get returns the value of the first attribute with the given key.
func (a Attrs) Get(key string) (any, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Value, true
		}
	}
	return nil, false
}

// Has reports whether the key is present, whatever its value.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// String returns the attribute value as text, or "" when absent or not textual.
func (a Attrs) String(key string) string {
	v, ok := a.Get(key)
	if !ok {
		return ""
	}
	s, _ := textValue(v)
	return s
}

// Truthy reports whether the attribute is present with a value that is not
// nil, false, zero, or an empty string.
func (a Attrs) Truthy(key string) bool {
	v, ok := a.Get(key)
	if !ok {
		return false
	}
	return truthy(v)
}

// Set replaces the value of key in place, or appends it.
// The receiver is not modified; a new slice is returned.
func (a Attrs) Set(key string, value any) Attrs {
	out := slices.Clone(a)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Key: key, Value: value})
}

// Without returns a copy of the list with the given keys removed.
func (a Attrs) Without(keys ...string) Attrs {
	out := make(Attrs, 0, len(a))
	for _, at := range a {
		if slices.Contains(keys, at.Key) {
			continue
		}
		out = append(out, at)
	}
	return out
}

// Merge overlays over onto base. Keys from base keep their position, keys only
// present in over are appended in their own order.
func Merge(base, over Attrs) Attrs {
	out := slices.Clone(base)
	for _, at := range over {
		out = out.Set(at.Key, at.Value)
	}
	return out
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	}
	return true
}
