package appearance

import (
	"slices"

	"github.com/ariaml/ariaml-go/pkg/attr"
)

// Ungrouped is the implicit group of declarations added without a group name.
const Ungrouped = ""

// ContentAttr is the attribute lifted out of the list into Declaration.Content.
const ContentAttr = "content"

// Declaration is one style or resource entry.
type Declaration struct {
	Content any
	Group   string
	Attrs   attr.Attrs
}

// Src returns the external resource location, if any.
func (d Declaration) Src() string {
	return d.Attrs.String("src")
}

// External reports whether the declaration points at an external resource.
func (d Declaration) External() bool {
	return d.Attrs.Has("src")
}

// Registry is an ordered collection of declarations. Not safe for concurrent use.
type Registry struct {
	groups map[string][]Declaration
	order  []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{groups: make(map[string][]Declaration)}
}

// Add appends a declaration built from attrs to group.
// A "content" attribute is moved into the declaration content.
func (r *Registry) Add(attrs attr.Attrs, group string) *Registry {
	d := Declaration{Group: group}
	if v, ok := attrs.Get(ContentAttr); ok {
		d.Content = v
		attrs = attrs.Without(ContentAttr)
	}
	d.Attrs = attrs
	return r.AddDeclaration(d)
}

// AddDeclaration appends d to its group.
func (r *Registry) AddDeclaration(d Declaration) *Registry {
	if _, ok := r.groups[d.Group]; !ok {
		r.order = append(r.order, d.Group)
	}
	r.groups[d.Group] = append(r.groups[d.Group], d)
	return r
}

// Groups returns the group identifiers in first-insertion order.
func (r *Registry) Groups() []string {
	return slices.Clone(r.order)
}

// Declarations returns the declarations of group in insertion order.
func (r *Registry) Declarations(group string) []Declaration {
	return slices.Clone(r.groups[group])
}

// HasGroup reports whether at least one declaration was added to group.
func (r *Registry) HasGroup(group string) bool {
	_, ok := r.groups[group]
	return ok
}

// Len returns the total number of declarations.
func (r *Registry) Len() int {
	n := 0
	for _, ds := range r.groups {
		n += len(ds)
	}
	return n
}

// All returns every declaration, group by group in group order.
func (r *Registry) All() []Declaration {
	out := make([]Declaration, 0, r.Len())
	for _, g := range r.order {
		out = append(out, r.groups[g]...)
	}
	return out
}
