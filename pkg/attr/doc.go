// Package attr builds HTML tag strings from ordered attribute lists.
//
// Attributes are kept in an ordered slice rather than a map so that rendered
// markup is byte-for-byte reproducible. Values are escaped with templ's
// escaping primitive; attribute names are reduced to a safe charset.
//
// # Rendering
//
//	attrs := attr.Attrs{
//		{Key: "rel", Value: "preload"},
//		{Key: "href", Value: "/css/site.css"},
//		{Key: "as", Value: "style"},
//	}
//	attr.Tag("link", attrs)
//	// <link rel="preload" href="/css/site.css" as="style">
//
// # Value Rules
//
//   - nil and false: the attribute is dropped
//   - true: rendered as a bare boolean attribute
//   - strings, numbers, fmt.Stringer: rendered as text
//   - maps and slices: rendered as JSON
package attr
