// Package definition implements the structured-data tree behind an AriaML
// document: an ordered, JSON-LD-like mapping addressed with dotted paths.
//
// Keys keep their insertion order so the emitted JSON-LD is stable and reads
// the way it was declared. Nested mappings are *Tree values; plain Go maps
// handed to Set are converted on insertion with their keys sorted.
//
//	t := definition.New()
//	t.Set("name", "Product page")
//	t.Set("properties.og:type", "product")
//
//	t.Get("properties.og:type", "")   // "product"
//	t.Has("properties.og:image")      // false
//	t.Remove("properties")
//
// Missing paths never fail: Get returns the supplied default, Has reports
// false and Remove does nothing.
//
// # Serialization
//
// Encode writes pretty-printed JSON with Unicode and slashes left unescaped,
// which is the convention for inline <script type="application/ld+json">
// blocks. The only rewrite applied is "</" to "<\/", so a value can never
// close the surrounding script element.
//
// # Loading
//
// ParseJSON and ParseYAML build trees from documents while preserving key
// order. *Tree also implements yaml.Unmarshaler and json.Unmarshaler so it can
// be embedded in configuration structs.
package definition
