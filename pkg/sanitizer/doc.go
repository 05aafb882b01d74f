// Package sanitizer turns untrusted markup into plain text with bluemonday.
//
// Document metadata such as descriptions is frequently authored as rich text
// but must be emitted inside attribute values. PlainText strips every element,
// decodes entities and collapses whitespace; the caller escapes the result
// exactly once when writing the attribute.
package sanitizer
