// Package str implements a mutable, UTF-8-aware string value type
// with codepoint-indexed editing and a deferred-operation builder.
//
// Indices are 0-based in codepoints. Ranges are half-open: [start, end).
package str
