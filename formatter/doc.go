// Package formatter turns message values and levels into printable text.
//
// FormatValue applies a fixed precedence to each value: errors first
// (stack trace when one was captured, otherwise the message), then
// object-like values (structs, maps, slices, arrays, pointers) as
// 2-space indented JSON, then everything else through fmt. Encoding
// failures, including cycles, fall back to a plain string and are never
// reported to the caller. Join combines the formatted values with single
// spaces using a pooled bytes.Buffer.
//
// Label and Bracket return precomputed level tags. LabelStyle carries the
// background and text colors of a label and renders them as the CSS
// declaration list understood by browser consoles.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
