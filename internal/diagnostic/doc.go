// Package diagnostic reports whether type expressions can be parsed by an
// engine, with "did you mean" suggestions for unknown type names.
//
// Codes:
//   - unresolvable-type: the expression names no known type
//   - no-parser: no strategy can produce the type
//   - missing-type-args: a container needs element types to parse
//   - raw-collection: a collection without element type parses strings
//   - supported: the type can be parsed
package diagnostic
