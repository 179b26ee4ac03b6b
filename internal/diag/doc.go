// Package diag defines the error model shared by the parsing stages.
//
// Every failure detected while reading declarations is an *Error carrying a
// Code, the span of the offending text and the raw text itself. Codes are
// grouped by range:
//
//   - 1xxx (TYP): type tokens, e.g. UnknownType for "f16".
//   - 2xxx (SYN): declaration structure, e.g. MalformedLine when the "]"
//     separator is missing.
//
// Parsing normally stops at the first *Error. Bag exists for tools that want
// to list every problem in one pass.
//
// Package diag does no formatting beyond Error(); colored rendering lives in
// internal/diagfmt.
package diag
