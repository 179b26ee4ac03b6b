// Package fuzztests houses Go fuzz harnesses for the declaration pipeline
// (types.Parse, signature parsing, layout). They guard against panics on
// arbitrary input and check that anything accepted renders back to text that
// parses to the same value.
package fuzztests
