// Package diagfmt renders diag.Error values for terminals.
package diagfmt
