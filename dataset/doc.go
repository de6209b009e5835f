// SPDX-License-Identifier: MIT

// Package dataset moves numeric tables between CSV text and matrix.Dense.
//
// Input format: the first line is a header and is discarded; every further
// non-blank line holds the same number of comma-separated decimal values.
// Fields are trimmed; NaN and ±Inf are rejected.
//
//	a,b
//	0,0
//	2,0
//
// Failures are *ParseError values (line, column, offending field) that match
// ErrParse plus a specific cause: ErrNotNumber, ErrNotFinite, ErrRaggedRow or
// ErrNoData. A missing path yields ErrFileNotFound.
//
// WriteCSV emits values with the shortest representation that parses back
// to the same float64, and Random draws uniform [0,1) data from a seed.
package dataset
