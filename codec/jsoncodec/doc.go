// Package jsoncodec encodes a WorldPreference as JSON text.
//
// Format:
//
//	{"signature":["a","b"],"ranks":[[0,3],[],[1,2]]}
//
//   - ranks are listed from most to least preferred; empty ranks are [].
//   - worlds are canonical indices in ascending order within each rank.
//
// Decode additionally accepts:
//
//   - a bare rank array: [[0,3],[1,2]]
//   - a world written as an assignment object: {"a":true,"b":false}
//   - an omitted "signature" field; when present it must equal the bound one
//
// Errors:
//
//   - ErrNoData (a MalformedInput): empty or whitespace-only input.
//   - ErrMalformedInput: JSON syntax errors, wrong value types, unknown fields,
//     non-integer worlds, trailing data.
//   - ErrInvariantViolation: signature mismatch, worlds out of range, incomplete
//     assignments, missing or duplicated worlds, CPO gaps.
package jsoncodec
