// Package ranklist encodes a WorldPreference as one fixed-width rank index
// per world.
//
// Layout (bit-exact):
//
//	2^n fields in canonical world order 0..2^n-1, packed MSB-first
//	field width w = ceil(log2(k)), minimum 1 bit
//	total length ceil(2^n*w / 8) bytes, zero-padded
//
// Width recovery:
//
//	The stream carries no rank count, so the decoder derives the width from
//	the byte length and 2^n. Candidate widths are the w in 1..floor(bits/2^n)
//	whose encoding occupies exactly len(data) bytes. For signatures with three
//	or more variables (2^n >= 8) exactly one candidate exists. For smaller
//	signatures several widths share a byte length; candidates are tried
//	narrowest first and the first one that has zero padding, is the canonical
//	width of the rank count it decodes to, and forms a valid partition wins.
//	Such buffers can be genuinely ambiguous; WithRankCount pins the width.
//
// Errors:
//
//   - ErrNoData (a MalformedInput): empty buffer or fewer bits than worlds.
//   - ErrMalformedInput: no consistent width, nonzero padding, non-canonical width.
//   - ErrInvariantViolation: CPO gap, or a rank count mismatch with WithRankCount.
package ranklist
