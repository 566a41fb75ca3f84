// Package worldlist encodes a WorldPreference as one bitmask per rank.
//
// Layout (bit-exact):
//
//	bit r*2^n + w (MSB-first within each byte) is 1 iff world w is in rank r
//	total length: ceil(k*2^n / 8) bytes, zero-padded
//
// Decoding needs 2^n from the signature. The rank count is the index of the
// last non-empty 2^n-bit block plus one; zero blocks that fit inside the
// final byte's padding are therefore indistinguishable from padding, which is
// consistent with the model's rule that the last rank is never empty.
//
// Errors:
//
//   - ErrNoData (a MalformedInput): empty buffer, fewer than 2^n bits, or no set bit.
//   - ErrMalformedInput: byte length inconsistent with the recovered rank count.
//   - ErrInvariantViolation: a world in zero or several ranks, or a CPO gap.
package worldlist
