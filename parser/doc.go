// Package parser binds the three preference codecs to one signature and one
// validation mode.
//
// A Factory fixes 2^n at construction: a decoder can only partition a bit
// stream once it knows the world count, so the signature is a precondition
// of parsing rather than something inferred from the input. Re-parsing
// under a different signature needs a new Factory.
//
// Every From* method returns either a fully validated WorldPreference or a
// *preference.Error; never a partially constructed model. A Factory holds no
// mutable state and is safe for concurrent use.
package parser
