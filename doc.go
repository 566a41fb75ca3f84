// Package worldpref models preferences over propositional worlds: total
// preorders on the truth assignments of a fixed signature, and the three
// encodings used to exchange them.
//
// The module is organized leaves first:
//
//	signature/          ordered variable sets and the world index bijection
//	preference/         the WorldPreference model, Mode (CPO/TPO), typed errors
//	codec/jsoncodec/    {"signature":[...],"ranks":[[...],...]} text encoding
//	codec/worldlist/    one 2^n-bit membership mask per rank
//	codec/ranklist/     one ceil(log2 k)-bit rank index per world
//	codec/bitio/        MSB-first bit packing shared by the binary codecs
//	codec/bitstring/    0/1 text rendering of binary encodings
//	parser/             signature-bound decoding from any encoding
//	internal/session/   pure editing transitions over a preference
//	internal/config/    prefbuilder configuration
//	cmd/prefbuilder/    command-line front end
//
// World w over signature (v0, ..., vn-1) assigns true to vi exactly when bit
// i of w is set. Every model is immutable; mutations return new values.
//
// Quick start:
//
//	sig := signature.MustNew("a", "b")
//	p := preference.Initial(sig)
//	p, _ = preference.MoveWorld(p, 3, 1, preference.CPO)
//	b, _ := worldlist.Encode(p)               // 0b11100001
//	q, _ := parser.New(sig, preference.CPO).FromBinary(b)
//	fmt.Println(q.Equal(p))                    // true
package worldpref
