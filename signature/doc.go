// Package signature defines propositional variables, signatures and the
// canonical enumeration of worlds over a signature.
//
// 🚀 What is a world?
//
//	A world is one total truth assignment over a signature. Worlds are values:
//	every world over an n-variable signature is identified by an integer in
//	[0, 2^n), and that integer is the only representation the codecs exchange.
//
// ✨ Bit-order contract:
//
//   - bit i of a World (LSB = bit 0) is the truth value of Variables()[i]
//   - for {a}:   0 = {!a}, 1 = {a}
//   - for {a,b}: 0 = {!a, !b}, 1 = {a, !b}, 2 = {!a, b}, 3 = {a, b}
//   - Index and Assignment are mutually inverse over [0, 2^n)
//
// The contract is shared by every codec in this module, so encodings produced
// by one build are readable by any other that agrees on the variable order.
//
// ⚙️ Usage:
//
//	sig, err := signature.New("a", "b")
//	w, err := sig.Index(map[signature.Variable]bool{"a": true, "b": false}) // 1
//	asg, err := sig.Assignment(3)                                         // {a, b}
//
// Errors:
//
//   - ErrEmptySignature, ErrDuplicateVariable, ErrInvalidVariable, ErrTooManyVariables
//   - ErrWorldOutOfRange, ErrUnknownVariable, ErrIncompleteAssignment
package signature
