// Package session models a preference editing session as pure transitions.
//
// A State carries the signature, the current preference, the contiguity mode
// and one rendered Text per encoding. Edits are applied with Apply, which
// returns a new State and never mutates its input:
//
//	st, _ := session.NewState(sig, preference.CPO)
//	st, err := session.Apply(st, session.MoveWorld{World: 3, Target: 1})
//
// Text edits that fail to decode keep the previous preference and store the
// decoder message beside the raw text. Any edit that changes the preference
// re-renders all three texts.
//
// Session wraps a State for interactive use: it serializes edits, logs
// through zap and notifies Observers when the preference changes.
package session
