package session

import (
	"fmt"

	"github.com/katalvlaran/worldpref/codec/bitstring"
	"github.com/katalvlaran/worldpref/parser"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// Text is one rendered encoding as the user sees it.
// Err holds the last decode failure for Raw, empty when Raw is current.
type Text struct {
	Raw string
	Err string
}

// State is an immutable snapshot of a session.
type State struct {
	Signature  signature.Signature
	Preference preference.WorldPreference
	Mode       preference.Mode
	Texts      [3]Text // indexed by parser.Format
	View       parser.Format
}

// NewState returns the initial state over sig: one rank holding every world,
// JSON view, all texts rendered.
func NewState(sig signature.Signature, mode preference.Mode) (State, error) {
	if sig.IsZero() {
		return State{}, fmt.Errorf("session: %w", signature.ErrEmptySignature)
	}
	st := State{Signature: sig, Mode: mode, View: parser.JSON}

	return st.withPreference(preference.Initial(sig))
}

// NewStateView is NewState with an explicit active view.
func NewStateView(sig signature.Signature, mode preference.Mode, view parser.Format) (State, error) {
	st, err := NewState(sig, mode)
	if err != nil {
		return State{}, err
	}
	if validFormat(view) {
		st.View = view
	}

	return st, nil
}

// Text returns the rendered text for format.
func (s State) Text(format parser.Format) Text {
	if !validFormat(format) {
		return Text{}
	}

	return s.Texts[format]
}

// Current returns the text of the active view.
func (s State) Current() Text { return s.Text(s.View) }

// withPreference installs p and re-renders every text, clearing errors.
func (s State) withPreference(p preference.WorldPreference) (State, error) {
	var texts [3]Text
	for _, f := range parser.Formats {
		b, err := parser.Encode(p, f)
		if err != nil {
			return s, fmt.Errorf("session: render %s: %w", f, err)
		}
		if f.Binary() {
			texts[f] = Text{Raw: bitstring.Format(b)}
		} else {
			texts[f] = Text{Raw: string(b)}
		}
	}
	s.Preference = p
	s.Texts = texts

	return s, nil
}

func validFormat(f parser.Format) bool {
	return f >= parser.JSON && f <= parser.Ranklist
}
