package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/worldpref/codec/bitstring"
	"github.com/katalvlaran/worldpref/parser"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// ErrUnknownEdit is returned by Apply for a nil Edit.
var ErrUnknownEdit = errors.New("session: unknown edit")

// Edit is one user action. The set of edits is closed.
type Edit interface {
	apply(State) (State, error)
	name() string
}

// SetSignature replaces the signature and resets to its initial preference.
type SetSignature struct {
	Signature signature.Signature
}

// SetMode switches the contiguity mode. Moving to CPO compacts away empty ranks.
type SetMode struct {
	Mode preference.Mode
}

// ToggleMode flips between CPO and TPO.
type ToggleMode struct{}

// ReplacePreference installs a preference built elsewhere. It must share the
// session signature and be valid under the session mode.
type ReplacePreference struct {
	Preference preference.WorldPreference
}

// MoveWorld relocates World to rank Target.
type MoveWorld struct {
	World  signature.World
	Target int
}

// EditText replaces the raw text of one encoding and tries to decode it.
// An empty text is kept without decoding.
type EditText struct {
	Format parser.Format
	Text   string
}

// ShowView selects the active encoding.
type ShowView struct {
	View parser.Format
}

// Apply returns the state after e. On error the returned state equals s.
// A failed decode inside EditText is not an error: it is stored in the text.
func Apply(s State, e Edit) (State, error) {
	if e == nil {
		return s, ErrUnknownEdit
	}
	next, err := e.apply(s)
	if err != nil {
		return s, err
	}

	return next, nil
}

func (e SetSignature) name() string { return "set_signature" }

func (e SetSignature) apply(s State) (State, error) {
	return NewStateView(e.Signature, s.Mode, s.View)
}

func (e SetMode) name() string { return "set_mode" }

func (e SetMode) apply(s State) (State, error) {
	if e.Mode != preference.CPO && e.Mode != preference.TPO {
		return s, fmt.Errorf("session: unknown mode %v", e.Mode)
	}
	s.Mode = e.Mode
	if e.Mode.AllowsEmptyRanks() || !s.Preference.HasEmptyRanks() {
		return s, nil
	}

	return s.withPreference(s.Preference.Compact())
}

func (ToggleMode) name() string { return "toggle_mode" }

func (ToggleMode) apply(s State) (State, error) {
	if s.Mode == preference.TPO {
		return SetMode{Mode: preference.CPO}.apply(s)
	}

	return SetMode{Mode: preference.TPO}.apply(s)
}

func (e ReplacePreference) name() string { return "replace_preference" }

func (e ReplacePreference) apply(s State) (State, error) {
	p := e.Preference
	if !p.Signature().Equal(s.Signature) {
		return s, preference.Violationf("session: preference over %s, session over %s",
			p.Signature(), s.Signature)
	}
	if err := p.Validate(s.Mode); err != nil {
		return s, err
	}

	return s.withPreference(p)
}

func (e MoveWorld) name() string { return "move_world" }

func (e MoveWorld) apply(s State) (State, error) {
	p, err := preference.MoveWorld(s.Preference, e.World, e.Target, s.Mode)
	if err != nil {
		return s, err
	}

	return s.withPreference(p)
}

func (e EditText) name() string { return "edit_text" }

func (e EditText) apply(s State) (State, error) {
	if !validFormat(e.Format) {
		return s, fmt.Errorf("session: unknown format %v", e.Format)
	}
	if strings.TrimSpace(e.Text) == "" {
		s.Texts[e.Format] = Text{Raw: e.Text}
		return s, nil
	}

	p, err := decodeText(s, e.Format, e.Text)
	if err != nil {
		s.Texts[e.Format] = Text{Raw: e.Text, Err: err.Error()}
		return s, nil
	}

	return s.withPreference(p)
}

func decodeText(s State, format parser.Format, text string) (preference.WorldPreference, error) {
	data := []byte(text)
	if format.Binary() {
		b, err := bitstring.Parse(text)
		if err != nil {
			return preference.WorldPreference{}, err
		}
		data = b
	}

	return parser.New(s.Signature, s.Mode).Parse(format, data)
}

func (e ShowView) name() string { return "show_view" }

func (e ShowView) apply(s State) (State, error) {
	if !validFormat(e.View) {
		return s, fmt.Errorf("session: unknown view %v", e.View)
	}
	s.View = e.View

	return s, nil
}
