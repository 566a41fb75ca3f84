// SPDX-License-Identifier: MIT
//
// File: jsoncodec.go
// Role: JSON codec: {"signature":[...],"ranks":[[...],...]}.
// Policy:
//   - Syntax and type failures are MalformedInput; partition failures are InvariantViolation.
//   - Unknown fields, trailing data and duplicate assignment keys are rejected.

package jsoncodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// document is the canonical wire shape.
type document struct {
	Signature []signature.Variable `json:"signature"`
	Ranks     [][]signature.World  `json:"ranks"`
}

// inbound is the lenient decode shape; worlds stay raw until the signature is known.
type inbound struct {
	Signature []signature.Variable `json:"signature"`
	Ranks     []json.RawMessage    `json:"ranks"`
}

// Encode returns the JSON text of p. Only the zero WorldPreference is rejected.
// Complexity: O(2^n).
func Encode(p preference.WorldPreference, opts ...Option) ([]byte, error) {
	if p.IsZero() {
		return nil, preference.Violationf("json: cannot encode an empty preference")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	doc := document{Signature: p.Signature().Variables(), Ranks: p.Ranks()}
	if o.indent != "" {
		return json.MarshalIndent(doc, "", o.indent)
	}

	return json.Marshal(doc)
}

// Decode parses JSON text into a preference over sig and validates it under
// mode. It never returns a partial model.
//
// Behavior highlights:
//   - Accepts the object form (signature optional) or a bare rank array.
//   - Each world is an integer index or an assignment object {"a":true,...}.
//
// Errors:
//   - ErrNoData for blank input.
//   - ErrMalformedInput for syntax or type errors, unknown fields, trailing
//     data, null ranks, non-integer worlds and duplicate assignment keys.
//   - ErrInvariantViolation for a signature other than sig, out-of-range or
//     incomplete worlds, and partition failures.
//
// Complexity: O(len(data) + 2^n).
func Decode(data []byte, sig signature.Signature, mode preference.Mode) (preference.WorldPreference, error) {
	if sig.IsZero() {
		return preference.WorldPreference{}, preference.Wrap(preference.ErrInvariantViolation,
			signature.ErrEmptySignature, "json: no signature")
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return preference.WorldPreference{}, preference.NoDataf("json: empty input")
	}

	var in inbound
	switch trimmed[0] {
	case '[':
		if err := decodeStrict(trimmed, &in.Ranks); err != nil {
			return preference.WorldPreference{}, err
		}
	case '{':
		if err := decodeStrict(trimmed, &in); err != nil {
			return preference.WorldPreference{}, err
		}
		if in.Ranks == nil {
			return preference.WorldPreference{}, preference.Malformedf(`json: missing "ranks" array`)
		}
		if in.Signature != nil {
			got, err := signature.New(in.Signature...)
			if err != nil {
				return preference.WorldPreference{}, preference.Wrap(preference.ErrMalformedInput, err,
					"json: invalid signature: %v", err)
			}
			if !got.Equal(sig) {
				return preference.WorldPreference{}, preference.Violationf(
					"json: document signature %s does not match %s", got, sig)
			}
		}
	default:
		return preference.WorldPreference{}, preference.Malformedf(
			"json: expected an object or an array, found %q", trimmed[0])
	}

	ranks := make([][]signature.World, len(in.Ranks))
	for r, raw := range in.Ranks {
		members, err := decodeRank(raw, sig, r)
		if err != nil {
			return preference.WorldPreference{}, err
		}
		ranks[r] = members
	}

	return preference.New(sig, ranks, mode)
}

// decodeStrict unmarshals exactly one JSON value, rejecting unknown fields
// and trailing data.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return syntaxError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return preference.Malformedf("json: unexpected data after the top-level value")
	}

	return nil
}

// decodeRank reads one rank: an array of integer worlds or assignment objects.
func decodeRank(raw json.RawMessage, sig signature.Signature, r int) ([]signature.World, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, preference.Malformedf("json: rank %d is null", r)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, preference.Wrap(preference.ErrMalformedInput, err, "json: rank %d is not an array", r)
	}
	out := make([]signature.World, 0, len(items))
	for i, item := range items {
		w, err := decodeWorld(item, sig)
		if err != nil {
			return nil, withPosition(err, r, i)
		}
		out = append(out, w)
	}

	return out, nil
}

// decodeWorld reads an integer index or an assignment object.
func decodeWorld(raw json.RawMessage, sig signature.Signature) (signature.World, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		asg, err := decodeAssignment(raw)
		if err != nil {
			return 0, err
		}
		w, err := sig.Index(asg)
		if err != nil {
			return 0, preference.Wrap(preference.ErrInvariantViolation, err, "%v", err)
		}
		return w, nil
	}
	v, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, preference.Malformedf("world %s must be a non-negative integer or an assignment object", raw)
	}
	if !sig.Contains(signature.World(v)) {
		return 0, preference.Wrap(preference.ErrInvariantViolation, signature.ErrWorldOutOfRange,
			"world %d is outside [0, %d)", v, sig.WorldCount())
	}

	return signature.World(v), nil
}

// decodeAssignment walks an assignment object token by token so a variable
// named twice is rejected rather than silently overwritten.
func decodeAssignment(raw json.RawMessage) (map[signature.Variable]bool, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, preference.Wrap(preference.ErrMalformedInput, err, "assignment must map variables to booleans")
	}
	asg := make(map[signature.Variable]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, preference.Wrap(preference.ErrMalformedInput, err, "assignment must map variables to booleans")
		}
		v := signature.Variable(tok.(string)) // object keys are always strings
		var val bool
		if err := dec.Decode(&val); err != nil {
			return nil, preference.Wrap(preference.ErrMalformedInput, err,
				"assignment value for %q must be a boolean", string(v))
		}
		if _, dup := asg[v]; dup {
			return nil, preference.Wrap(preference.ErrMalformedInput, signature.ErrDuplicateVariable,
				"assignment names %q twice", string(v))
		}
		asg[v] = val
	}

	return asg, nil
}

// withPosition prefixes a world-level error with its rank and item position.
func withPosition(err error, r, i int) error {
	var perr *preference.Error
	if errors.As(err, &perr) {
		return &preference.Error{Kind: perr.Kind, Cause: perr.Cause,
			Msg: "json: rank " + strconv.Itoa(r) + " item " + strconv.Itoa(i) + ": " + perr.Msg}
	}

	return err
}

// syntaxError converts encoding/json failures into MalformedInput errors
// that carry the byte offset when one is known.
func syntaxError(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return preference.Wrap(preference.ErrMalformedInput, err, "json: %v (at offset %d)", se, se.Offset)
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return preference.Wrap(preference.ErrMalformedInput, err, "json: %v (at offset %d)", te, te.Offset)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return preference.Wrap(preference.ErrMalformedInput, err, "json: unexpected end of input")
	}

	return preference.Wrap(preference.ErrMalformedInput, err, "json: %v", err)
}
