// SPDX-License-Identifier: MIT
//
// File: bitstring.go
// Role: 0/1 text rendering of binary encodings, eight digits per byte.
// Policy:
//   - Whitespace is ignored on input; any other non-binary rune is MalformedInput.

// Package bitstring renders binary encodings as text of '0' and '1' digits,
// eight per byte, and parses such text back.
package bitstring

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/worldpref/preference"
)

// Format renders every byte of b as eight binary digits, MSB first.
func Format(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, x := range b {
		for i := 7; i >= 0; i-- {
			if x&(1<<uint(i)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// Parse reads binary digits back into bytes. Whitespace is ignored.
// Any other non-binary character, or a digit count that is not a multiple
// of 8, is an ErrMalformedInput error. Empty text yields an empty slice.
func Parse(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)/8)
	var cur byte
	digits := 0
	for i, r := range text {
		switch {
		case r == '0' || r == '1':
			cur = cur<<1 | byte(r-'0')
			digits++
			if digits%8 == 0 {
				out = append(out, cur)
				cur = 0
			}
		case unicode.IsSpace(r):
		default:
			return nil, preference.Malformedf("bitstring: non-binary character %q at offset %d", r, i)
		}
	}
	if digits%8 != 0 {
		return nil, preference.Malformedf("bitstring: %d digits is not a whole number of bytes", digits)
	}

	return out, nil
}
