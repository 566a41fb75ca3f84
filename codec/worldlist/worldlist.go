// SPDX-License-Identifier: MIT
//
// File: worldlist.go
// Role: Worldlist codec: one 2^n-bit membership mask per rank.
// Policy:
//   - Decode validates length, padding and partition before returning a model.
//   - Rank count is derived from the input length, so allocation stays proportional to it.

package worldlist

import (
	"github.com/katalvlaran/worldpref/codec/bitio"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// Encode returns the worldlist bytes of p.
// Only the zero WorldPreference is rejected.
// Complexity: O(k·2^n).
func Encode(p preference.WorldPreference) ([]byte, error) {
	if p.IsZero() {
		return nil, preference.Violationf("worldlist: cannot encode an empty preference")
	}
	k := p.RankCount()
	rankOf := p.RankIndices()
	w := bitio.NewWriter(k * len(rankOf))
	for r := 0; r < k; r++ {
		for _, wr := range rankOf {
			w.WriteBit(wr == r)
		}
	}

	return w.Bytes(), nil
}

// Decode reconstructs a preference over sig from worldlist bytes and
// validates it under mode. It never returns a partial model.
//
// Implementation:
//   - Stage 1: Find the last 2^n-bit block holding a set bit; its index plus
//     one is the rank count k.
//   - Stage 2: Require len(data) == ceil(k·2^n/8), which also forces zero padding.
//   - Stage 3: Collect each rank's worlds and validate the partition under mode.
//
// Errors:
//   - ErrNoData (a MalformedInput) for an empty buffer, fewer than 2^n bits,
//     or a buffer with no bit set.
//   - ErrMalformedInput for a length that does not match k.
//   - ErrInvariantViolation for a world in no rank or several, or a CPO gap.
//
// Complexity: O(len(data)·8).
func Decode(data []byte, sig signature.Signature, mode preference.Mode) (preference.WorldPreference, error) {
	if sig.IsZero() {
		return preference.WorldPreference{}, preference.Wrap(preference.ErrInvariantViolation,
			signature.ErrEmptySignature, "worldlist: no signature")
	}
	if len(data) == 0 {
		return preference.WorldPreference{}, preference.NoDataf("worldlist: empty buffer")
	}
	n := sig.WorldCount()
	r := bitio.NewReader(data)
	blocks := r.Len() / n
	if blocks == 0 {
		return preference.WorldPreference{}, preference.NoDataf(
			"worldlist: %d bits hold no complete rank of %d worlds", r.Len(), n)
	}

	k := 0
	for b := blocks - 1; b >= 0 && k == 0; b-- {
		for w := 0; w < n; w++ {
			if r.Bit(b*n + w) {
				k = b + 1
				break
			}
		}
	}
	if k == 0 {
		return preference.WorldPreference{}, preference.NoDataf("worldlist: no world is set in any rank")
	}
	if want := bitio.ByteLen(k * n); len(data) != want {
		return preference.WorldPreference{}, preference.Malformedf(
			"worldlist: %d bytes do not match %d ranks of %d worlds (want %d bytes)", len(data), k, n, want)
	}

	ranks := make([][]signature.World, k)
	for b := 0; b < k; b++ {
		for w := 0; w < n; w++ {
			if r.Bit(b*n + w) {
				ranks[b] = append(ranks[b], signature.World(w))
			}
		}
	}
	p, err := preference.New(sig, ranks, mode)
	if err != nil {
		return preference.WorldPreference{}, err
	}

	return p, nil
}
