// SPDX-License-Identifier: MIT
//
// File: ranklist.go
// Role: Ranklist codec: one ceil(log2 k)-bit rank index per world.
// Policy:
//   - Candidate widths are tried narrowest first; shape rejects rank below partition errors.
//   - Rank indices are checked against preference.RankLimit before any rank list is built.

package ranklist

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/worldpref/codec/bitio"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// errImplausible marks candidate widths rejected on shape alone (padding or
// canonical width); their errors are reported only if nothing better exists.
var errImplausible = errors.New("ranklist: implausible width")

// Width returns the field width for k ranks: ceil(log2(k)), at least 1.
func Width(k int) int {
	if k <= 2 {
		return 1
	}

	return bits.Len(uint(k - 1))
}

// Encode returns the ranklist bytes of p.
// Only the zero WorldPreference is rejected.
// Complexity: O(2^n · w).
func Encode(p preference.WorldPreference) ([]byte, error) {
	if p.IsZero() {
		return nil, preference.Violationf("ranklist: cannot encode an empty preference")
	}
	width := Width(p.RankCount())
	idx := p.RankIndices()
	w := bitio.NewWriter(len(idx) * width)
	for _, r := range idx {
		w.WriteBits(uint64(r), width)
	}

	return w.Bytes(), nil
}

// Decode reconstructs a preference over sig from ranklist bytes and validates
// it under mode. It never returns a partial model.
//
// Implementation:
//   - Stage 1: List the widths w whose 2^n·w bits round up to len(data) bytes,
//     or use the single width of WithRankCount.
//   - Stage 2: For each width, narrowest first, read 2^n fields and check zero
//     padding, the rank limit and that w is canonical for the decoded k.
//   - Stage 3: Build the model from the first width that passes.
//
// Behavior highlights:
//   - For 3 or more variables a single width fits; below that a buffer may
//     read at two widths and the narrowest wins unless WithRankCount pins it.
//   - A rank index at or past preference.RankLimit fails before the rank list
//     is allocated.
//
// Errors:
//   - ErrNoData (a MalformedInput) for an empty buffer or one too short for a
//     single field per world.
//   - ErrMalformedInput for a length matching no width, nonzero padding, a
//     non-canonical width, or a TPO rank index past the limit.
//   - ErrInvariantViolation for a gap under CPO, a CPO rank index past 2^n, or
//     a rank count other than the pinned one.
//
// Complexity: O(c · 2^n · w) for c candidate widths (c = 1 when n >= 3).
func Decode(data []byte, sig signature.Signature, mode preference.Mode, opts ...Option) (preference.WorldPreference, error) {
	if sig.IsZero() {
		return preference.WorldPreference{}, preference.Wrap(preference.ErrInvariantViolation,
			signature.ErrEmptySignature, "ranklist: no signature")
	}
	if len(data) == 0 {
		return preference.WorldPreference{}, preference.NoDataf("ranklist: empty buffer")
	}
	o := gatherOptions(opts)
	n := sig.WorldCount()
	maxWidth := len(data) * 8 / n
	if maxWidth == 0 {
		return preference.WorldPreference{}, preference.NoDataf(
			"ranklist: %d bits cannot hold one field per world for %d worlds", len(data)*8, n)
	}

	candidates := candidateWidths(len(data), n, maxWidth)
	if o.rankCount > 0 {
		w := Width(o.rankCount)
		if bitio.ByteLen(n*w) != len(data) {
			return preference.WorldPreference{}, preference.Malformedf(
				"ranklist: %d bytes do not match %d worlds at %d bits for %d ranks (want %d bytes)",
				len(data), n, w, o.rankCount, bitio.ByteLen(n*w))
		}
		candidates = []int{w}
	}
	if len(candidates) == 0 {
		return preference.WorldPreference{}, preference.Malformedf(
			"ranklist: %d bytes are not a whole number of fields for %d worlds", len(data), n)
	}

	var firstErr, plausibleErr error
	for _, w := range candidates {
		p, err := decodeWidth(data, sig, mode, n, w, o.rankCount)
		if err == nil {
			return p, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		if plausibleErr == nil && !errors.Is(err, errImplausible) {
			plausibleErr = err
		}
	}
	if plausibleErr != nil {
		return preference.WorldPreference{}, plausibleErr
	}

	return preference.WorldPreference{}, firstErr
}

// candidateWidths lists widths 1..maxWidth whose encoding takes exactly size bytes.
func candidateWidths(size, n, maxWidth int) []int {
	if maxWidth > 64 {
		maxWidth = 64
	}
	var out []int
	for w := 1; w <= maxWidth; w++ {
		if bitio.ByteLen(n*w) == size {
			out = append(out, w)
		}
	}

	return out
}

// decodeWidth reads n fields of width w and builds the preference.
func decodeWidth(data []byte, sig signature.Signature, mode preference.Mode, n, w, rankCount int) (preference.WorldPreference, error) {
	r := bitio.NewReader(data)
	idx := make([]int, n)
	var top uint64
	for i := range idx {
		v, err := r.ReadBits(w)
		if err != nil {
			return preference.WorldPreference{}, preference.Wrap(preference.ErrMalformedInput, err,
				"ranklist: field %d at width %d", i, w)
		}
		if v > top {
			top = v
		}
		idx[i] = int(v) // only read once top is known to be in range
	}
	if !r.ZeroFrom(r.Pos()) {
		return preference.WorldPreference{}, preference.Wrap(preference.ErrMalformedInput, errImplausible,
			"ranklist: nonzero padding after %d fields of %d bits", n, w)
	}
	if limit := uint64(preference.RankLimit(sig, mode)); top >= limit {
		return preference.WorldPreference{}, rankOutOfRange(mode, top, limit, w)
	}
	k := int(top) + 1
	if rankCount > 0 {
		if k != rankCount {
			return preference.WorldPreference{}, preference.Violationf(
				"ranklist: highest rank index %d does not match %d ranks", top, rankCount)
		}
	} else if Width(k) != w {
		return preference.WorldPreference{}, preference.Wrap(preference.ErrMalformedInput, errImplausible,
			"ranklist: width %d is not canonical for %d ranks (want %d)", w, k, Width(k))
	}

	return preference.FromRankIndices(sig, idx, mode)
}

// rankOutOfRange reports a field naming a rank past RankLimit. Under CPO that
// many ranks cannot all hold a world; under TPO the field is simply too large.
func rankOutOfRange(mode preference.Mode, top, limit uint64, w int) error {
	if mode.AllowsEmptyRanks() {
		return preference.Malformedf("ranklist: rank index %d at width %d is beyond the %d ranks allowed",
			top, w, limit)
	}

	return preference.Violationf("ranklist: rank index %d at width %d, but %s allows at most %d ranks",
		top, w, mode, limit)
}
