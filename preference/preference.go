// SPDX-License-Identifier: MIT
//
// File: preference.go
// Role: Constructors and the MoveWorld transition for WorldPreference.
// Policy:
//   - Every constructor validates under an explicit Mode and returns a typed *Error.
//   - Inputs are copied; results are immutable and in normal form (last rank non-empty).
//   - Rank counts are bounded by RankLimit before any rank list is allocated.

package preference

import (
	"sort"

	"github.com/katalvlaran/worldpref/signature"
)

// Initial returns the one-rank preference holding every world of sig
// (all worlds equally preferred). The zero Signature yields the zero value.
// Complexity: O(2^n).
func Initial(sig signature.Signature) WorldPreference {
	if sig.IsZero() {
		return WorldPreference{}
	}

	return WorldPreference{
		sig:    sig,
		ranks:  [][]signature.World{sig.Worlds()},
		rankOf: make([]int, sig.WorldCount()),
	}
}

// New builds a preference from explicit ranks and validates it under mode.
//
// Implementation:
//   - Stage 1: Copy every rank, recording the rank of each world and rejecting
//     out-of-range or repeated worlds on first sight.
//   - Stage 2: Sort each rank ascending and check every world was placed.
//   - Stage 3: Trim trailing empty ranks, then apply RankLimit and the mode rule.
//
// Behavior highlights:
//   - The caller's slices are never retained or mutated.
//   - Trailing empty ranks are unobservable in every encoding, so they vanish.
//
// Errors:
//   - ErrInvariantViolation for a world out of range (cause ErrWorldOutOfRange),
//     a world listed twice or missing, no ranks at all, too many ranks, or an
//     empty rank under CPO.
//
// Complexity: O(2^n log 2^n).
func New(sig signature.Signature, ranks [][]signature.World, mode Mode) (WorldPreference, error) {
	if sig.IsZero() {
		return WorldPreference{}, Wrap(ErrInvariantViolation, signature.ErrEmptySignature, "no signature")
	}
	n := sig.WorldCount()
	rankOf := make([]int, n)
	for i := range rankOf {
		rankOf[i] = -1
	}
	copied := make([][]signature.World, len(ranks))
	for r, rank := range ranks {
		copied[r] = make([]signature.World, len(rank))
		for j, w := range rank {
			if !sig.Contains(w) {
				return WorldPreference{}, Wrap(ErrInvariantViolation, signature.ErrWorldOutOfRange,
					"world %d in rank %d is outside [0, %d)", w, r, n)
			}
			if prev := rankOf[w]; prev >= 0 {
				return WorldPreference{}, Violationf("world %d appears in ranks %d and %d", w, prev, r)
			}
			rankOf[w] = r
			copied[r][j] = w
		}
		sort.Slice(copied[r], func(a, b int) bool { return copied[r][a] < copied[r][b] })
	}
	for w, r := range rankOf {
		if r < 0 {
			return WorldPreference{}, Violationf("world %d is not in any rank", w)
		}
	}

	return assemble(sig, copied, rankOf, mode)
}

// FromRankIndices builds a preference from a per-world rank index list,
// idx[w] being the rank of world w. len(idx) must equal 2^n.
// Complexity: O(2^n).
func FromRankIndices(sig signature.Signature, idx []int, mode Mode) (WorldPreference, error) {
	if sig.IsZero() {
		return WorldPreference{}, Wrap(ErrInvariantViolation, signature.ErrEmptySignature, "no signature")
	}
	if len(idx) != sig.WorldCount() {
		return WorldPreference{}, Violationf("got %d rank indices for %d worlds", len(idx), sig.WorldCount())
	}
	k := 0
	limit := RankLimit(sig, mode)
	for w, r := range idx {
		if r < 0 {
			return WorldPreference{}, Violationf("world %d has negative rank %d", w, r)
		}
		if r >= limit {
			return WorldPreference{}, Violationf("world %d has rank %d, beyond the %d ranks allowed (%s)",
				w, r, limit, mode)
		}
		if r+1 > k {
			k = r + 1
		}
	}
	ranks := make([][]signature.World, k)
	rankOf := make([]int, len(idx))
	for w, r := range idx {
		ranks[r] = append(ranks[r], signature.World(w))
		rankOf[w] = r
	}

	return assemble(sig, ranks, rankOf, mode)
}

// MoveWorld relocates w to rank target, extending the rank list when target
// is past the last rank. p is unchanged.
//
// Implementation:
//   - Stage 1: Validate w and target; under CPO a target more than one past the
//     last rank is a guaranteed gap and fails before anything is allocated.
//   - Stage 2: Build the new rank list, sharing untouched ranks with p.
//   - Stage 3: Trim trailing empty ranks and apply the mode rule.
//
// Behavior highlights:
//   - Under CPO a rank left empty (other than a trailing one) is rejected;
//     under TPO it is kept.
//   - Moving w to its own rank returns p after validating it under mode.
//
// Errors:
//   - ErrInvariantViolation for the zero preference, a world out of range,
//     a negative target, a target at or past RankLimit, or a CPO gap.
//
// Complexity: O(2^n + target).
func MoveWorld(p WorldPreference, w signature.World, target int, mode Mode) (WorldPreference, error) {
	if p.IsZero() {
		return WorldPreference{}, Violationf("cannot move world %d in an empty preference", w)
	}
	if !p.sig.Contains(w) {
		return WorldPreference{}, Wrap(ErrInvariantViolation, signature.ErrWorldOutOfRange,
			"world %d is outside [0, %d)", w, p.sig.WorldCount())
	}
	if target < 0 {
		return WorldPreference{}, Violationf("target rank %d is negative", target)
	}
	if !mode.AllowsEmptyRanks() && target > len(p.ranks) {
		return WorldPreference{}, Violationf("target rank %d leaves ranks %d..%d empty (%s)",
			target, len(p.ranks), target-1, mode)
	}
	if limit := RankLimit(p.sig, mode); target >= limit {
		return WorldPreference{}, Violationf("target rank %d is beyond the %d ranks allowed (%s)",
			target, limit, mode)
	}
	src := p.rankOf[w]
	if src == target {
		if err := p.Validate(mode); err != nil {
			return WorldPreference{}, err
		}
		return p, nil
	}

	size := len(p.ranks)
	if target >= size {
		size = target + 1
	}
	ranks := make([][]signature.World, size)
	for r := range ranks {
		var old []signature.World
		if r < len(p.ranks) {
			old = p.ranks[r]
		}
		switch r {
		case src:
			ranks[r] = make([]signature.World, 0, len(old)-1)
			for _, x := range old {
				if x != w {
					ranks[r] = append(ranks[r], x)
				}
			}
		case target:
			ranks[r] = insertSorted(old, w)
		default:
			ranks[r] = old // ranks are never mutated, sharing is safe
		}
	}
	rankOf := make([]int, len(p.rankOf))
	copy(rankOf, p.rankOf)
	rankOf[w] = target

	moved, err := assemble(p.sig, ranks, rankOf, mode)
	if err != nil {
		return WorldPreference{}, Wrap(ErrInvariantViolation, err,
			"moving world %d from rank %d to rank %d: %s", w, src, target, errMsg(err))
	}

	return moved, nil
}

// RankCount returns the number of ranks k of p.
func RankCount(p WorldPreference) int { return p.RankCount() }

// WorldsInRank returns a copy of the worlds in rank i of p.
func WorldsInRank(p WorldPreference, i int) []signature.World { return p.WorldsInRank(i) }

// assemble trims trailing empty ranks, applies the mode rule and returns the
// value. ranks and rankOf are owned by the result from here on.
func assemble(sig signature.Signature, ranks [][]signature.World, rankOf []int, mode Mode) (WorldPreference, error) {
	for len(ranks) > 0 && len(ranks[len(ranks)-1]) == 0 {
		ranks = ranks[:len(ranks)-1]
	}
	if len(ranks) == 0 {
		return WorldPreference{}, Violationf("preference has no ranks")
	}
	if limit := RankLimit(sig, mode); len(ranks) > limit {
		return WorldPreference{}, Violationf("%d ranks exceed the %d allowed (%s)", len(ranks), limit, mode)
	}
	p := WorldPreference{sig: sig, ranks: ranks, rankOf: rankOf}
	if err := p.checkMode(mode); err != nil {
		return WorldPreference{}, err
	}

	return p, nil
}

// insertSorted returns a new slice holding rank plus w in ascending order.
func insertSorted(rank []signature.World, w signature.World) []signature.World {
	out := make([]signature.World, 0, len(rank)+1)
	i := sort.Search(len(rank), func(i int) bool { return rank[i] >= w })
	out = append(out, rank[:i]...)
	out = append(out, w)

	return append(out, rank[i:]...)
}

// errMsg strips the kind prefix from our own errors for message composition.
func errMsg(err error) string {
	if e, ok := err.(*Error); ok && e.Msg != "" {
		return e.Msg
	}

	return err.Error()
}
