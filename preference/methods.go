package preference

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/worldpref/signature"
)

// IsZero reports whether p is the zero value (no signature, no ranks).
func (p WorldPreference) IsZero() bool { return len(p.ranks) == 0 }

// Signature returns the signature p ranges over.
func (p WorldPreference) Signature() signature.Signature { return p.sig }

// RankCount returns k, the number of ranks (highest non-empty index + 1).
func (p WorldPreference) RankCount() int { return len(p.ranks) }

// WorldsInRank returns a copy of rank i in ascending world order.
// Ranks outside [0, k) are empty by definition and return nil.
func (p WorldPreference) WorldsInRank(i int) []signature.World {
	if i < 0 || i >= len(p.ranks) {
		return nil
	}
	out := make([]signature.World, len(p.ranks[i]))
	copy(out, p.ranks[i])

	return out
}

// Ranks returns a deep copy of all ranks.
func (p WorldPreference) Ranks() [][]signature.World {
	out := make([][]signature.World, len(p.ranks))
	for i := range p.ranks {
		out[i] = p.WorldsInRank(i)
	}

	return out
}

// RankIndices returns idx with idx[w] = rank of world w.
func (p WorldPreference) RankIndices() []int {
	out := make([]int, len(p.rankOf))
	copy(out, p.rankOf)

	return out
}

// RankOf returns the rank of w, or -1 if w is outside the world space.
func (p WorldPreference) RankOf(w signature.World) int {
	if int(w) >= len(p.rankOf) {
		return -1
	}

	return p.rankOf[w]
}

// Prefers reports whether a is strictly preferred to b (lower rank).
func (p WorldPreference) Prefers(a, b signature.World) bool {
	ra, rb := p.RankOf(a), p.RankOf(b)
	return ra >= 0 && rb >= 0 && ra < rb
}

// Equivalent reports whether a and b share a rank.
func (p WorldPreference) Equivalent(a, b signature.World) bool {
	ra := p.RankOf(a)
	return ra >= 0 && ra == p.RankOf(b)
}

// HasEmptyRanks reports whether some rank below the last one is empty,
// i.e. whether p is only valid under TPO.
func (p WorldPreference) HasEmptyRanks() bool {
	for _, r := range p.ranks {
		if len(r) == 0 {
			return true
		}
	}

	return false
}

// Validate re-checks the mode rule. Completeness and disjointness hold for
// every constructed value; the zero value fails.
func (p WorldPreference) Validate(mode Mode) error {
	if p.IsZero() {
		return Violationf("preference has no ranks")
	}

	return p.checkMode(mode)
}

func (p WorldPreference) checkMode(mode Mode) error {
	if mode.AllowsEmptyRanks() {
		return nil
	}
	for i, r := range p.ranks {
		if len(r) == 0 {
			return Violationf("rank %d is empty but empty ranks are not allowed (%s)", i, mode)
		}
	}

	return nil
}

// Compact returns p with every empty rank removed, which is always a valid CPO.
func (p WorldPreference) Compact() WorldPreference {
	if !p.HasEmptyRanks() {
		return p
	}
	ranks := make([][]signature.World, 0, len(p.ranks))
	rankOf := make([]int, len(p.rankOf))
	for _, r := range p.ranks {
		if len(r) == 0 {
			continue
		}
		for _, w := range r {
			rankOf[w] = len(ranks)
		}
		ranks = append(ranks, r)
	}

	return WorldPreference{sig: p.sig, ranks: ranks, rankOf: rankOf}
}

// Equal reports whether p and q have the same signature and the same ranks.
func (p WorldPreference) Equal(q WorldPreference) bool {
	if !p.sig.Equal(q.sig) || len(p.ranks) != len(q.ranks) {
		return false
	}
	for i := range p.rankOf {
		if p.rankOf[i] != q.rankOf[i] {
			return false
		}
	}

	return true
}

// String renders the ranks as "[[0, 3], [], [1, 2]]".
func (p WorldPreference) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range p.ranks {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, w := range r {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatUint(uint64(w), 10))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
