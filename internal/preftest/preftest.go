// Package preftest provides deterministic fixtures for preference tests:
// generated signatures and seeded random preferences.
package preftest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// Signature returns the signature {p0, ..., p(n-1)}.
func Signature(n int) signature.Signature {
	vars := make([]signature.Variable, n)
	for i := range vars {
		vars[i] = signature.Variable(fmt.Sprintf("p%d", i))
	}

	return signature.MustNew(vars...)
}

// Random draws a preference over sig from rng. Under CPO the rank indices are
// compacted so no rank is empty; under TPO gaps are kept.
func Random(rng *rand.Rand, sig signature.Signature, mode preference.Mode) preference.WorldPreference {
	n := sig.WorldCount()
	maxRank := 1 + rng.Intn(n+2)
	idx := make([]int, n)
	for w := range idx {
		idx[w] = rng.Intn(maxRank)
	}
	p, err := preference.FromRankIndices(sig, idx, preference.TPO)
	if err != nil {
		panic(err)
	}
	if mode == preference.CPO {
		return p.Compact()
	}

	return p
}

// Samples returns count seeded random preferences per signature size in sizes.
func Samples(seed int64, sizes []int, count int, mode preference.Mode) []preference.WorldPreference {
	rng := rand.New(rand.NewSource(seed))
	out := make([]preference.WorldPreference, 0, len(sizes)*count)
	for _, n := range sizes {
		sig := Signature(n)
		for i := 0; i < count; i++ {
			out = append(out, Random(rng, sig, mode))
		}
	}

	return out
}
