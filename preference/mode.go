package preference

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/worldpref/signature"
)

// Mode selects which contiguity rule a preference must satisfy.
type Mode int

const (
	// CPO (complete preorder): every rank 0..k-1 holds at least one world.
	CPO Mode = iota

	// TPO (total preorder): ranks may be empty, representing skipped levels.
	TPO
)

// MaxRanks caps the rank count of a TPO preference over a small signature.
// Empty ranks carry no worlds, so without a cap a single rank index could ask
// for an unbounded allocation.
const MaxRanks = 1 << 16

// RankLimit returns the largest rank count a preference over sig may have
// under mode: 2^n under CPO, since every rank holds a world, and
// max(2^n, MaxRanks) under TPO.
func RankLimit(sig signature.Signature, mode Mode) int {
	n := sig.WorldCount()
	if mode.AllowsEmptyRanks() && n < MaxRanks {
		return MaxRanks
	}

	return n
}

// AllowsEmptyRanks reports whether m permits empty ranks.
func (m Mode) AllowsEmptyRanks() bool { return m == TPO }

// String returns "cpo" or "tpo".
func (m Mode) String() string {
	switch m {
	case CPO:
		return "cpo"
	case TPO:
		return "tpo"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode reads "cpo" or "tpo" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpo":
		return CPO, nil
	case "tpo":
		return TPO, nil
	default:
		return CPO, fmt.Errorf("preference: unknown mode %q (want cpo or tpo)", s)
	}
}
