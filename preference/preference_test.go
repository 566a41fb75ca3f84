package preference_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type worlds = []signature.World

// TestInitial_SingleVariable checks initial({a}) is one rank holding {0,1}.
func TestInitial_SingleVariable(t *testing.T) {
	p := preference.Initial(signature.MustNew("a"))

	assert.Equal(t, 1, preference.RankCount(p))
	assert.Equal(t, worlds{0, 1}, preference.WorldsInRank(p, 0))
	assert.Nil(t, preference.WorldsInRank(p, 1))
	require.NoError(t, p.Validate(preference.CPO))
}

// TestInitial_ZeroSignature checks the zero signature yields the zero preference.
func TestInitial_ZeroSignature(t *testing.T) {
	p := preference.Initial(signature.Signature{})
	assert.True(t, p.IsZero())
	assert.ErrorIs(t, p.Validate(preference.TPO), preference.ErrInvariantViolation)
}

// TestNew_Errors verifies every partition failure maps to ErrInvariantViolation.
func TestNew_Errors(t *testing.T) {
	sig := signature.MustNew("a", "b")
	cases := []struct {
		name  string
		ranks [][]signature.World
		cause error
	}{
		{"Missing", [][]signature.World{{0, 1, 2}}, nil},
		{"Duplicate", [][]signature.World{{0, 1}, {1, 2, 3}}, nil},
		{"OutOfRange", [][]signature.World{{0, 1, 2, 3, 4}}, signature.ErrWorldOutOfRange},
		{"NoRanks", nil, nil},
		{"GapUnderCPO", [][]signature.World{{0, 1}, {}, {2, 3}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := preference.New(sig, tc.ranks, preference.CPO)
			require.Error(t, err)
			assert.ErrorIs(t, err, preference.ErrInvariantViolation)
			assert.NotErrorIs(t, err, preference.ErrMalformedInput)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
			var perr *preference.Error
			assert.True(t, errors.As(err, &perr))
		})
	}

	_, err := preference.New(signature.Signature{}, [][]signature.World{{0}}, preference.TPO)
	assert.ErrorIs(t, err, signature.ErrEmptySignature)
}

// TestNew_NormalForm checks sorting, copying and trimming of trailing empty ranks.
func TestNew_NormalForm(t *testing.T) {
	sig := signature.MustNew("a", "b")
	in := [][]signature.World{{3, 0}, {}, {2, 1}, {}, {}}

	p, err := preference.New(sig, in, preference.TPO)
	require.NoError(t, err)

	want := [][]signature.World{{0, 3}, {}, {1, 2}}
	if diff := cmp.Diff(want, p.Ranks()); diff != "" {
		t.Errorf("Ranks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, p.RankCount())
	assert.True(t, p.HasEmptyRanks())

	in[0][0] = 1
	assert.Equal(t, worlds{0, 3}, p.WorldsInRank(0), "New must copy its input")

	assert.ErrorIs(t, p.Validate(preference.CPO), preference.ErrInvariantViolation)
	assert.NoError(t, p.Validate(preference.TPO))
}

// TestFromRankIndices builds the same model from per-world ranks.
func TestFromRankIndices(t *testing.T) {
	sig := signature.MustNew("a", "b")

	p, err := preference.FromRankIndices(sig, []int{0, 2, 2, 0}, preference.TPO)
	require.NoError(t, err)
	assert.Equal(t, "[[0, 3], [], [1, 2]]", p.String())
	assert.Equal(t, []int{0, 2, 2, 0}, p.RankIndices())

	_, err = preference.FromRankIndices(sig, []int{0, 2, 2, 0}, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)

	_, err = preference.FromRankIndices(sig, []int{0, 1, 0}, preference.TPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)

	_, err = preference.FromRankIndices(sig, []int{0, -1, 0, 0}, preference.TPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)
}

// TestMoveWorld_GapRejectedUnderCPO checks a move that empties rank 0 below a
// non-empty rank 1 is rejected under CPO and accepted under TPO.
func TestMoveWorld_GapRejectedUnderCPO(t *testing.T) {
	sig := signature.MustNew("a")
	p, err := preference.New(sig, [][]signature.World{{0}, {1}}, preference.CPO)
	require.NoError(t, err)

	_, err = preference.MoveWorld(p, 0, 1, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)

	moved, err := preference.MoveWorld(p, 0, 1, preference.TPO)
	require.NoError(t, err)
	assert.Equal(t, "[[], [0, 1]]", moved.String())
	assert.Equal(t, "[[0], [1]]", p.String(), "source value must stay unchanged")
}

// TestMoveWorld_Extend covers appending a rank and skipping ranks.
func TestMoveWorld_Extend(t *testing.T) {
	p := preference.Initial(signature.MustNew("a"))

	next, err := preference.MoveWorld(p, 1, 1, preference.CPO)
	require.NoError(t, err)
	assert.Equal(t, "[[0], [1]]", next.String())

	_, err = preference.MoveWorld(p, 1, 3, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)

	gap, err := preference.MoveWorld(p, 1, 3, preference.TPO)
	require.NoError(t, err)
	assert.Equal(t, "[[0], [], [], [1]]", gap.String())
	assert.Equal(t, 3, gap.RankOf(1))
}

// TestMoveWorld_TrimsTrailing checks the last rank emptied by a move is dropped.
func TestMoveWorld_TrimsTrailing(t *testing.T) {
	sig := signature.MustNew("a", "b")
	p, err := preference.New(sig, [][]signature.World{{0, 1, 2}, {3}}, preference.CPO)
	require.NoError(t, err)

	back, err := preference.MoveWorld(p, 3, 0, preference.CPO)
	require.NoError(t, err)
	assert.Equal(t, 1, back.RankCount())
	assert.True(t, back.Equal(preference.Initial(sig)))
}

// TestMoveWorld_Errors covers argument validation.
func TestMoveWorld_Errors(t *testing.T) {
	p := preference.Initial(signature.MustNew("a"))

	_, err := preference.MoveWorld(p, 2, 0, preference.CPO)
	assert.ErrorIs(t, err, signature.ErrWorldOutOfRange)
	_, err = preference.MoveWorld(p, 0, -1, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)
	_, err = preference.MoveWorld(preference.WorldPreference{}, 0, 0, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)

	same, err := preference.MoveWorld(p, 0, 0, preference.CPO)
	require.NoError(t, err)
	assert.True(t, same.Equal(p))
}

// TestMoveWorld_FarTarget checks targets far past the last rank fail with a
// typed error instead of allocating the rank list.
func TestMoveWorld_FarTarget(t *testing.T) {
	p := preference.Initial(signature.MustNew("a"))

	for _, mode := range []preference.Mode{preference.CPO, preference.TPO} {
		for _, target := range []int{preference.MaxRanks, 1 << 40, 1 << 62} {
			assert.NotPanics(t, func() {
				_, err := preference.MoveWorld(p, 0, target, mode)
				assert.ErrorIs(t, err, preference.ErrInvariantViolation, "mode=%s target=%d", mode, target)
			})
		}
	}

	last, err := preference.MoveWorld(p, 0, preference.MaxRanks-1, preference.TPO)
	require.NoError(t, err)
	assert.Equal(t, preference.MaxRanks, last.RankCount())
}

// TestRankLimit checks the rank bound per mode.
func TestRankLimit(t *testing.T) {
	small := signature.MustNew("a", "b")
	assert.Equal(t, 4, preference.RankLimit(small, preference.CPO))
	assert.Equal(t, preference.MaxRanks, preference.RankLimit(small, preference.TPO))

	vars := make([]signature.Variable, 17)
	for i := range vars {
		vars[i] = signature.Variable(rune('a' + i))
	}
	large := signature.MustNew(vars...)
	assert.Equal(t, 1<<17, preference.RankLimit(large, preference.TPO))

	idx := []int{0, 0, 0, preference.MaxRanks}
	assert.NotPanics(t, func() {
		_, err := preference.FromRankIndices(small, idx, preference.TPO)
		assert.ErrorIs(t, err, preference.ErrInvariantViolation)
	})
	idx[3] = 4
	_, err := preference.FromRankIndices(small, idx, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)
}

// TestQueries covers RankOf, Prefers, Equivalent and Compact.
func TestQueries(t *testing.T) {
	sig := signature.MustNew("a", "b")
	p, err := preference.New(sig, [][]signature.World{{1}, {}, {0, 2}, {3}}, preference.TPO)
	require.NoError(t, err)

	assert.True(t, p.Prefers(1, 0))
	assert.False(t, p.Prefers(0, 1))
	assert.False(t, p.Prefers(0, 2))
	assert.True(t, p.Equivalent(0, 2))
	assert.False(t, p.Equivalent(0, 9))
	assert.Equal(t, -1, p.RankOf(9))

	c := p.Compact()
	assert.Equal(t, "[[1], [0, 2], [3]]", c.String())
	assert.NoError(t, c.Validate(preference.CPO))
	assert.Equal(t, 1, c.RankOf(0))
	assert.Equal(t, "[[1], [], [0, 2], [3]]", p.String())
}

// TestEqual distinguishes signatures and rank layouts.
func TestEqual(t *testing.T) {
	a := preference.Initial(signature.MustNew("a"))
	b := preference.Initial(signature.MustNew("b"))
	assert.False(t, a.Equal(b))

	moved, err := preference.MoveWorld(a, 0, 1, preference.CPO)
	require.NoError(t, err)
	assert.False(t, a.Equal(moved))
	assert.True(t, a.Equal(preference.Initial(signature.MustNew("a"))))
}

// TestMode covers parsing and rendering of the validation mode.
func TestMode(t *testing.T) {
	m, err := preference.ParseMode(" TPO ")
	require.NoError(t, err)
	assert.Equal(t, preference.TPO, m)
	assert.True(t, m.AllowsEmptyRanks())
	assert.Equal(t, "cpo", preference.CPO.String())
	assert.Equal(t, "Mode(7)", preference.Mode(7).String())

	_, err = preference.ParseMode("dag")
	assert.Error(t, err)
}

// TestError_Kinds checks message layout and errors.Is on kind and cause.
func TestError_Kinds(t *testing.T) {
	err := preference.NoDataf("empty buffer")
	assert.ErrorIs(t, err, preference.ErrMalformedInput)
	assert.ErrorIs(t, err, preference.ErrNoData)
	assert.EqualError(t, err, "preference: malformed input: no data: empty buffer")

	err = preference.Malformedf("bad byte %d", 3)
	assert.ErrorIs(t, err, preference.ErrMalformedInput)
	assert.NotErrorIs(t, err, preference.ErrNoData)

	cause := errors.New("boom")
	err = preference.Wrap(preference.ErrInvariantViolation, cause, "")
	assert.EqualError(t, err, "preference: invariant violation: boom")
	assert.ErrorIs(t, err, cause)
}
