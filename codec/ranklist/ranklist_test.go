package ranklist_test

import (
	"testing"

	"github.com/katalvlaran/worldpref/codec/ranklist"
	"github.com/katalvlaran/worldpref/internal/preftest"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWidth checks ceil(log2(k)) with a 1-bit floor.
func TestWidth(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 16: 4, 17: 5}
	for k, w := range want {
		assert.Equal(t, w, ranklist.Width(k), "k=%d", k)
	}
}

// TestEncode_Layout pins exact bytes.
func TestEncode_Layout(t *testing.T) {
	sig := signature.MustNew("a", "b")

	p, err := preference.FromRankIndices(sig, []int{0, 1, 2, 1}, preference.CPO)
	require.NoError(t, err)
	b, err := ranklist.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0b00011001}, b, "k=3 uses 2 bits per world")

	b, err = ranklist.Encode(preference.Initial(sig))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)

	_, err = ranklist.Encode(preference.WorldPreference{})
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)
}

// TestDecode_WidthSelection decodes a hand-built 2-bit-per-world buffer for
// k=3 over 8 worlds, where the width is unique.
func TestDecode_WidthSelection(t *testing.T) {
	sig := preftest.Signature(3)
	// ranks per world: 0 1 2 0 | 2 2 1 0
	data := []byte{0b00011000, 0b10100100}

	p, err := ranklist.Decode(data, sig, preference.CPO)
	require.NoError(t, err)
	assert.Equal(t, 3, p.RankCount())
	assert.Equal(t, []int{0, 1, 2, 0, 2, 2, 1, 0}, p.RankIndices())
	assert.Equal(t, "[[0, 3, 7], [1, 6], [2, 4, 5]]", p.String())
}

// TestDecode_SmallSignature checks the narrowest-first rule rejects a 1-bit
// reading with nonzero padding and picks the 2-bit one.
func TestDecode_SmallSignature(t *testing.T) {
	sig := signature.MustNew("a", "b")

	p, err := ranklist.Decode([]byte{0b00011001}, sig, preference.CPO)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 1}, p.RankIndices())
}

// TestDecode_Ambiguous documents a buffer readable at two widths over {a, b}
// and shows WithRankCount resolving it.
func TestDecode_Ambiguous(t *testing.T) {
	sig := signature.MustNew("a", "b")
	wide, err := preference.FromRankIndices(sig, []int{2, 1, 0, 0}, preference.CPO)
	require.NoError(t, err)
	b, err := ranklist.Encode(wide)
	require.NoError(t, err)
	require.Equal(t, []byte{0b10010000}, b)

	narrow, err := ranklist.Decode(b, sig, preference.CPO)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 1}, narrow.RankIndices(), "narrowest width wins without a hint")

	pinned, err := ranklist.Decode(b, sig, preference.CPO, ranklist.WithRankCount(3))
	require.NoError(t, err)
	assert.True(t, wide.Equal(pinned))

	_, err = ranklist.Decode(b, sig, preference.CPO, ranklist.WithRankCount(4))
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)
	_, err = ranklist.Decode(b, sig, preference.CPO, ranklist.WithRankCount(5))
	assert.ErrorIs(t, err, preference.ErrMalformedInput)
	assert.Panics(t, func() { ranklist.WithRankCount(0) })
}

// TestRoundTrip checks Decode(Encode(p)) == p where the width is unambiguous,
// and everywhere when the rank count is supplied.
func TestRoundTrip(t *testing.T) {
	for _, mode := range []preference.Mode{preference.CPO, preference.TPO} {
		for _, p := range preftest.Samples(7, []int{3, 4, 5, 6}, 20, mode) {
			b, err := ranklist.Encode(p)
			require.NoError(t, err)
			got, err := ranklist.Decode(b, p.Signature(), mode)
			require.NoError(t, err, "mode=%s p=%s", mode, p)
			assert.True(t, p.Equal(got), "mode=%s want %s got %s", mode, p, got)
		}
		for _, p := range preftest.Samples(11, []int{1, 2}, 30, mode) {
			b, err := ranklist.Encode(p)
			require.NoError(t, err)
			got, err := ranklist.Decode(b, p.Signature(), mode, ranklist.WithRankCount(p.RankCount()))
			require.NoError(t, err, "mode=%s p=%s", mode, p)
			assert.True(t, p.Equal(got), "mode=%s want %s got %s", mode, p, got)
		}
	}
	for _, p := range preftest.Samples(13, []int{1}, 20, preference.CPO) {
		b, err := ranklist.Encode(p)
		require.NoError(t, err)
		got, err := ranklist.Decode(b, p.Signature(), preference.CPO)
		require.NoError(t, err)
		assert.True(t, p.Equal(got))
	}
}

// TestDecode_Errors covers no-data, length and partition failures.
func TestDecode_Errors(t *testing.T) {
	sig3 := preftest.Signature(3)

	_, err := ranklist.Decode(nil, sig3, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrNoData)

	_, err = ranklist.Decode([]byte{0xFF}, preftest.Signature(4), preference.CPO)
	assert.ErrorIs(t, err, preference.ErrNoData)

	_, err = ranklist.Decode([]byte{0x00, 0x00, 0x00, 0x00, 0x00}, preftest.Signature(5), preference.CPO)
	assert.ErrorIs(t, err, preference.ErrMalformedInput, "40 bits over 32 worlds is not a whole width")
	assert.NotErrorIs(t, err, preference.ErrNoData)

	_, err = ranklist.Decode([]byte{0x00, 0x00}, sig3, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrMalformedInput, "2-bit width for a single rank is not canonical")

	// ranks per world: 0 2 0 0 | 0 0 0 0 leaves rank 1 empty
	gap := []byte{0b00100000, 0x00}
	_, err = ranklist.Decode(gap, sig3, preference.CPO)
	assert.ErrorIs(t, err, preference.ErrInvariantViolation)
	p, err := ranklist.Decode(gap, sig3, preference.TPO)
	require.NoError(t, err)
	assert.Equal(t, "[[0, 2, 3, 4, 5, 6, 7], [], [1]]", p.String())

	_, err = ranklist.Decode([]byte{0x00}, signature.Signature{}, preference.TPO)
	assert.ErrorIs(t, err, signature.ErrEmptySignature)
}

// TestDecode_WideFields checks fields naming ranks far past the rank limit are
// rejected before any rank list is built.
func TestDecode_WideFields(t *testing.T) {
	one := signature.MustNew("a")
	// two worlds, 128 bits: widths 61..64 fit and the first field is 2^60
	wide := make([]byte, 16)
	wide[0] = 0x80

	assert.NotPanics(t, func() {
		_, err := ranklist.Decode(wide, one, preference.CPO)
		assert.ErrorIs(t, err, preference.ErrInvariantViolation)
	})
	assert.NotPanics(t, func() {
		_, err := ranklist.Decode(wide, one, preference.TPO)
		assert.ErrorIs(t, err, preference.ErrMalformedInput)
	})

	// eight worlds at 30 bits: rank index 2^27 in the first field
	sig3 := preftest.Signature(3)
	thirty := make([]byte, 30)
	thirty[0] = 0b00100000
	assert.NotPanics(t, func() {
		_, err := ranklist.Decode(thirty, sig3, preference.TPO)
		assert.ErrorIs(t, err, preference.ErrMalformedInput)
	})

	// a pinned rank count past the limit cannot sneak a large index in either
	assert.NotPanics(t, func() {
		_, err := ranklist.Decode(thirty, sig3, preference.TPO, ranklist.WithRankCount(1<<29+1))
		assert.Error(t, err)
	})
}
