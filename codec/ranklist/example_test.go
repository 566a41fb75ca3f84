package ranklist_test

import (
	"fmt"

	"github.com/katalvlaran/worldpref/codec/ranklist"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// ExampleEncode packs one 2-bit rank index per world for three ranks.
func ExampleEncode() {
	sig := signature.MustNew("a", "b", "c")
	p, _ := preference.FromRankIndices(sig, []int{0, 1, 2, 0, 2, 2, 1, 0}, preference.CPO)

	b, _ := ranklist.Encode(p)
	fmt.Printf("%08b %08b\n", b[0], b[1])

	back, _ := ranklist.Decode(b, sig, preference.CPO)
	fmt.Println(back.RankCount(), back)

	// Output:
	// 00011000 10100100
	// 3 [[0, 3, 7], [1, 6], [2, 4, 5]]
}
