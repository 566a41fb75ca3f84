package signature_test

import (
	"fmt"

	"github.com/katalvlaran/worldpref/signature"
)

// ExampleSignature_Assignment lists every world of {a, b} in canonical order.
func ExampleSignature_Assignment() {
	sig := signature.MustNew("a", "b")
	for _, w := range sig.Worlds() {
		asg, _ := sig.Assignment(w)
		fmt.Println(w, asg)
	}

	// Output:
	// 0 {!a, !b}
	// 1 {a, !b}
	// 2 {!a, b}
	// 3 {a, b}
}
