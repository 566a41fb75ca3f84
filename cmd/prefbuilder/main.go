// Command prefbuilder builds, converts and inspects world preferences over a
// propositional signature in the JSON, worldlist and ranklist encodings.
package main

import (
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
