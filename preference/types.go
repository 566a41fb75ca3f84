package preference

import "github.com/katalvlaran/worldpref/signature"

// WorldPreference is an ordered partition of the worlds of a signature into
// ranks; rank 0 is the most preferred. Values are immutable: no method
// mutates the receiver and accessors return copies.
type WorldPreference struct {
	sig    signature.Signature
	ranks  [][]signature.World // each rank sorted ascending; last rank non-empty
	rankOf []int               // world -> rank index
}
