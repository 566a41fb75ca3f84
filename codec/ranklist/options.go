// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for ranklist.Decode.

package ranklist

import "fmt"

// Option configures Decode.
type Option func(*options)

type options struct {
	rankCount int // 0 = infer from the buffer
}

// WithRankCount pins the rank count k, and therefore the field width, that
// the buffer was encoded with. It panics if k < 1 (programmer error).
func WithRankCount(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("ranklist: WithRankCount: k must be >= 1, got %d", k))
	}

	return func(o *options) { o.rankCount = k }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
