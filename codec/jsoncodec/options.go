// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for jsoncodec.Encode.

package jsoncodec

// Option configures Encode.
type Option func(*options)

type options struct {
	indent string
}

// WithIndent pretty-prints the output, indenting nested values by indent.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}
