// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: Signature-bound parser Factory and the symmetric Encode helper.
// Policy:
//   - The Factory is immutable and safe for concurrent use.
//   - Every failure, including an unknown Format, is a *preference.Error.

package parser

import (
	"github.com/katalvlaran/worldpref/codec/jsoncodec"
	"github.com/katalvlaran/worldpref/codec/ranklist"
	"github.com/katalvlaran/worldpref/codec/worldlist"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// Factory decodes preferences over one fixed signature under one mode.
type Factory struct {
	sig  signature.Signature
	mode preference.Mode
}

// New returns a Factory bound to sig and mode.
func New(sig signature.Signature, mode preference.Mode) *Factory {
	return &Factory{sig: sig, mode: mode}
}

// Signature returns the bound signature.
func (f *Factory) Signature() signature.Signature { return f.sig }

// Mode returns the bound validation mode.
func (f *Factory) Mode() preference.Mode { return f.mode }

// FromJSON decodes JSON text.
func (f *Factory) FromJSON(data []byte) (preference.WorldPreference, error) {
	return jsoncodec.Decode(data, f.sig, f.mode)
}

// FromBinary decodes worldlist bytes.
func (f *Factory) FromBinary(data []byte) (preference.WorldPreference, error) {
	return worldlist.Decode(data, f.sig, f.mode)
}

// FromBinaryRanklist decodes ranklist bytes. opts may pin the rank count.
func (f *Factory) FromBinaryRanklist(data []byte, opts ...ranklist.Option) (preference.WorldPreference, error) {
	return ranklist.Decode(data, f.sig, f.mode, opts...)
}

// Parse dispatches on format.
func (f *Factory) Parse(format Format, data []byte) (preference.WorldPreference, error) {
	switch format {
	case JSON:
		return f.FromJSON(data)
	case Worldlist:
		return f.FromBinary(data)
	case Ranklist:
		return f.FromBinaryRanklist(data)
	default:
		return preference.WorldPreference{}, preference.Malformedf("parser: unknown format %v", format)
	}
}

// Encode is the inverse of Parse: it renders p in format.
func Encode(p preference.WorldPreference, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return jsoncodec.Encode(p)
	case Worldlist:
		return worldlist.Encode(p)
	case Ranklist:
		return ranklist.Encode(p)
	default:
		return nil, preference.Malformedf("parser: unknown format %v", format)
	}
}
