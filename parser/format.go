// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Format enum naming the three encodings.

package parser

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/worldpref/preference"
)

// Format names one of the three interchangeable encodings.
type Format int

const (
	// JSON is the textual rank-array encoding.
	JSON Format = iota
	// Worldlist is the bitmask-per-rank binary encoding.
	Worldlist
	// Ranklist is the rank-index-per-world binary encoding.
	Ranklist
)

// Formats lists every Format in display order.
var Formats = []Format{JSON, Worldlist, Ranklist}

// String returns "json", "worldlist" or "ranklist".
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Worldlist:
		return "worldlist"
	case Ranklist:
		return "ranklist"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Binary reports whether f is one of the binary encodings.
func (f Format) Binary() bool { return f == Worldlist || f == Ranklist }

// ParseFormat reads a format name (case-insensitive; "binary" is an alias of
// worldlist).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "worldlist", "binary":
		return Worldlist, nil
	case "ranklist":
		return Ranklist, nil
	default:
		return JSON, preference.Malformedf("parser: unknown format %q (want json, worldlist or ranklist)", s)
	}
}
