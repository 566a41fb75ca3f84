// SPDX-License-Identifier: MIT
//
// File: bitio.go
// Role: MSB-first bit Writer/Reader over exactly sized byte buffers.
// Policy:
//   - ReadBit/ReadBits return ErrShortBuffer past the end; Bit requires an in-range index.

package bitio

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer indicates a read past the end of the stream.
	ErrShortBuffer = errors.New("bitio: read past end of buffer")

	// ErrBadWidth indicates a field width outside [0, 64].
	ErrBadWidth = errors.New("bitio: field width must be within [0, 64]")
)

// ByteLen returns the number of bytes holding bits bits: ceil(bits/8).
func ByteLen(bits int) int { return (bits + 7) / 8 }

// Writer accumulates bits MSB-first. The zero value is ready to use.
type Writer struct {
	buf  []byte
	bits int
}

// NewWriter returns a Writer with room for sizeBits bits preallocated.
func NewWriter(sizeBits int) *Writer {
	return &Writer{buf: make([]byte, 0, ByteLen(sizeBits))}
}

// WriteBit appends one bit.
func (w *Writer) WriteBit(set bool) {
	if w.bits%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if set {
		w.buf[len(w.buf)-1] |= 0x80 >> uint(w.bits%8)
	}
	w.bits++
}

// WriteBits appends the low width bits of v, most significant first.
// It panics if width is outside [0, 64]; callers compute widths themselves.
func (w *Writer) WriteBits(v uint64, width int) {
	if width < 0 || width > 64 {
		panic(fmt.Sprintf("bitio: WriteBits: width %d", width))
	}
	for i := width - 1; i >= 0; i-- {
		w.WriteBit(v>>uint(i)&1 == 1)
	}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int { return w.bits }

// Bytes returns a copy of the written bits, zero-padded to a whole byte.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)

	return out
}

// Reader reads bits MSB-first from a byte slice it does not modify.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at bit 0 of buf.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Len returns the total number of bits in the stream.
func (r *Reader) Len() int { return len(r.buf) * 8 }

// Pos returns the index of the next bit to read.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.Len() - r.pos }

// Bit returns bit p of the stream without moving the cursor.
// p must be within [0, Len()).
func (r *Reader) Bit(p int) bool {
	return r.buf[p/8]&(0x80>>uint(p%8)) != 0
}

// ReadBit reads one bit.
func (r *Reader) ReadBit() (bool, error) {
	if r.pos >= r.Len() {
		return false, ErrShortBuffer
	}
	b := r.Bit(r.pos)
	r.pos++

	return b, nil
}

// ReadBits reads a width-bit unsigned field, most significant bit first.
func (r *Reader) ReadBits(width int) (uint64, error) {
	if width < 0 || width > 64 {
		return 0, ErrBadWidth
	}
	if r.Remaining() < width {
		return 0, fmt.Errorf("%w: want %d bits, have %d", ErrShortBuffer, width, r.Remaining())
	}
	var v uint64
	for i := 0; i < width; i++ {
		v <<= 1
		if r.Bit(r.pos) {
			v |= 1
		}
		r.pos++
	}

	return v, nil
}

// ZeroFrom reports whether every bit from p to the end of the stream is 0.
func (r *Reader) ZeroFrom(p int) bool {
	for ; p < r.Len(); p++ {
		if p%8 == 0 {
			for _, b := range r.buf[p/8:] {
				if b != 0 {
					return false
				}
			}
			return true
		}
		if r.Bit(p) {
			return false
		}
	}

	return true
}
