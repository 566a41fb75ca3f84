// Package bitio packs and unpacks bit fields MSB-first into byte buffers.
//
// Bit position p of a stream lives in byte p/8 at bit 7-(p%8): the first
// bit written is the high bit of the first byte. Writers pad the final byte
// with zero bits. Both binary preference codecs share this convention.
package bitio
