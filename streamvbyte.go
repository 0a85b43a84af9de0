// Package streamvbyte implements the StreamVByte family of byte-oriented
// integer compression codecs, plus a small companion codec for 16-bit
// integers (the "short varint").
//
// A StreamVByte stream stores a packed key block (2 bits per element,
// describing how many payload bytes that element used) immediately
// followed by a data block of concatenated, little-endian,
// leading-zero-stripped payload bytes. The element count is never part of
// the stream; callers keep it out-of-band and pass it back in on decode.
//
// Two stream layouts are supported:
//
//   - the 1234 format ("SVB1"), where every element occupies 1-4 bytes
//   - the 0124 format ("SVB0"), where zero-valued elements occupy no bytes
//
// Each format comes in five variants that differ only in the pre/post
// filter applied to the values before/after key derivation: plain, zigzag
// ("z"), delta ("d"), delta+zigzag ("dz"), and delta+transpose ("dt").
//
// All operations in this package are synchronous, allocation-free, and
// single-threaded. Callers may invoke them concurrently on disjoint
// buffers; concurrent access to the same buffer is a data race and is the
// caller's responsibility to avoid. The package keeps no mutable global
// state beyond read-only lookup tables built once at init time.
//
// The codec trusts its caller: output buffers must be sized to at least
// CompressBound(len(values)) and input buffers to decode must hold a
// complete, valid stream for the given count. Passing undersized buffers
// is undefined behavior for the raw Encode/Decode entry points; see
// DecodeChecked-style wrappers in checked.go for a bounds-checked
// alternative that reports a typed error instead.
package streamvbyte

import "encoding/binary"

var bo = binary.LittleEndian

// KeyBlockLen returns the size in bytes of the 2-bit-per-element key block
// that precedes the data block in a SVB1 or SVB0 stream of count elements.
func KeyBlockLen(count int) int {
	return (count + 3) >> 2
}

// ShortKeyBlockLen returns the size in bytes of the 1-bit-per-element key
// bitmap that precedes the data block in a short-varint stream of count
// elements.
func ShortKeyBlockLen(count int) int {
	return (count + 7) >> 3
}

// CompressBound returns a worst-case upper bound, in bytes, on the encoded
// size of a SVB1 or SVB0 stream holding count uint32 elements. Callers
// should size their output buffer to at least this many bytes before
// calling an Encode function.
func CompressBound(count int) int {
	return KeyBlockLen(count) + 4*count
}

// ShortCompressBound returns a worst-case upper bound, in bytes, on the
// encoded size of a short-varint stream holding count uint16 elements.
func ShortCompressBound(count int) int {
	return 2*count + ShortKeyBlockLen(count)
}
