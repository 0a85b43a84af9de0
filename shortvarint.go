package streamvbyte

// The short varint codec is an independent 16-bit sibling of the 32-bit
// formats: a 1-bit-per-element key bitmap (bit set means the element cost
// 2 bytes) precedes a data block of 1- or 2-byte little-endian payloads
// (spec §4.4). Unlike the 32-bit group codec it has no 2-bit key nibble
// and no shuffle table; the portable loop below already does the same
// work the SIMD fast path's prefix-sum trick does, one element at a time,
// so there is no separate fast-path/generic split here.

// ShortEncode encodes src into dst using the short varint format. dst must
// have length/capacity of at least ShortCompressBound(len(src)). Returns
// the written prefix of dst.
func ShortEncode(dst []byte, src []uint16) []byte {
	n := len(src)
	keyLen := ShortKeyBlockLen(n)
	keyBlock := dst[:keyLen]
	for i := range keyBlock {
		keyBlock[i] = 0
	}
	data := dst[keyLen:]
	pos := 0
	for i, v := range src {
		if v <= 0xFF {
			data[pos] = byte(v)
			pos++
			continue
		}
		data[pos] = byte(v)
		data[pos+1] = byte(v >> 8)
		pos += 2
		keyBlock[i>>3] |= 1 << uint(i&7)
	}
	return dst[:keyLen+pos]
}

// ShortDecode decodes count elements of a short varint stream from src
// into dst. Returns the number of bytes of src consumed.
func ShortDecode(dst []uint16, src []byte, count int) int {
	keyLen := ShortKeyBlockLen(count)
	keyBlock := src[:keyLen]
	data := src[keyLen:]
	pos := 0
	for i := 0; i < count; i++ {
		bit := (keyBlock[i>>3] >> uint(i&7)) & 1
		if bit == 0 {
			dst[i] = uint16(data[pos])
			pos++
		} else {
			dst[i] = uint16(data[pos]) | uint16(data[pos+1])<<8
			pos += 2
		}
	}
	return keyLen + pos
}
