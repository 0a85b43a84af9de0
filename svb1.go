package streamvbyte

// SVB1 is the "1234" format: every element is stored in 1-4 bytes, and the
// 2-bit key equals bytes-1 (see spec §3 key semantics table).

// svb1KeyOf returns the SVB1 2-bit key for v.
func svb1KeyOf(v uint32) byte {
	switch {
	case v <= 0xFF:
		return 0
	case v <= 0xFFFF:
		return 1
	case v <= 0xFFFFFF:
		return 2
	default:
		return 3
	}
}

// Svb1Encode encodes values into dst using the plain SVB1 format. dst must
// have length/capacity of at least CompressBound(len(values)). Returns the
// written prefix of dst.
func Svb1Encode(dst []byte, values []uint32) []byte {
	return encode(dst, values, &svb1Tables, svb1KeyOf, filterNone, 0)
}

// Svb1EncodeZigzag encodes values with a zigzag pre-filter, mapping small
// signed magnitudes (interpreted via two's complement) to small unsigned
// ones before key derivation.
func Svb1EncodeZigzag(dst []byte, values []uint32) []byte {
	return encode(dst, values, &svb1Tables, svb1KeyOf, filterZigzag, 0)
}

// Svb1EncodeDelta encodes values with a delta pre-filter seeded by
// previous.
func Svb1EncodeDelta(dst []byte, values []uint32, previous uint32) []byte {
	return encode(dst, values, &svb1Tables, svb1KeyOf, filterDelta, previous)
}

// Svb1EncodeDeltaZigzag encodes values with delta then zigzag pre-filters,
// seeded by previous.
func Svb1EncodeDeltaZigzag(dst []byte, values []uint32, previous uint32) []byte {
	return encode(dst, values, &svb1Tables, svb1KeyOf, filterDeltaZigzag, previous)
}

// Svb1EncodeDeltaTranspose encodes values with the delta+transpose
// pre-filter, seeded by previous. Composable across calls only at
// 64-element boundaries (spec §4.2/§8); splitting at any other boundary
// and threading previous will not reproduce the single-call encoding.
func Svb1EncodeDeltaTranspose(dst []byte, values []uint32, previous uint32) []byte {
	return dtEncode(dst, values, &svb1Tables, svb1KeyOf, previous)
}

// Svb1Decode decodes count elements of a plain SVB1 stream from src into
// dst (which must have length/capacity of at least count). Returns the
// number of bytes of src consumed.
func Svb1Decode(dst []uint32, src []byte, count int) int {
	return decode(dst, src, count, &svb1Tables, filterNone, 0)
}

// Svb1DecodeZigzag inverts Svb1EncodeZigzag.
func Svb1DecodeZigzag(dst []uint32, src []byte, count int) int {
	return decode(dst, src, count, &svb1Tables, filterZigzag, 0)
}

// Svb1DecodeDelta inverts Svb1EncodeDelta.
func Svb1DecodeDelta(dst []uint32, src []byte, count int, previous uint32) int {
	return decode(dst, src, count, &svb1Tables, filterDelta, previous)
}

// Svb1DecodeDeltaZigzag inverts Svb1EncodeDeltaZigzag.
func Svb1DecodeDeltaZigzag(dst []uint32, src []byte, count int, previous uint32) int {
	return decode(dst, src, count, &svb1Tables, filterDeltaZigzag, previous)
}

// Svb1DecodeDeltaTranspose inverts Svb1EncodeDeltaTranspose.
func Svb1DecodeDeltaTranspose(dst []uint32, src []byte, count int, previous uint32) int {
	return dtDecode(dst, src, count, &svb1Tables, previous)
}
