package streamvbyte

// SVB0 is the "0124" format: zero-valued elements cost no data bytes at
// all, otherwise the element is stored in 1, 2, or 4 bytes (spec §3).

// svb0KeyOf returns the SVB0 2-bit key for v.
func svb0KeyOf(v uint32) byte {
	switch {
	case v == 0:
		return 0
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	default:
		return 3
	}
}

// Svb0Encode encodes values into dst using the plain SVB0 format. dst must
// have length/capacity of at least CompressBound(len(values)).
func Svb0Encode(dst []byte, values []uint32) []byte {
	return encode(dst, values, &svb0Tables, svb0KeyOf, filterNone, 0)
}

// Svb0EncodeZigzag encodes values with a zigzag pre-filter.
func Svb0EncodeZigzag(dst []byte, values []uint32) []byte {
	return encode(dst, values, &svb0Tables, svb0KeyOf, filterZigzag, 0)
}

// Svb0EncodeDelta encodes values with a delta pre-filter seeded by
// previous.
func Svb0EncodeDelta(dst []byte, values []uint32, previous uint32) []byte {
	return encode(dst, values, &svb0Tables, svb0KeyOf, filterDelta, previous)
}

// Svb0EncodeDeltaZigzag encodes values with delta then zigzag pre-filters,
// seeded by previous.
func Svb0EncodeDeltaZigzag(dst []byte, values []uint32, previous uint32) []byte {
	return encode(dst, values, &svb0Tables, svb0KeyOf, filterDeltaZigzag, previous)
}

// Svb0EncodeDeltaTranspose encodes values with the delta+transpose
// pre-filter, seeded by previous. Same 64-element composability caveat as
// Svb1EncodeDeltaTranspose.
func Svb0EncodeDeltaTranspose(dst []byte, values []uint32, previous uint32) []byte {
	return dtEncode(dst, values, &svb0Tables, svb0KeyOf, previous)
}

// Svb0Decode decodes count elements of a plain SVB0 stream from src into
// dst. Returns the number of bytes of src consumed.
func Svb0Decode(dst []uint32, src []byte, count int) int {
	return decode(dst, src, count, &svb0Tables, filterNone, 0)
}

// Svb0DecodeZigzag inverts Svb0EncodeZigzag.
func Svb0DecodeZigzag(dst []uint32, src []byte, count int) int {
	return decode(dst, src, count, &svb0Tables, filterZigzag, 0)
}

// Svb0DecodeDelta inverts Svb0EncodeDelta.
func Svb0DecodeDelta(dst []uint32, src []byte, count int, previous uint32) int {
	return decode(dst, src, count, &svb0Tables, filterDelta, previous)
}

// Svb0DecodeDeltaZigzag inverts Svb0EncodeDeltaZigzag.
func Svb0DecodeDeltaZigzag(dst []uint32, src []byte, count int, previous uint32) int {
	return decode(dst, src, count, &svb0Tables, filterDeltaZigzag, previous)
}

// Svb0DecodeDeltaTranspose inverts Svb0EncodeDeltaTranspose.
func Svb0DecodeDeltaTranspose(dst []uint32, src []byte, count int, previous uint32) int {
	return dtDecode(dst, src, count, &svb0Tables, previous)
}
