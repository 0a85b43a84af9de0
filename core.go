package streamvbyte

// filterKind selects the pre/post filter threaded through encodeRange and
// decodeRange. The "dt" variant is handled separately (see dt.go) since it
// also requires 64-element block framing and a transpose step; everything
// else is expressible as one of these four filters applied uniformly
// across the whole element range.
type filterKind int

const (
	filterNone filterKind = iota
	filterZigzag
	filterDelta
	filterDeltaZigzag
)

// applyFilterEncode applies kind to v, threading *prev as the running
// delta anchor (the original, unfiltered value -- spec §4.1: "Composable
// along a sequence by threading prev ← v after each element").
func applyFilterEncode(kind filterKind, v uint32, prev *uint32) uint32 {
	switch kind {
	case filterZigzag:
		return zigzagEncode32(v)
	case filterDelta:
		d := deltaEncode32(v, *prev)
		*prev = v
		return d
	case filterDeltaZigzag:
		d := deltaEncode32(v, *prev)
		*prev = v
		return zigzagEncode32(d)
	default:
		return v
	}
}

// applyFilterDecode inverts applyFilterEncode, threading *prev as the
// running reconstructed value.
func applyFilterDecode(kind filterKind, stored uint32, prev *uint32) uint32 {
	switch kind {
	case filterZigzag:
		return zigzagDecode32(stored)
	case filterDelta:
		v := deltaDecode32(stored, *prev)
		*prev = v
		return v
	case filterDeltaZigzag:
		v := deltaDecode32(zigzagDecode32(stored), *prev)
		*prev = v
		return v
	default:
		return stored
	}
}

// encodeRange encodes values into data (which must start at the data
// block's logical position for this range), setting key bits into keyBlock
// at absolute element indices [startIndex, startIndex+len(values)). It is
// the shared core for both the whole-stream plain/z/d/dz encoders and the
// non-transposed tail of the dt encoder, which continues writing into the
// same keyBlock/data buffers starting partway through the stream.
func encodeRange(data []byte, keyBlock []byte, startIndex int, values []uint32, tables *formatTables, keyOf func(uint32) byte, kind filterKind, prev *uint32) int {
	n := len(values)
	pos := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		var v [8]uint32
		for j := 0; j < 8; j++ {
			v[j] = applyFilterEncode(kind, values[i+j], prev)
		}
		written, keyword := groupEncode8(tables, keyOf, data[pos:], v)
		pos += written
		idx := startIndex + i
		bo.PutUint16(keyBlock[idx>>2:], keyword)
	}
	for ; i < n; i++ {
		fv := applyFilterEncode(kind, values[i], prev)
		k := keyOf(fv)
		length := int(tables.codeLen[k])
		var buf [4]byte
		bo.PutUint32(buf[:], fv)
		copy(data[pos:pos+length], buf[:length])
		pos += length
		idx := startIndex + i
		keyBlock[idx>>2] |= k << uint((idx&3)*2)
	}
	return pos
}

// decodeRange inverts encodeRange: dst holds len(dst) elements starting at
// absolute index startIndex.
func decodeRange(data []byte, keyBlock []byte, startIndex int, dst []uint32, tables *formatTables, kind filterKind, prev *uint32) int {
	n := len(dst)
	pos := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		idx := startIndex + i
		keyword := bo.Uint16(keyBlock[idx>>2:])
		var v [8]uint32
		consumed := groupDecode8(tables, v[:], data[pos:], keyword)
		pos += consumed
		for j := 0; j < 8; j++ {
			dst[i+j] = applyFilterDecode(kind, v[j], prev)
		}
	}
	for ; i < n; i++ {
		idx := startIndex + i
		kb := keyBlock[idx>>2]
		k := (kb >> uint((idx&3)*2)) & 0x3
		length := int(tables.codeLen[k])
		var buf [4]byte
		copy(buf[:length], data[pos:pos+length])
		pos += length
		fv := bo.Uint32(buf[:])
		dst[i] = applyFilterDecode(kind, fv, prev)
	}
	return pos
}

// encode is the shared entry point for the plain/z/d/dz variants of both
// formats: zero the key block, then delegate to encodeRange over the
// whole element range starting at index 0.
func encode(dst []byte, values []uint32, tables *formatTables, keyOf func(uint32) byte, kind filterKind, previous uint32) []byte {
	n := len(values)
	keyLen := KeyBlockLen(n)
	keyBlock := dst[:keyLen]
	for i := range keyBlock {
		keyBlock[i] = 0
	}
	prev := previous
	written := encodeRange(dst[keyLen:], keyBlock, 0, values, tables, keyOf, kind, &prev)
	return dst[:keyLen+written]
}

// decode is the shared entry point for the plain/z/d/dz variants of both
// formats.
func decode(dst []uint32, src []byte, count int, tables *formatTables, kind filterKind, previous uint32) int {
	keyLen := KeyBlockLen(count)
	prev := previous
	consumed := decodeRange(src[keyLen:], src[:keyLen], 0, dst[:count], tables, kind, &prev)
	return keyLen + consumed
}
