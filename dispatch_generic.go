package streamvbyte

// groupEncode8 and groupDecode8 process a run of 8 consecutive elements at
// once, deriving two 8-bit half-keys and packing/unpacking each half's
// payload via the format's length/shuffle tables (spec §4.2/§4.3's "fast
// path"). Both are selected via package-level function variables, mirroring
// the teacher's packLanes/unpackLanes dispatch-by-function-variable pattern
// in simdpack.go's initSIMDSelection. This file provides the portable
// default (a plain branchy scalar loop, equivalent to the generic/noasm
// path); dispatch_fastpath_amd64.go/dispatch_fastpath_arm64.go swap in the
// table-driven implementation on architectures where golang.org/x/sys/cpu
// reports the feature this package treats as "worth the table indirection".
var groupEncode8 = scalarGroupEncode8
var groupDecode8 = scalarGroupDecode8

// scalarGroupEncode8 encodes 8 already-filtered values one at a time,
// writing exactly codeLen(key) bytes per element. It produces the same
// keyword and byte stream as tableGroupEncode8.
func scalarGroupEncode8(tables *formatTables, keyOf func(uint32) byte, dst []byte, v [8]uint32) (written int, keyword uint16) {
	pos := 0
	for i := 0; i < 8; i++ {
		k := keyOf(v[i])
		length := int(tables.codeLen[k])
		var buf [4]byte
		bo.PutUint32(buf[:], v[i])
		copy(dst[pos:pos+length], buf[:length])
		pos += length
		keyword |= uint16(k) << uint(i*2)
	}
	return pos, keyword
}

// scalarGroupDecode8 inverts scalarGroupEncode8.
func scalarGroupDecode8(tables *formatTables, dst []uint32, src []byte, keyword uint16) (consumed int) {
	pos := 0
	for i := 0; i < 8; i++ {
		k := byte(keyword>>uint(i*2)) & 0x3
		length := int(tables.codeLen[k])
		var buf [4]byte
		copy(buf[:length], src[pos:pos+length])
		pos += length
		dst[i] = bo.Uint32(buf[:])
	}
	return pos
}

// tableGroupEncode8 is the table-driven counterpart of scalarGroupEncode8:
// it derives each 4-element half-key once and looks up its permutation and
// length, rather than branching per element. Byte-for-byte identical
// output to scalarGroupEncode8.
func tableGroupEncode8(tables *formatTables, keyOf func(uint32) byte, dst []byte, v [8]uint32) (written int, keyword uint16) {
	var halfKeys [2]byte
	for h := 0; h < 2; h++ {
		var hk byte
		for i := 0; i < 4; i++ {
			hk |= keyOf(v[h*4+i]) << uint(i*2)
		}
		halfKeys[h] = hk
	}

	pos := 0
	for h := 0; h < 2; h++ {
		var buf [16]byte
		for i := 0; i < 4; i++ {
			bo.PutUint32(buf[i*4:], v[h*4+i])
		}
		hk := halfKeys[h]
		row := &tables.encShuffle[hk]
		length := int(tables.length[hk])
		for i := 0; i < length; i++ {
			dst[pos] = buf[row[i]]
			pos++
		}
	}
	keyword = uint16(halfKeys[0]) | uint16(halfKeys[1])<<8
	return pos, keyword
}

// tableGroupDecode8 inverts tableGroupEncode8 via the decode shuffle table.
func tableGroupDecode8(tables *formatTables, dst []uint32, src []byte, keyword uint16) (consumed int) {
	halfKeys := [2]byte{byte(keyword), byte(keyword >> 8)}
	pos := 0
	for h := 0; h < 2; h++ {
		hk := halfKeys[h]
		length := int(tables.length[hk])
		window := src[pos : pos+length]
		pos += length
		row := &tables.decShuffle[hk]
		var lane [16]byte
		for outIdx := 0; outIdx < 16; outIdx++ {
			si := row[outIdx]
			if si >= 0 {
				lane[outIdx] = window[si]
			}
		}
		for i := 0; i < 4; i++ {
			dst[h*4+i] = bo.Uint32(lane[i*4:])
		}
	}
	return pos
}
